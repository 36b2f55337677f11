package domain

import "strings"

//nolint:gochecknoglobals // Static prompt table
var systemPrompts = map[ProjectType]string{
	ProjectComponent: `You are an expert React developer. Generate clean, modern React components using:
- Functional components with hooks
- Tailwind CSS for styling
- TypeScript when appropriate
- Best practices for accessibility
- Clean, readable code

Always provide working, complete code that can be used immediately.`,

	ProjectFullstack: `You are an expert full-stack developer. Generate complete applications with:
- React frontend with modern hooks
- Node.js/Express backend APIs
- MongoDB database schemas
- Proper error handling
- Security best practices
- Clean architecture

Provide both frontend and backend code.`,

	ProjectFrontend: `You are an expert frontend developer. Create beautiful, responsive web applications using:
- Modern React with hooks
- Tailwind CSS or styled-components
- Responsive design
- Performance optimization
- Accessibility standards

Focus on user experience and visual appeal.`,

	ProjectBackend: `You are an expert backend developer. Create robust API services with:
- Node.js/Express servers
- MongoDB database operations
- Proper error handling
- Input validation
- Security measures
- RESTful design principles

Provide complete, production-ready backend code.`,
}

const promptInstructions = `

Please provide:
1. A brief explanation of what you're building
2. Complete, working code
3. Any setup instructions if needed`

// SystemPrompt returns the system prompt for projectType.
// Unknown project types get the component prompt.
func SystemPrompt(projectType ProjectType) string {
	return systemPrompts[projectType.Normalize()]
}

// UserPrompt appends the formatting instructions and, for non-English
// locales, the language directive to prompt.
func (l Locale) UserPrompt(prompt string) string {
	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString(promptInstructions)
	if l.LanguageDirective != "" {
		sb.WriteString("\n\n")
		sb.WriteString(l.LanguageDirective)
	}
	return sb.String()
}
