package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// ProjectType selects the system prompt and the fallback template.
type ProjectType string

const (
	ProjectComponent ProjectType = "component"
	ProjectFullstack ProjectType = "fullstack"
	ProjectFrontend  ProjectType = "frontend"
	ProjectBackend   ProjectType = "backend"
)

// Normalize maps unknown or empty project types to ProjectComponent.
func (p ProjectType) Normalize() ProjectType {
	switch p {
	case ProjectComponent, ProjectFullstack, ProjectFrontend, ProjectBackend:
		return p
	default:
		return ProjectComponent
	}
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a prior turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UnmarshalJSON accepts the chat UI's legacy "type" field as an alias for "role".
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    string `json:"role"`
		Type    string `json:"type"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Role = raw.Role
	if m.Role == "" {
		m.Role = raw.Type
	}
	m.Content = raw.Content

	return nil
}

// IsUser reports whether the message was authored by the user.
// Every other role is treated as the assistant.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// GenerationRequest is one UI submission.
type GenerationRequest struct {
	Prompt      string      `json:"message"`
	ProjectType ProjectType `json:"projectType,omitempty"`
	History     []Message   `json:"conversationHistory,omitempty"`
}

// ProviderHistory returns the history entries worth sending upstream.
// Entries without content, including JSON nulls, are dropped.
func (r *GenerationRequest) ProviderHistory() []Message {
	history := make([]Message, 0, len(r.History))
	for _, msg := range r.History {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		history = append(history, msg)
	}
	return history
}

// ProviderRequest is the uniform input handed to every provider adapter.
type ProviderRequest struct {
	SystemPrompt string
	History      []Message
	Prompt       string
	Temperature  float64
	MaxTokens    int
}

// GenerationResult is the outcome of the fallback chain.
type GenerationResult struct {
	Success     bool   `json:"success"`
	Explanation string `json:"explanation,omitempty"`
	Code        string `json:"code,omitempty"`
	Model       string `json:"model,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Conversation is one persisted request/response exchange.
type Conversation struct {
	ID          string            `json:"id"`
	Message     string            `json:"message"`
	ProjectType ProjectType       `json:"projectType"`
	Result      *GenerationResult `json:"result"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Preview is a stored code snapshot addressable by ID.
type Preview struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

// ProjectTemplate describes an example project offered by the UI.
type ProjectTemplate struct {
	ID          string      `json:"id"          yaml:"id"`
	Name        string      `json:"name"        yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Type        ProjectType `json:"type"        yaml:"type"`
	Tags        []string    `json:"tags"        yaml:"tags"`
}
