package domain

import "fmt"

// Locale holds the language-dependent strings of a deployment.
type Locale struct {
	Code string

	// LanguageDirective is appended to every user prompt. Empty for English.
	LanguageDirective string

	// FallbackNotice prefixes the explanation of a template fallback result.
	FallbackNotice string

	// ServiceMessage is returned by the service descriptor.
	ServiceMessage string
}

const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

//nolint:gochecknoglobals // Static locale table
var locales = map[string]Locale{
	LocaleEnglish: {
		Code:              LocaleEnglish,
		LanguageDirective: "",
		FallbackNotice:    "The AI providers are currently unavailable, so here is a starter template for your request",
		ServiceMessage:    "AI Code Generator API",
	},
	LocalePortuguese: {
		Code:              LocalePortuguese,
		LanguageDirective: "IMPORTANT: Answer in Brazilian Portuguese (pt-BR), including the explanation and code comments.",
		FallbackNotice:    "Os provedores de IA estão indisponíveis no momento, então aqui está um modelo inicial para o seu pedido",
		ServiceMessage:    "API do Gerador de Código com IA",
	},
}

// LocaleFor returns the locale for code, defaulting to English.
func LocaleFor(code string) Locale {
	if locale, ok := locales[code]; ok {
		return locale
	}
	return locales[LocaleEnglish]
}

// FallbackExplanation builds the explanation attached to a template result.
func (l Locale) FallbackExplanation(prompt string) string {
	return fmt.Sprintf("%s: %q", l.FallbackNotice, prompt)
}
