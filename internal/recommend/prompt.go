package recommend

import "strings"

const (
	noPreferences   = "None specified"
	defaultLanguage = "English"
)

// ComposePrompt builds the instruction prompt sent to the generation model.
// Inputs are concatenated verbatim and never interpreted.
func ComposePrompt(language string, preferences *string, message, groundingContext string) string {
	prefs := noPreferences
	if preferences != nil && *preferences != "" {
		prefs = *preferences
	}
	lang := language
	if strings.TrimSpace(lang) == "" {
		lang = defaultLanguage
	}

	var b strings.Builder
	b.WriteString("You are a smart cellphone recommendation assistant.\n\n")
	b.WriteString("Available products in our database:\n")
	b.WriteString(groundingContext)
	b.WriteString("\n\nUser preferences: ")
	b.WriteString(prefs)
	b.WriteString("\nUser message: ")
	b.WriteString(message)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("1. Be concise and friendly\n")
	b.WriteString("2. Ask specific questions about: budget, brand preference, storage needs, camera quality, battery life\n")
	b.WriteString("3. Only recommend products from the database above\n")
	b.WriteString("4. If user hasn't provided enough info, ask 1-2 specific questions\n")
	b.WriteString("5. Keep responses under 100 words\n")
	b.WriteString("6. Respond in ")
	b.WriteString(lang)
	b.WriteString("\n\nCurrent conversation: ")
	b.WriteString(message)
	return b.String()
}
