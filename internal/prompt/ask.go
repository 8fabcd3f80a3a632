package prompt

import "strings"

// AskSystemPrompt returns the system prompt for the ask flow.
// Returns empty string if no instructions configured.
func AskSystemPrompt(instructions string) string {
	return instructions
}

// AskUserPrompt formats a question with optional piped stdin context.
// With both present, the piped data comes first in delimiters so the
// question reads as an instruction about it. With only stdin, the piped
// data is the whole prompt.
func AskUserPrompt(question, stdin string) string {
	if stdin == "" {
		return question
	}
	if question == "" {
		return stdin
	}

	var sb strings.Builder
	sb.WriteString("<<<<< STDIN >>>>>\n")
	sb.WriteString(stdin)
	if !strings.HasSuffix(stdin, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("<<<<< END STDIN >>>>>\n\n")
	sb.WriteString(question)
	return sb.String()
}
