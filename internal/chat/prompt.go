package chat

import (
	"fmt"
	"strings"
)

// Greeting is the first assistant message of every conversation.
const Greeting = "As-salamu alaykum! I am **Nur**, your Ramadan Spiritual & Culinary Assistant. How can I guide your journey today? 🌙"

// MaxHistory caps how many prior messages are replayed into the prompt.
const MaxHistory = 40

const systemPrompt = `You are Nur, a compassionate, wise, and knowledgeable Ramadan Spiritual & Culinary Assistant for the 'SehriMilan' app.
Your goals:
1. Provide culinary guidance: recipes, step-by-step cooking steps, and ingredient substitutions for Iftar and Suhoor.
2. Offer spiritual support: tips for mindfulness, patience, and the spirit of Ramadan.
3. Help with planning: Suggest meals based on budget, family size, or dietary needs.

Style: Warm, professional, and encouraging. Use occasional emojis like 🌙, ✨, 🥗. Keep responses concise but helpful. Use Markdown for formatting.`

// Transcript renders history as "User: ..." / "Assistant: ..." lines.
func Transcript(history []Message) string {
	if len(history) == 0 {
		history = []Message{{Role: RoleAssistant, Content: Greeting}}
	}
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	lines := make([]string, 0, len(history))
	for _, m := range history {
		speaker := "Assistant"
		if m.Role == RoleUser {
			speaker = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, m.Content))
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt assembles the full instruction for one reply.
func BuildPrompt(message string, history []Message) string {
	return fmt.Sprintf("%s\n\nChat History:\n%s\n\nUser: %s\n\nAssistant:", systemPrompt, Transcript(history), message)
}
