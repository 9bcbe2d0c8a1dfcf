package shopping

import (
	"fmt"
	"net/url"
	"strings"
)

const whatsAppShareURL = "https://wa.me/?text="

// ShareText formats entries as a WhatsApp message for the named user.
func ShareText(entries []Entry, name string) string {
	var pending, done []string
	for _, e := range entries {
		if e.Completed {
			done = append(done, "✓ "+e.Name)
			continue
		}
		pending = append(pending, fmt.Sprintf("• %s (%s)", e.Name, e.Day))
	}

	return fmt.Sprintf(
		"*SehriMilan - Ramadan Shopping List* 🌙\n\n*Pending Items:*\n%s\n\n*Completed:*\n%s\n\n_Generated for %s by SehriMilan_",
		joinOrNone(pending), joinOrNone(done), name,
	)
}

// ShareURL returns the wa.me link carrying text.
func ShareURL(text string) string {
	// Spaces become %20. A literal '+' is already escaped to %2B.
	return whatsAppShareURL + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func joinOrNone(lines []string) string {
	if len(lines) == 0 {
		return "None"
	}
	return strings.Join(lines, "\n")
}
