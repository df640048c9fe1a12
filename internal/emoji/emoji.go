// Package emoji parses custom emoji references from user-supplied text and
// computes guild emoji slot budgets.
package emoji

import (
	"fmt"
	"regexp"
)

var (
	refPattern     = regexp.MustCompile(`^<(a)?:([a-zA-Z0-9_]{2,32}):(\d{17,20})>$`)
	allRefsPattern = regexp.MustCompile(`<(a)?:([a-zA-Z0-9_]{2,32}):(\d{17,20})>`)
	namePattern    = regexp.MustCompile(`^[a-zA-Z0-9_]{2,32}$`)
)

// Ref is one parsed custom emoji reference.
type Ref struct {
	ID       string
	Name     string
	Animated bool
}

// URL returns the CDN asset URL for the emoji, gif for animated and png otherwise.
func (r Ref) URL() string {
	ext := "png"
	if r.Animated {
		ext = "gif"
	}
	return fmt.Sprintf("https://cdn.discordapp.com/emojis/%s.%s", r.ID, ext)
}

// String renders the reference back in Discord's message syntax.
func (r Ref) String() string {
	if r.Animated {
		return fmt.Sprintf("<a:%s:%s>", r.Name, r.ID)
	}
	return fmt.Sprintf("<:%s:%s>", r.Name, r.ID)
}

// Parse matches a single token against the custom emoji syntax.
func Parse(token string) (Ref, bool) {
	m := refPattern.FindStringSubmatch(token)
	if m == nil {
		return Ref{}, false
	}
	return Ref{ID: m[3], Name: m[2], Animated: m[1] != ""}, true
}

// Extract returns every custom emoji reference found in text, in order,
// duplicates included. Callers dedup by URL where required.
func Extract(text string) []Ref {
	matches := allRefsPattern.FindAllStringSubmatch(text, -1)
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Ref{ID: m[3], Name: m[2], Animated: m[1] != ""})
	}
	return refs
}

// ValidName reports whether s is usable as an emoji name: 2-32 word characters.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}
