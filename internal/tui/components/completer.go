package components

import (
	"sort"
	"strings"
)

// CompletionSource supplies the names a Completer matches against.
type CompletionSource interface {
	// CommandNames lists the commands completed for the first token.
	CommandNames() []string
	// EntryNames lists the entries of the current directory.
	EntryNames() []string
}

// Completer provides tab-completion and cycling for terminal input lines.
// The first token completes to a command name; any later token completes to
// an entry of the current directory. It tracks state across Tab presses to
// cycle through matches.
//
// Usage:
//
//	completer := NewCompleter(source)
//
//	// On Tab press:
//	completed := completer.Next(input.Value())
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type Completer struct {
	source     CompletionSource
	matches    []string
	cycleIndex int
	lastHead   string
}

// NewCompleter creates a completer reading names from source.
func NewCompleter(source CompletionSource) *Completer {
	return &Completer{source: source}
}

// Next returns the next completion for the given input.
// On first call (or after the leading tokens change), it computes matches.
// On subsequent calls with the same leading tokens, it cycles through matches.
func (c *Completer) Next(input string) string {
	head, prefix := splitInput(input)

	if head != c.lastHead || c.matches == nil {
		c.matches = c.findMatches(head, prefix)
		c.cycleIndex = 0
		c.lastHead = head

		if len(c.matches) == 0 {
			return input
		}

		// First Tab: extend to the longest common prefix when that adds something
		if len(c.matches) > 1 {
			candidate := head + longestCommonPrefix(c.matches)
			if len(candidate) > len(input) {
				return candidate
			}
		}

		return head + c.matches[c.cycleIndex]
	}

	if len(c.matches) == 0 {
		return input
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return head + c.matches[c.cycleIndex]
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *Completer) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastHead = ""
}

func (c *Completer) findMatches(head, prefix string) []string {
	var names []string
	if strings.TrimSpace(head) == "" {
		names = c.source.CommandNames()
	} else {
		names = c.source.EntryNames()
	}

	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)
	return matches
}

// splitInput splits an input line before its last token.
//
//	"cd do"  → ("cd ", "do")
//	"cd "    → ("cd ", "")
//	"pr"     → ("", "pr")
//	""       → ("", "")
func splitInput(input string) (head, prefix string) {
	idx := strings.LastIndex(input, " ")
	if idx < 0 {
		return "", input
	}
	return input[:idx+1], input[idx+1:]
}

// longestCommonPrefix finds the longest common prefix among strs.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	first := strs[0]
	for i := 0; i < len(first); i++ {
		for _, s := range strs[1:] {
			if i >= len(s) || s[i] != first[i] {
				return first[:i]
			}
		}
	}
	return first
}
