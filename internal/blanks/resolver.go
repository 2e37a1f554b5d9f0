// Package blanks resolves {{id}} placeholders in interactive-text templates.
// Placeholders are matched as exact literal tokens; nesting is not supported.
package blanks

import (
	"fmt"
	"strings"
)

// Token is one segment of a split template: either literal text or an input
// slot keyed by blank id. Exactly one of the two fields is set.
type Token struct {
	Literal string
	BlankID string
}

// IsBlank reports whether the token is an input slot.
func (t Token) IsBlank() bool {
	return t.BlankID != ""
}

// Verify checks that every blank id appears literally as {{id}} in the
// template. The returned error names the first missing id.
func Verify(template string, ids []string) error {
	for _, id := range ids {
		if !strings.Contains(template, placeholder(id)) {
			return fmt.Errorf("blank '%s' does not appear as {{%s}} in the template text", id, id)
		}
	}
	return nil
}

// Split scans the template once and returns alternating literal and blank
// tokens. A {{...}} sequence whose id is not in ids stays literal text.
func Split(template string, ids []string) []Token {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	var tokens []Token
	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open:], "}}")
		if end < 0 {
			break
		}
		end += open

		id := rest[open+2 : end]
		if !known[id] {
			// Not a declared blank; keep scanning past the opening braces.
			head := rest[:open+2]
			if len(tokens) > 0 && !tokens[len(tokens)-1].IsBlank() {
				tokens[len(tokens)-1].Literal += head
			} else {
				tokens = append(tokens, Token{Literal: head})
			}
			rest = rest[open+2:]
			continue
		}

		if open > 0 {
			if len(tokens) > 0 && !tokens[len(tokens)-1].IsBlank() {
				tokens[len(tokens)-1].Literal += rest[:open]
			} else {
				tokens = append(tokens, Token{Literal: rest[:open]})
			}
		}
		tokens = append(tokens, Token{BlankID: id})
		rest = rest[end+2:]
	}

	if rest != "" {
		if len(tokens) > 0 && !tokens[len(tokens)-1].IsBlank() {
			tokens[len(tokens)-1].Literal += rest
		} else {
			tokens = append(tokens, Token{Literal: rest})
		}
	}
	return tokens
}

func placeholder(id string) string {
	return "{{" + id + "}}"
}
