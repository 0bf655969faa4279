// Package validate classifies raw user input before it reaches the
// reasoning step: garbage is rejected with a reprompt, greetings are
// answered locally without touching any store.
package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// greetings is the closed set of phrases answered with the fixed warm
// greeting. Matching is exact on the trimmed, lower-cased input, never
// substring — "hello there" is a real message.
var greetings = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"hey":   {},
	"hii":   {},
	"hai":   {},
	"ok":    {},
	"okay":  {},
	"yo":    {},
	"yes":   {},
	"no":    {},
}

// IsValidInput reports whether text is substantive enough to process:
// at least two characters after trimming, containing at least one
// letter.
func IsValidInput(text string) bool {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < 2 {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// IsGreeting reports whether the trimmed, lower-cased text exactly
// matches one of the known greeting phrases.
func IsGreeting(text string) bool {
	_, ok := greetings[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
