package bfalang

import "github.com/samber/lo"

// Validate reports whether every token is a known keyword.
// Loop balance is checked by Parse, not here.
func Validate(tokens []string) bool {
	for _, token := range tokens {
		if !IsKeyword(token) {
			return false
		}
	}
	return true
}

// Unrecognized returns the indexes of all tokens outside the vocabulary.
func Unrecognized(tokens []string) []int {
	return lo.FilterMap(tokens, func(token string, i int) (int, bool) {
		return i, !IsKeyword(token)
	})
}
