package bfalang

import (
	"strings"

	"github.com/samber/lo"
)

const CommentPrefix = "//"

var lineEndings = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
)

// Token is a tokenized line with its 1-based line number in the source.
type Token struct {
	Text string
	Line int
}

func TokenLines(source string) []Token {
	lines := strings.Split(lineEndings.Replace(source), "\n")
	tokens := lo.Map(lines, func(line string, i int) Token {
		return Token{
			Text: strings.TrimSpace(line),
			Line: i + 1,
		}
	})
	return lo.Filter(tokens, func(token Token, _ int) bool {
		return token.Text != "" &&
			!strings.HasPrefix(token.Text, CommentPrefix)
	})
}

// Tokenize splits program text into instruction words, one per non-blank, non-comment line.
// Token content is not checked here.
func Tokenize(source string) []string {
	return lo.Map(TokenLines(source), func(token Token, _ int) string {
		return token.Text
	})
}
