package bfalang

const (
	KeywordInc       = "INC"
	KeywordDec       = "DEC"
	KeywordLeft      = "LEFT"
	KeywordRight     = "RIGHT"
	KeywordPrint     = "PRINT"
	KeywordLoopStart = "LOOP_START"
	KeywordLoopEnd   = "LOOP_END"
)

// Keywords is the complete instruction vocabulary. Matching is exact and case sensitive.
var Keywords = []string{
	KeywordInc,
	KeywordDec,
	KeywordLeft,
	KeywordRight,
	KeywordPrint,
	KeywordLoopStart,
	KeywordLoopEnd,
}

var keywordSet = func() map[string]bool {
	ret := make(map[string]bool, len(Keywords))
	for _, keyword := range Keywords {
		ret[keyword] = true
	}
	return ret
}()

func IsKeyword(token string) bool {
	return keywordSet[token]
}
