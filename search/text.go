package search

import "strings"

// stopWords are common words excluded from keyword extraction.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"i": {}, "in": {}, "is": {}, "it": {}, "its": {}, "me": {},
	"my": {}, "of": {}, "on": {}, "or": {}, "some": {}, "that": {},
	"the": {}, "to": {}, "want": {}, "was": {}, "were": {}, "which": {},
	"will": {}, "with": {},
}

// QueryKeywords extracts lowercase keywords from a free-text query,
// stripping punctuation and dropping stop words and single characters.
func QueryKeywords(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !isWordRune(r)
	})

	keywords := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < 2 {
			continue
		}
		if _, ok := stopWords[field]; ok {
			continue
		}
		keywords = append(keywords, field)
	}
	return keywords
}

func isWordRune(r rune) bool {
	return r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		r > 127
}
