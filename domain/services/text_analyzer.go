package services

import (
	"strings"
	"unicode"
)

// TextAnalyzer turns free text into the keyword tokens the matcher scores
// against. Tokenization is deliberately simple and deterministic: lowercase,
// split on non-letter/digit boundaries, drop stop words and very short
// tokens.
type TextAnalyzer interface {
	// Tokens returns the meaningful tokens of the text in order of first
	// appearance, de-duplicated.
	Tokens(text string) []string

	// KeywordSet returns the meaningful tokens of the text as a set.
	KeywordSet(text string) map[string]bool
}

// minTokenLen is the shortest token the analyzer keeps. "fog" stays in,
// stray two-letter fragments do not.
const minTokenLen = 3

// DefaultTextAnalyzer implements TextAnalyzer with a fixed English
// stop-word list.
type DefaultTextAnalyzer struct {
	stopWords map[string]bool
}

// NewDefaultTextAnalyzer creates an analyzer with common English stop words.
func NewDefaultTextAnalyzer() *DefaultTextAnalyzer {
	return &DefaultTextAnalyzer{stopWords: defaultStopWords()}
}

// Tokens returns the meaningful tokens of the text in order of first
// appearance, de-duplicated.
func (ta *DefaultTextAnalyzer) Tokens(text string) []string {
	var tokens []string
	seen := make(map[string]bool)

	ta.walk(text, func(word string) {
		if seen[word] {
			return
		}
		seen[word] = true
		tokens = append(tokens, word)
	})

	return tokens
}

// KeywordSet returns the meaningful tokens of the text as a set.
func (ta *DefaultTextAnalyzer) KeywordSet(text string) map[string]bool {
	set := make(map[string]bool)
	ta.walk(text, func(word string) {
		set[word] = true
	})
	return set
}

// walk runs the tokenizer over the text and calls fn for every kept token.
func (ta *DefaultTextAnalyzer) walk(text string, fn func(word string)) {
	text = strings.ToLower(text)

	var current strings.Builder
	emit := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if len(word) < minTokenLen || ta.stopWords[word] {
			return
		}
		fn(word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			emit()
		}
	}
	emit()
}

// defaultStopWords returns a set of common English stop words.
func defaultStopWords() map[string]bool {
	return map[string]bool{
		"the": true, "and": true, "for": true, "not": true, "with": true,
		"you": true, "this": true, "but": true, "his": true, "her": true,
		"from": true, "they": true, "say": true, "she": true, "will": true,
		"one": true, "all": true, "would": true, "there": true, "their": true,
		"what": true, "out": true, "about": true, "who": true, "get": true,
		"which": true, "when": true, "make": true, "can": true, "like": true,
		"time": true, "just": true, "him": true, "know": true, "take": true,
		"into": true, "your": true, "some": true, "could": true, "them": true,
		"see": true, "other": true, "than": true, "then": true, "now": true,
		"only": true, "come": true, "its": true, "over": true, "also": true,
		"back": true, "after": true, "use": true, "two": true, "how": true,
		"our": true, "way": true, "even": true, "new": true, "want": true,
		"because": true, "any": true, "these": true, "give": true, "day": true,
		"most": true, "was": true, "are": true, "been": true, "has": true,
		"had": true, "were": true, "did": true, "having": true, "may": true,
		"should": true, "too": true, "very": true, "feel": true, "feeling": true,
		"have": true, "need": true, "help": true,
	}
}
