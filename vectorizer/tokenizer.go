package vectorizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
)

// DefaultTokenCacheSize is the default capacity of the tokenization memo.
const DefaultTokenCacheSize = 1024

// Tokenizer splits documents into case-folded word tokens, dropping
// stopwords and single-character tokens. Tokenization is a pure function
// of the input string, so results for repeated documents are memoized in
// a bounded LRU cache.
type Tokenizer struct {
	stopwords map[string]struct{}
	memo      *lru.Cache[string, []string]
}

// NewTokenizer creates a tokenizer with the given stopword set and memo capacity.
func NewTokenizer(stopwords map[string]struct{}, cacheSize int) (*Tokenizer, error) {
	memo, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Tokenizer{
		stopwords: stopwords,
		memo:      memo,
	}, nil
}

// Tokenize returns the word tokens of text in document order, duplicates
// included. The returned slice is shared with the memo and must not be mutated.
func (t *Tokenizer) Tokenize(text string) []string {
	if tokens, ok := t.memo.Get(text); ok {
		return tokens
	}

	// Caser values are stateful, so a fresh one is used per call.
	folded := cases.Fold().String(text)
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		if _, ok := t.stopwords[w]; ok {
			continue
		}
		tokens = append(tokens, w)
	}

	t.memo.Add(text, tokens)
	return tokens
}
