// Package vectorizer implements the TF-IDF feature space used to compare
// program documents: a vocabulary of word tokens with inverse-document-
// frequency weights, fitted over a corpus and able to project any document
// into the same fixed-dimensional space.
package vectorizer

import (
	"fmt"
	"math"
	"sort"
)

// Config holds configuration for the TF-IDF vectorizer.
type Config struct {
	// Stopwords is the set of terms excluded from the vocabulary.
	// Nil selects DefaultStopwords; an empty non-nil set disables filtering.
	Stopwords map[string]struct{}

	// TokenCacheSize bounds the tokenization memo.
	// Zero selects DefaultTokenCacheSize.
	TokenCacheSize int
}

// Validate checks if the vectorizer configuration is valid.
func (c Config) Validate() error {
	if c.TokenCacheSize < 0 {
		return ErrInvalidCacheSize
	}
	return nil
}

// TFIDF is a term-weighting model over a fitted corpus. Fit learns the
// vocabulary and idf weights; Transform projects documents into the fitted
// space. Refitting fully replaces the learned state, so one ranking run
// can never observe the vocabulary of another corpus.
type TFIDF struct {
	tok   *Tokenizer
	vocab map[string]int
	idf   []float64
}

// New creates an unfitted TF-IDF vectorizer.
func New(cfg Config) (*TFIDF, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vectorizer config: %w", err)
	}

	stopwords := cfg.Stopwords
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	cacheSize := cfg.TokenCacheSize
	if cacheSize == 0 {
		cacheSize = DefaultTokenCacheSize
	}

	tok, err := NewTokenizer(stopwords, cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	return &TFIDF{tok: tok}, nil
}

// Fit learns the vocabulary and inverse document frequencies from docs.
// Any previously fitted state is discarded. A corpus whose every token is
// a stopword yields an empty vocabulary, which is valid: all transformed
// vectors are then zero-dimensional.
func (v *TFIDF) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range v.tok.Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		vocab[term] = i
		// Smoothed idf: terms present in every document keep a non-zero
		// weight, so a record remains maximally similar to its own text.
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	v.vocab = vocab
	v.idf = idf
	return nil
}

// Transform projects doc into the fitted feature space as a dense,
// L2-normalized vector. Terms outside the vocabulary are ignored; a
// document with no in-vocabulary terms transforms to the zero vector.
func (v *TFIDF) Transform(doc string) ([]float64, error) {
	if v.vocab == nil {
		return nil, ErrNotFitted
	}

	vec := make([]float64, len(v.idf))
	for _, tok := range v.tok.Tokenize(doc) {
		if i, ok := v.vocab[tok]; ok {
			vec[i] += v.idf[i]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec, nil
}

// VocabularySize returns the number of terms in the fitted vocabulary.
func (v *TFIDF) VocabularySize() int {
	return len(v.vocab)
}
