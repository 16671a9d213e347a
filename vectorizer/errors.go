package vectorizer

import "errors"

// Common vectorizer errors
var (
	// ErrEmptyCorpus indicates Fit was called with no documents
	ErrEmptyCorpus = errors.New("cannot fit an empty corpus")

	// ErrNotFitted indicates Transform was called before Fit
	ErrNotFitted = errors.New("vectorizer has not been fitted")

	// ErrInvalidCacheSize indicates the token cache size is invalid (<0)
	ErrInvalidCacheSize = errors.New("token cache size cannot be negative")
)
