// Package tfidf provides the default local vector provider, backed by the
// bag-of-words TF-IDF vectorizer. It is fully deterministic and needs no
// network access or credentials.
package tfidf

import (
	"github.com/programrank/programrank/vectorizer"
)

// Provider adapts a TF-IDF model to the VectorProvider interface.
type Provider struct {
	model *vectorizer.TFIDF
}

// NewProvider creates a TF-IDF vector provider.
func NewProvider(cfg vectorizer.Config) (*Provider, error) {
	model, err := vectorizer.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Provider{model: model}, nil
}

// Fit learns the feature space from the document corpus.
func (p *Provider) Fit(docs []string) error {
	return p.model.Fit(docs)
}

// Transform projects doc into the fitted feature space.
func (p *Provider) Transform(doc string) ([]float64, error) {
	return p.model.Transform(doc)
}

// Close releases resources held by the provider (no-op for TF-IDF).
func (p *Provider) Close() {}
