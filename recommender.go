// Package programrank ranks catalog programs by textual similarity to a
// user's preferred categories.
package programrank

import (
	"errors"
	"fmt"

	"github.com/programrank/programrank/catalog"
	"github.com/programrank/programrank/options"
	"github.com/programrank/programrank/providers"
	"github.com/programrank/programrank/similarity"
	"github.com/programrank/programrank/types"
	"github.com/programrank/programrank/vectorizer"
)

// Recommender scores every catalog program against the programs matching a
// user's preferred categories and returns the best match for each, in
// catalog order.
type Recommender struct {
	providerFactory func() (types.VectorProvider, error)
	comparator      similarity.SimilarityFunc
}

// New creates a Recommender with functional options.
// This provides a more ergonomic API compared to NewRecommender.
func New(opts ...options.Option) (*Recommender, error) {
	cfg := options.NewConfig()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	factory := cfg.ProviderFactory
	if factory == nil {
		vcfg := vectorizer.Config{
			Stopwords:      cfg.Stopwords,
			TokenCacheSize: cfg.TokenCacheSize,
		}
		factory = func() (types.VectorProvider, error) {
			return providers.NewTFIDFProvider(vcfg)
		}
	}

	return NewRecommender(factory, cfg.Comparator)
}

// NewRecommender creates a Recommender from an explicit provider factory
// and comparator. The factory is invoked once per Recommend call, so
// concurrent runs over independent catalogs never share feature-space state.
func NewRecommender(providerFactory func() (types.VectorProvider, error), comparator similarity.SimilarityFunc) (*Recommender, error) {
	if providerFactory == nil {
		return nil, errors.New("provider factory cannot be nil")
	}
	if comparator == nil {
		return nil, errors.New("comparator cannot be nil")
	}

	return &Recommender{
		providerFactory: providerFactory,
		comparator:      comparator,
	}, nil
}

// Recommend returns up to topN recommended programs for the preferred
// categories. The feature space is fitted over the full catalog, each
// category-matched candidate is scored against every catalog program, and
// the candidate's single best match (ties to the lowest catalog index) is
// collected, preserving candidate order. A candidate's best match is
// usually itself, since candidates are scored against the full catalog,
// themselves included; duplicates are possible when two candidates share a
// best match.
//
// Empty outcomes are not errors: an empty catalog, categories matching
// nothing, or a non-positive topN all produce an empty Result whose Note
// explains why.
func (r *Recommender) Recommend(cat *catalog.Catalog, preferredCategories []string, topN int) (types.Result, error) {
	if cat == nil || cat.Len() == 0 {
		return types.Result{Note: "no programs available"}, nil
	}
	if topN <= 0 {
		return types.Result{Note: "top-n must be positive"}, nil
	}

	provider, err := r.providerFactory()
	if err != nil {
		return types.Result{}, fmt.Errorf("creating vector provider: %w", err)
	}
	defer provider.Close()

	docs := cat.Documents()
	if err := provider.Fit(docs); err != nil {
		return types.Result{}, fmt.Errorf("fitting feature space: %w", err)
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vec, err := provider.Transform(doc)
		if err != nil {
			return types.Result{}, fmt.Errorf("vectorizing program %d: %w", i, err)
		}
		vectors[i] = vec
	}

	programs := cat.All()
	wanted := make(map[string]struct{}, len(preferredCategories))
	for _, c := range preferredCategories {
		wanted[c] = struct{}{}
	}

	candidates := make([]int, 0, len(programs))
	for i, p := range programs {
		if _, ok := wanted[p.Category]; ok {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return types.Result{
			Note: fmt.Sprintf("no programs found for the selected categories: %v", preferredCategories),
		}, nil
	}

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	recommended := make([]types.Program, 0, len(candidates))
	for _, ci := range candidates {
		best := bestMatch(r.comparator, vectors[ci], vectors)
		recommended = append(recommended, programs[best])
	}

	return types.Result{Programs: recommended}, nil
}

// bestMatch returns the index of the catalog vector most similar to the
// candidate vector. Ties go to the lowest index.
func bestMatch(cmp similarity.SimilarityFunc, candidate []float64, vectors [][]float64) int {
	best := 0
	bestScore := cmp(candidate, vectors[0])
	for i := 1; i < len(vectors); i++ {
		if score := cmp(candidate, vectors[i]); score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}
