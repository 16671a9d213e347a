package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/programrank/programrank"
	"github.com/programrank/programrank/catalog"
	"github.com/programrank/programrank/loader"
	"github.com/programrank/programrank/options"
	"github.com/programrank/programrank/similarity"
)

type recommendOptions struct {
	programsPath    string
	preferencesPath string
	topN            int
	format          string
	provider        string
	model           string
	comparator      string
	verbose         bool
}

var comparators = map[string]similarity.SimilarityFunc{
	"cosine":    similarity.CosineSimilarity,
	"dot":       similarity.DotProductSimilarity,
	"euclidean": similarity.EuclideanSimilarity,
	"manhattan": similarity.ManhattanSimilarity,
	"pearson":   similarity.PearsonCorrelationSimilarity,
}

func runRecommend(cmd *cobra.Command, opts *recommendOptions) error {
	logger := newLogger(cmd, opts.verbose)

	programs, err := loader.LoadPrograms(opts.programsPath)
	if err != nil {
		return err
	}
	preferred, err := loader.LoadPreferences(opts.preferencesPath)
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded", "programs", len(programs), "categories", preferred)

	comparator, ok := comparators[opts.comparator]
	if !ok {
		return fmt.Errorf("unknown comparator %q", opts.comparator)
	}

	recOpts := []options.Option{options.WithComparator(comparator)}
	switch opts.provider {
	case "tfidf":
		recOpts = append(recOpts, options.WithTFIDFProvider())
	case "openai":
		// API key resolution is left to the provider (OPENAI_API_KEY).
		if opts.model != "" {
			recOpts = append(recOpts, options.WithOpenAIProvider("", opts.model))
		} else {
			recOpts = append(recOpts, options.WithOpenAIProvider(""))
		}
	default:
		return fmt.Errorf("unknown provider %q", opts.provider)
	}

	rec, err := programrank.New(recOpts...)
	if err != nil {
		return err
	}

	result, err := rec.Recommend(catalog.New(programs...), preferred, opts.topN)
	if err != nil {
		return err
	}
	if result.Note != "" {
		logger.Debug("ranker note", "note", result.Note)
	}
	logger.Debug("recommendations generated", "count", len(result.Programs))

	return renderResult(cmd, opts.format, result)
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
