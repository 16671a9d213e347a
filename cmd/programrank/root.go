package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	opts := &recommendOptions{}

	rootCmd := &cobra.Command{
		Use:           "programrank",
		Short:         "Recommend catalog programs by similarity to preferred categories",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.programsPath, "programs", "", "Path to program data JSON file")
	flags.StringVar(&opts.preferencesPath, "preferences", "", "Path to user preferences JSON file")
	flags.IntVar(&opts.topN, "top_n", 5, "Number of recommended programs to return")
	flags.StringVar(&opts.format, "format", "plain", "Output format: plain, table, or json")
	flags.StringVar(&opts.provider, "provider", "tfidf", "Vector provider: tfidf or openai")
	flags.StringVar(&opts.model, "model", "", "Embedding model for the openai provider")
	flags.StringVar(&opts.comparator, "comparator", "cosine", "Similarity function: cosine, dot, euclidean, manhattan, or pearson")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	_ = rootCmd.MarkFlagRequired("programs")
	_ = rootCmd.MarkFlagRequired("preferences")

	return rootCmd
}
