package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	opts := &solveOptions{}

	rootCmd := &cobra.Command{
		Use:   "quartiles [image]",
		Short: "Solve word-tile puzzles",
		Long: `quartiles finds every dictionary word formable by concatenating
1-4 letter-fragment tiles in some order.

Tiles come from OCR of a puzzle screenshot when an image path is given,
or from the built-in default board otherwise. Results are grouped by the
number of tiles used, deduplicated, and printed with a summary.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.imagePath = args[0]
			}
			return runSolve(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&opts.dictionaryPath, "dictionary", "", "Word-list cache file (default twl06.txt)")
	rootCmd.Flags().StringVar(&opts.dictionaryURL, "dictionary-url", "", "URL fetched when the cache file is missing")
	rootCmd.Flags().StringVarP(&opts.language, "language", "l", "", "Tesseract language code (default eng)")
	rootCmd.Flags().IntVar(&opts.maxTiles, "max-tiles", 0, "Largest number of tiles per word (default 4)")
	rootCmd.Flags().BoolVar(&opts.noPreprocess, "no-preprocess", false, "Feed the raw image to OCR without preparation")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "quartiles %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
