package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "donation-console",
		Short:        "Blood donation appointment administration",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "message language (en, vi)")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log requests to stderr")
	rootCmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, "answer yes to confirmations")

	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(surveyCmd(opts))
	rootCmd.AddCommand(statusCmd(opts))
	rootCmd.AddCommand(donationCmd(opts))
	rootCmd.AddCommand(exportCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
