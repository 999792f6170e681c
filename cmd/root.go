package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Fitness tracker CLI: workout summaries from raw sensor packets",
}

func Execute() error {
	return rootCmd.Execute()
}
