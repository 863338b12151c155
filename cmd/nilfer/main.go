package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nilfer/nilfer/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "nilfer",
	Short: "Nullability inference for Go pointer slots",
	Long: `nilfer collects nullability evidence from annotations and usage in Go
packages and reports what it would mark nonnull or nullable`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(recordsCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a nilfer configuration file")
	rootCmd.PersistentFlags().Bool("include-trivial", false, "keep slots whose only evidence restates an explicit annotation")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers (0=auto)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
