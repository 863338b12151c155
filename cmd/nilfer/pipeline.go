package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nilfer/nilfer/internal/config"
	"github.com/nilfer/nilfer/internal/driver"
	"github.com/nilfer/nilfer/internal/sugar"
)

// runPipeline resolves shared flags plus the configuration file, loads
// the requested packages and runs inference over them.
func runPipeline(cmd *cobra.Command, patterns []string) ([]driver.UnitResult, error) {
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	includeTrivial, err := cmd.Root().PersistentFlags().GetBool("include-trivial")
	if err != nil {
		return nil, fmt.Errorf("failed to get include-trivial flag: %w", err)
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if !cmd.Root().PersistentFlags().Changed("include-trivial") && cfg.IncludeTrivial != nil {
		includeTrivial = *cfg.IncludeTrivial
	}

	markers := sugar.DefaultMarkers()
	for _, m := range cfg.Markers {
		markers.Register(m.Package, m.Nonnull, m.Nullable)
	}

	pkgs, err := driver.Load(cmd.Context(), patterns)
	if err != nil {
		return nil, err
	}

	return driver.Infer(cmd.Context(), pkgs, driver.Options{
		IncludeTrivial: includeTrivial,
		Jobs:           jobs,
		Markers:        markers,
	})
}
