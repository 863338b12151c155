package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/nilfer/nilfer/internal/driver"
	"github.com/nilfer/nilfer/internal/inference"
)

var recordsCmd = &cobra.Command{
	Use:   "records [flags] <packages>",
	Short: "Export aggregated inference records",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecords,
}

func init() {
	recordsCmd.Flags().String("format", "yaml", "output format (yaml|msgpack)")
	recordsCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
}

// Current schema version - increment when the export format changes.
const recordsSchemaVersion uint16 = 1

// recordsExport is the on-disk shape of an inference run.
type recordsExport struct {
	Schema uint16        `yaml:"schema"`
	Units  []unitRecords `yaml:"units"`
}

type unitRecords struct {
	Package string             `yaml:"package"`
	Records []inference.Record `yaml:"records"`
}

func runRecords(cmd *cobra.Command, args []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	results, err := runPipeline(cmd, args)
	if err != nil {
		return err
	}

	export := buildExport(results)

	out := os.Stdout
	if outPath != "" {
		var f *os.File
		f, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		out = f
	}

	switch format {
	case "yaml":
		if err := yaml.NewEncoder(out).Encode(export); err != nil {
			return fmt.Errorf("encode records: %w", err)
		}
	case "msgpack":
		if err := msgpack.NewEncoder(out).Encode(export); err != nil {
			return fmt.Errorf("encode records: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}

func buildExport(results []driver.UnitResult) recordsExport {
	export := recordsExport{Schema: recordsSchemaVersion}
	for _, unit := range results {
		if len(unit.Records) == 0 {
			continue
		}

		export.Units = append(export.Units, unitRecords{
			Package: unit.Pkg.PkgPath,
			Records: unit.Records,
		})
	}

	return export
}
