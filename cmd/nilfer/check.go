package main

import (
	"fmt"
	"go/types"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nilfer/nilfer/internal/render"
	"github.com/nilfer/nilfer/internal/symid"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <packages>",
	Short: "Report inferred nullability at the declarations it describes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("evidence", true, "attach evidence provenance notes to each verdict")
}

var (
	posColor  = color.New(color.Bold)
	noteColor = color.New(color.Faint)
)

func runCheck(cmd *cobra.Command, args []string) error {
	evidence, err := cmd.Flags().GetBool("evidence")
	if err != nil {
		return fmt.Errorf("failed to get evidence flag: %w", err)
	}

	results, err := runPipeline(cmd, args)
	if err != nil {
		return err
	}

	for _, unit := range results {
		if len(unit.Records) == 0 {
			continue
		}

		var rep render.Reporter
		rd := render.NewRenderer(
			unit.Pkg.Fset,
			unit.Pkg.TypesInfo,
			render.BuildIndex(unit.Records),
			func(fn *types.Func) (string, bool) { return symid.For(fn) },
			render.Options{Evidence: evidence},
			&rep,
		)
		for _, file := range unit.Pkg.Syntax {
			rd.Render(file)
		}

		for _, d := range rep.Diags() {
			pos := unit.Pkg.Fset.Position(d.Pos)
			switch d.Severity {
			case render.SeverityReport:
				fmt.Fprintf(os.Stdout, "%s: %s\n", posColor.Sprint(pos), d.Message)
			case render.SeverityNote:
				fmt.Fprintf(os.Stdout, "    %s\n", noteColor.Sprintf("%s: %s", pos, d.Message))
			}
		}
	}

	return nil
}
