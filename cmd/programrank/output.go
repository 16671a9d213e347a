package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/programrank/programrank/types"
)

const noRecommendations = "No recommendations available."

// renderResult writes the recommendations to the command's stdout in the
// requested format.
func renderResult(cmd *cobra.Command, format string, result types.Result) error {
	out := cmd.OutOrStdout()

	switch format {
	case "plain":
		if len(result.Programs) == 0 {
			fmt.Fprintln(out, noRecommendations)
			return nil
		}
		for _, p := range result.Programs {
			fmt.Fprintln(out, formatProgram(p))
		}
		return nil
	case "table":
		if len(result.Programs) == 0 {
			fmt.Fprintln(out, noRecommendations)
			return nil
		}
		fmt.Fprintln(out, renderTable(result.Programs))
		return nil
	case "json":
		if result.Programs == nil {
			result.Programs = []types.Program{}
		}
		return writeJSON(cmd, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// formatProgram renders one recommendation line. A missing venue falls
// back to "unknown" instead of failing at output time.
func formatProgram(p types.Program) string {
	return fmt.Sprintf("Program Name: %s, Category: %s, Venue: %s", p.Name, p.Category, displayVenue(p))
}

func displayVenue(p types.Program) string {
	if p.Venue == "" {
		return "unknown"
	}
	return p.Venue
}

func renderTable(programs []types.Program) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Program Name", "Category", "Venue"})
	for _, p := range programs {
		tw.AppendRow(table.Row{p.Name, p.Category, displayVenue(p)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
