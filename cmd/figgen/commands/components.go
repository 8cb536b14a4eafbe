package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uistudio/figgen/internal/classify"
	"github.com/uistudio/figgen/internal/generate"
)

// componentRow is one entry of the components listing.
type componentRow struct {
	Kind   string `json:"kind" yaml:"kind"`
	Import string `json:"import" yaml:"import"`
}

// NewComponentsCommand creates the components command.
func NewComponentsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the recognizable widget kinds",
		Long: `List every widget kind the classifier can recognize, with the
component-library import line suggested for each.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printComponents(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, or yaml")

	return cmd
}

func printComponents(cmd *cobra.Command, format string) error {
	rows := componentRows()

	switch format {
	case "table":
		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"Kind", "Import"})

		for _, row := range rows {
			tw.AppendRow(table.Row{color.CyanString(row.Kind), row.Import})
		}

		tw.Render()

		return nil
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encode components: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encode components: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), string(data))

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
}

func componentRows() []componentRow {
	rows := make([]componentRow, 0, len(classify.AllKinds))

	for _, kind := range classify.AllKinds {
		rows = append(rows, componentRow{
			Kind:   string(kind),
			Import: generate.ImportLine(kind),
		})
	}

	return rows
}
