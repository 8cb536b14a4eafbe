package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uistudio/figgen/internal/design"
)

// ErrBadFormat is returned for an unrecognized output format.
var ErrBadFormat = errors.New("unknown output format")

// InspectCommand holds flags for the inspect command.
type InspectCommand struct {
	file       string
	input      string
	format     string
	configPath string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	ic := &InspectCommand{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Fetch and print a simplified design tree",
		Long: `Fetch a Figma file (or read a local design JSON) and print its
simplified tree: node ids, names, kinds, text, geometry, and the shared
style/variable table. Useful for checking what the classifier will see.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ic.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&ic.file, "file", "f", "", "figma file URL or bare file key")
	cmd.Flags().StringVarP(&ic.input, "input", "i", "", "local design-tree JSON file")
	cmd.Flags().StringVar(&ic.format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&ic.configPath, "config", "", "explicit config file path")

	return cmd
}

func (ic *InspectCommand) run(cmd *cobra.Command) error {
	cfg, err := loadConfig(ic.configPath)
	if err != nil {
		return err
	}

	var doc *design.Document

	switch {
	case ic.input != "" && ic.file != "":
		return ErrBothInputs
	case ic.input != "":
		doc, err = readLocalDocument(ic.input)
	case ic.file != "":
		doc, err = fetchDocument(cmd, cfg, ic.file)
	default:
		return ErrNoInput
	}

	if err != nil {
		return err
	}

	return printDocument(cmd, doc, ic.format)
}

func printDocument(cmd *cobra.Command, doc *design.Document, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), string(data))

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
}
