// Package main provides the entry point for the figgen CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/uistudio/figgen/cmd/figgen/commands"
	"github.com/uistudio/figgen/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	// Local .env files carry FIGMA_TOKEN during development; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "figgen",
		Short: "Figgen - Figma design to component-library markup",
		Long: `Figgen converts Figma design trees into component-library markup.

Commands:
  generate    Generate markup from a Figma file or local design JSON
  inspect     Fetch and print a simplified design tree
  components  List the recognizable widget kinds
  mcp         Start the MCP server for AI agent integration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewComponentsCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "figgen %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
