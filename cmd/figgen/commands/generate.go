package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uistudio/figgen/internal/config"
	"github.com/uistudio/figgen/internal/design"
	"github.com/uistudio/figgen/internal/figma"
	"github.com/uistudio/figgen/internal/generate"
)

var (
	// ErrNoInput is returned when neither a file reference nor a local
	// input path was given.
	ErrNoInput = errors.New("either --file or --input is required")
	// ErrBothInputs is returned when both input sources were given.
	ErrBothInputs = errors.New("--file and --input are mutually exclusive")
	// ErrNoToken is returned when a fetch is requested without a token.
	ErrNoToken = errors.New("no figma token configured; set FIGMA_TOKEN, FIGGEN_TOKEN, or the config token")
)

// GenerateCommand holds configuration and flags for the generate command.
type GenerateCommand struct {
	file       string
	input      string
	output     string
	configPath string

	noStyles  bool
	noDebug   bool
	rawIDs    bool
	noImports bool
	noWrap    bool
	noSummary bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	gc := &GenerateCommand{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate component-library markup from a design tree",
		Long: `Generate markup from a Figma file (fetched over the REST API) or from a
local simplified design-tree JSON file. Recognized widgets render through
their component templates; everything else falls back to structural markup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gc.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&gc.file, "file", "f", "", "figma file URL or bare file key")
	cmd.Flags().StringVarP(&gc.input, "input", "i", "", "local design-tree JSON file")
	cmd.Flags().StringVarP(&gc.output, "output", "o", "", "write markup to this file instead of stdout")
	cmd.Flags().StringVar(&gc.configPath, "config", "", "explicit config file path")

	cmd.Flags().BoolVar(&gc.noStyles, "no-styles", false, "omit the base style text")
	cmd.Flags().BoolVar(&gc.noDebug, "no-debug-comments", false, "omit fragment origin comments")
	cmd.Flags().BoolVar(&gc.rawIDs, "raw-ids", false, "use raw design-tool ids instead of normalized names")
	cmd.Flags().BoolVar(&gc.noImports, "no-imports", false, "omit the import-suggestion list")
	cmd.Flags().BoolVar(&gc.noWrap, "no-wrap", false, "do not wrap the output in one container")
	cmd.Flags().BoolVar(&gc.noSummary, "no-summary", false, "do not print the component usage summary")

	return cmd
}

func (gc *GenerateCommand) run(cmd *cobra.Command) error {
	cfg, err := loadConfig(gc.configPath)
	if err != nil {
		return err
	}

	doc, err := gc.loadDocument(cmd, cfg)
	if err != nil {
		return err
	}

	opts := gc.options(optionsFromConfig(cfg))

	result := generate.New().Generate(doc.Nodes, doc.GlobalVars, opts)

	writeErr := gc.writeOutput(cmd, result.Assemble(opts))
	if writeErr != nil {
		return writeErr
	}

	if !gc.noSummary {
		printUsageSummary(cmd, result)
	}

	return nil
}

// loadDocument resolves the design document from the local file or the API.
func (gc *GenerateCommand) loadDocument(cmd *cobra.Command, cfg *config.Config) (*design.Document, error) {
	switch {
	case gc.input != "" && gc.file != "":
		return nil, ErrBothInputs
	case gc.input != "":
		return readLocalDocument(gc.input)
	case gc.file != "":
		return fetchDocument(cmd, cfg, gc.file)
	default:
		return nil, ErrNoInput
	}
}

// readLocalDocument reads and schema-validates a local design-tree JSON file.
func readLocalDocument(path string) (*design.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	doc, err := design.DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// fetchDocument fetches the simplified tree from the Figma API.
func fetchDocument(cmd *cobra.Command, cfg *config.Config, fileRef string) (*design.Document, error) {
	client, err := buildClient(cfg, nil)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, ErrNoToken
	}

	key, nodeIDs, err := figma.ParseFileRef(fileRef)
	if err != nil {
		return nil, err
	}

	doc, err := client.FetchDocument(cmd.Context(), key, nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}

	return doc, nil
}

// options applies the command flags over the configured defaults.
func (gc *GenerateCommand) options(defaults generate.Options) generate.Options {
	opts := defaults

	if gc.noStyles {
		opts.IncludeStyles = false
	}

	if gc.noDebug {
		opts.DebugComments = false
	}

	if gc.rawIDs {
		opts.NormalizedIDs = false
	}

	if gc.noImports {
		opts.SuggestImports = false
	}

	if gc.noWrap {
		opts.WrapRoot = false
	}

	return opts
}

// writeOutput writes the assembled markup to the output file or stdout.
func (gc *GenerateCommand) writeOutput(cmd *cobra.Command, markup string) error {
	if gc.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), markup)

		return nil
	}

	err := os.WriteFile(gc.output, []byte(markup+"\n"), 0o644)
	if err != nil {
		return fmt.Errorf("write output %s: %w", gc.output, err)
	}

	return nil
}

// printUsageSummary renders the per-kind usage counts as a table on stderr.
func printUsageSummary(cmd *cobra.Command, result generate.Result) {
	if len(result.UsedKinds) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("No components recognized; generic markup only."))

		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.ErrOrStderr())
	tw.AppendHeader(table.Row{"Component", "Count"})

	for _, kind := range result.UsedKinds {
		tw.AppendRow(table.Row{string(kind), result.UsageCounts[kind]})
	}

	fmt.Fprintln(cmd.ErrOrStderr(), color.CyanString("Components used:"))
	tw.Render()
}
