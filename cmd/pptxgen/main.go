package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

func main() {
	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, stopping...")
		cancel()
	}()

	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", describeError(err))
		return exitCode(err)
	}
	return exitOK
}

// newRootCmd builds a fresh command tree
func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "pptxgen",
		Short: "Generate PowerPoint presentations from outlines",
		Long: `pptxgen builds .pptx presentations from a declarative outline written in
JSON, YAML or Markdown, optionally using the layouts of a template deck.

Examples:
  pptxgen --sample demo.pptx
  pptxgen --sample-json outline.json
  pptxgen --json outline.json --output deck.pptx
  pptxgen --json outline.yaml --template brand.pptx -o deck.pptx
  pptxgen --markdown talk.md -o talk.pptx`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	// Wrap flag parsing errors so they exit as usage errors
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ./pptxgen.toml)")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.sample, "sample", "", "Create a sample presentation at `OUTPUT`")
	flags.StringVar(&opts.jsonInput, "json", "", "Create a presentation from the JSON or YAML outline at `INPUT`")
	flags.StringVar(&opts.markdownInput, "markdown", "", "Create a presentation from the Markdown file at `INPUT`")
	flags.StringVar(&opts.sampleJSON, "sample-json", "", "Write a sample JSON outline to `OUTPUT`")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file for --json and --markdown (default from config: presentation.pptx)")
	flags.StringVar(&opts.template, "template", "", "Template `PATH` whose layouts are used")
	flags.StringVar(&opts.author, "author", "", "Author recorded in the document properties")
	flags.BoolVar(&opts.open, "open", false, "Open the presentation in the default viewer once it is saved")

	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
