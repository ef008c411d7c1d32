package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/pptxgen/internal/adapters/secondary/pptx"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// deckReport is the JSON form of `pptxgen inspect --format json`
type deckReport struct {
	Path   string               `json:"path"`
	Size   string               `json:"size"`
	Slides []ports.SlideSummary `json:"slides"`
}

func newInspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the slides of a presentation",
		Long: `Read a .pptx file and list its slides with their titles and body text.

Example:
  pptxgen inspect deck.pptx
  pptxgen inspect deck.pptx --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}

func runInspect(cmd *cobra.Command, path, format string) error {
	if format != "table" && format != "json" {
		return usageErrorf("unknown format %q (must be table or json)", format)
	}

	slides, err := pptx.NewInspector().Inspect(cmd.Context(), path)
	if err != nil {
		return err
	}

	size := ""
	if info, err := os.Stat(path); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}

	if format == "json" {
		return printDeckJSON(cmd.OutOrStdout(), deckReport{Path: path, Size: size, Slides: slides})
	}
	return printDeckTable(cmd.OutOrStdout(), path, size, slides)
}

// printDeckTable prints one row per slide
func printDeckTable(out io.Writer, path, size string, slides []ports.SlideSummary) error {
	fmt.Fprintf(out, "%s: %d slides, %s\n\n", path, len(slides), size)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tBODY\tPICTURES")
	fmt.Fprintln(w, "-\t-----\t----\t--------")

	for _, s := range slides {
		title := s.Title
		if s.Subtitle != "" {
			title += " / " + s.Subtitle
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", s.Index+1, truncate(title, 40), truncate(strings.Join(s.Body, "; "), 60), s.Pictures)
	}

	return w.Flush()
}

// printDeckJSON prints the report as indented JSON
func printDeckJSON(out io.Writer, report deckReport) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-3]) + "..."
}
