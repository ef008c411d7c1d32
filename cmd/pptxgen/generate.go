package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/pptxgen/internal/adapters/secondary/config"
	"github.com/fredcamaral/pptxgen/internal/adapters/secondary/opener"
	"github.com/fredcamaral/pptxgen/internal/adapters/secondary/parser"
	"github.com/fredcamaral/pptxgen/internal/adapters/secondary/pptx"
	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
	"github.com/fredcamaral/pptxgen/internal/domain/services"
)

// generateOptions holds the root command's mode flags
type generateOptions struct {
	sample        string
	jsonInput     string
	markdownInput string
	sampleJSON    string
	output        string
	template      string
	author        string
	open          bool
}

// mode returns the single generation mode selected on the command line
func (o *generateOptions) mode() (string, error) {
	var selected []string
	for _, m := range []struct {
		flag  string
		value string
	}{
		{"sample", o.sample},
		{"json", o.jsonInput},
		{"markdown", o.markdownInput},
		{"sample-json", o.sampleJSON},
	} {
		if m.value != "" {
			selected = append(selected, m.flag)
		}
	}

	switch len(selected) {
	case 0:
		return "", usageErrorf("one of --sample, --json, --markdown or --sample-json is required")
	case 1:
		return selected[0], nil
	default:
		return "", usageErrorf("only one of --%s may be given", strings.Join(selected, ", --"))
	}
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	mode, err := opts.mode()
	if err != nil {
		return err
	}

	if opts.output != "" && mode != "json" && mode != "markdown" {
		return usageErrorf("--output only applies to --json and --markdown")
	}

	cfg, err := loadConfig(cmd, map[string]interface{}{
		config.FlagTemplate: opts.template,
		config.FlagOutput:   opts.output,
		config.FlagAuthor:   opts.author,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := newLogger(cfg.Logging, cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	switch mode {
	case "sample-json":
		return writeSampleJSON(out, opts.sampleJSON)
	case "sample":
		return buildDeck(ctx, out, cfg, logger, services.SampleDeckOutline(), opts.sample, opts.viewer())
	}

	input := opts.jsonInput
	decoder := parser.DecoderFor(input)
	if mode == "markdown" {
		input = opts.markdownInput
		decoder = parser.NewMarkdownDecoder(parser.WithSourceName(input))
	}

	outline, err := readOutline(ctx, input, decoder)
	if err != nil {
		return err
	}
	counts := outline.CountByKind()
	logger.Debug("outline decoded",
		slog.String("input", input),
		slog.Int("slides", outline.SlideCount()),
		slog.Int("content", counts[entities.SlideKindContent]),
		slog.Int("text", counts[entities.SlideKindText]),
		slog.Int("image", counts[entities.SlideKindImage]),
	)

	return buildDeck(ctx, out, cfg, logger, outline, cfg.Deck.DefaultOutput, opts.viewer())
}

// viewer returns the deck opener when --open was given
func (o *generateOptions) viewer() ports.DeckOpener {
	if !o.open {
		return nil
	}
	return opener.NewOpener()
}

// loadConfig resolves the effective configuration for cmd
func loadConfig(cmd *cobra.Command, flags map[string]interface{}) (*entities.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if flags == nil {
		flags = make(map[string]interface{})
	}
	flags[config.FlagVerbose] = verbose

	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	service := services.NewConfigService(config.NewTOMLLoader(), config.NewConfigMerger())
	cfg, err := service.LoadConfig(cmd.Context(), workingDir, configPath, flags)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// readOutline reads and decodes the outline file at path
func readOutline(ctx context.Context, path string, decoder ports.OutlineDecoder) (*entities.Outline, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, entities.NewNotFoundError("open outline", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, entities.NewNotFoundError("open outline", path, errors.New("not a regular file"))
	}

	content, err := os.ReadFile(path) // #nosec G304 - path validated above
	if err != nil {
		return nil, entities.NewIOError("read outline", path, err)
	}

	outline, err := decoder.Decode(ctx, content)
	if err != nil {
		var derr *entities.DeckError
		if errors.As(err, &derr) && derr.Path == "" {
			derr.Path = path
		}
		return nil, err
	}
	return outline, nil
}

// buildDeck builds outline into a new deck, saves it to output and, with a
// non-nil viewer, opens the result
func buildDeck(ctx context.Context, out io.Writer, cfg *entities.Config, logger *slog.Logger, outline *entities.Outline, output string, viewer ports.DeckOpener) error {
	builder, err := pptx.New(
		pptx.WithTemplate(cfg.Deck.Template),
		pptx.WithLayouts(cfg.Layouts),
		pptx.WithStyle(cfg.Style),
		pptx.WithAuthor(cfg.Metadata.Author),
		pptx.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := services.NewOutlineInterpreter(logger).Build(ctx, outline, builder); err != nil {
		return err
	}

	path, err := builder.Save(output)
	if err != nil {
		return err
	}

	size := ""
	if info, err := os.Stat(path); err == nil {
		size = ", " + humanize.Bytes(uint64(info.Size()))
	}
	fmt.Fprintf(out, "Presentation created: %s (%d slides%s)\n", path, builder.SlideCount(), size)

	if logger.Enabled(ctx, slog.LevelDebug) {
		for _, slide := range builder.Slides() {
			logger.Debug("slide written",
				slog.Int("index", slide.Index),
				slog.String("title", slide.Title),
				slog.Int("paragraphs", len(slide.Body)),
				slog.Int("pictures", slide.Pictures),
			)
		}
	}

	if viewer != nil {
		if err := viewer.Open(path); err != nil {
			logger.Warn("could not open presentation", slog.String("path", path), slog.Any("error", err))
		}
	}
	return nil
}

// writeSampleJSON writes the sample outline to path
func writeSampleJSON(out io.Writer, path string) error {
	data, err := parser.NewJSONEncoder().Encode(services.SampleJSONOutline())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return entities.NewIOError("create directory", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - outline files are not secret
		return entities.NewIOError("write sample outline", path, err)
	}

	fmt.Fprintf(out, "Sample JSON outline created: %s\n", path)
	fmt.Fprintf(out, "Build it with: pptxgen --json %s --output presentation.pptx\n", path)
	return nil
}
