// Package cmd — parse command.
// Orchestrates the pipeline: fetch (or read) → extract → normalize →
// assemble → render → write. Flag validation and renderer selection
// live here; the pipeline stages stay pure.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/cargotab/batch"
	"github.com/gaurav-prasanna/cargotab/config"
	"github.com/gaurav-prasanna/cargotab/core"
	"github.com/gaurav-prasanna/cargotab/core/assemble"
	"github.com/gaurav-prasanna/cargotab/core/extract"
	"github.com/gaurav-prasanna/cargotab/core/fetch"
	"github.com/gaurav-prasanna/cargotab/core/normalize"
	"github.com/gaurav-prasanna/cargotab/core/output"
	"github.com/gaurav-prasanna/cargotab/core/render"
	"github.com/gaurav-prasanna/cargotab/core/snapshot"
)

// Flag variables.
var (
	flagSource    string
	flagInput     string
	flagBatch     string
	flagJSON      bool
	flagMarkdown  bool
	flagPDF       bool
	flagRaw       bool
	flagSnapshot  bool
	flagOutputDir string
	flagConfig    string
)

var parseCmd = &cobra.Command{
	Use:   "parse <tracking-id>",
	Short: "Parse a tracking page into normalized records",
	Long: `Parse fetches the tracking page for the given id (or reads it from
--input), extracts every report table, normalizes it according to the
source's layout, and writes the result envelope.

Examples:
  cargotab parse 176-12345675 --source skycargo --json
  cargotab parse MSKU1234567 --source sealine --markdown --output_dir ./out
  cargotab parse 176-12345675 --source skycargo --json --input page.html
  cargotab parse --source sealine --json --batch containers.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&flagSource, "source", "", "Source system (skycargo or sealine)")
	parseCmd.Flags().StringVar(&flagInput, "input", "", "Read the page from a local HTML file instead of fetching")
	parseCmd.Flags().StringVar(&flagBatch, "batch", "", "File with one tracking id per line")

	// Output format flags (mutually exclusive).
	parseCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the envelope as JSON")
	parseCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a markdown report")
	parseCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF report")

	parseCmd.Flags().BoolVar(&flagRaw, "raw", false, "Emit raw row strings instead of keyed records")
	parseCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Also write a markdown snapshot of the fetched page")
	parseCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: config, then current directory)")
	parseCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a cargotab TOML config file")

	_ = parseCmd.MarkFlagRequired("source")
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := validateFlags(args); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	source := core.Source(flagSource)
	normalizer, err := normalize.ForSource(source)
	if err != nil {
		return err
	}

	renderer := selectRenderer()

	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	writer, err := output.New(outputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	granularity := assemble.GranularityRecords
	if flagRaw {
		granularity = assemble.GranularityRaw
	}

	p := &pipeline{
		cfg:        cfg,
		source:     source,
		fetcher:    fetch.New(time.Duration(cfg.TimeoutSeconds) * time.Second),
		extractor:  extract.New(),
		normalizer: normalizer,
		assembler:  assemble.New(granularity),
		renderer:   renderer,
		writer:     writer,
	}

	ctx := context.Background()

	if flagBatch != "" {
		return runBatch(ctx, p, flagBatch)
	}
	return p.run(ctx, args[0])
}

// pipeline bundles the stages for one parse invocation.
type pipeline struct {
	cfg        *config.Config
	source     core.Source
	fetcher    core.Fetcher
	extractor  core.GridExtractor
	normalizer core.Normalizer
	assembler  *assemble.Assembler
	renderer   core.Renderer
	writer     *output.Writer
}

// run processes a single tracking id end to end.
func (p *pipeline) run(ctx context.Context, trackingID string) error {
	html, err := p.loadPage(ctx, trackingID)
	if err != nil {
		return err
	}

	tables, err := p.extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	log.Debug("extracted tables", "tracking_id", trackingID, "count", len(tables))

	sections := make([][]core.ReportSection, len(tables))
	for i, table := range tables {
		sections[i] = p.normalizer.Normalize(table)
	}

	env := p.assembler.Assemble(trackingID, p.source, tables, sections)
	if label := p.cfg.Sources[string(p.source)].Label; label != "" {
		env.SourceName = label
	}
	if env.Warning != "" {
		log.Warn(env.Warning, "tracking_id", trackingID)
	}

	data, err := p.renderer.Render(env)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := p.writer.Write(trackingID, string(p.source), data, p.renderer.Extension())
	if err != nil {
		return err
	}
	log.Info("written", "path", path, "tables", env.TotalTables)

	if flagSnapshot {
		markdown, err := snapshot.ToMarkdown(html)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		snapPath, err := p.writer.WriteSnapshot(trackingID, string(p.source), markdown)
		if err != nil {
			return err
		}
		log.Info("snapshot written", "path", snapPath)
	}

	return nil
}

// loadPage reads the page from --input or fetches it from the source's
// configured URL template.
func (p *pipeline) loadPage(ctx context.Context, trackingID string) (string, error) {
	if flagInput != "" {
		data, err := os.ReadFile(flagInput)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	url, err := p.cfg.TrackingURL(p.source, trackingID)
	if err != nil {
		return "", err
	}
	log.Debug("fetching", "url", url)

	result, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	return result.HTML, nil
}

// runBatch processes every unique tracking id from the batch file.
func runBatch(ctx context.Context, p *pipeline, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}

	queue := batch.NewQueue()
	for _, line := range strings.Split(string(data), "\n") {
		queue.Add(line)
	}
	log.Info("batch run", "ids", queue.Len())

	var errCount int
	for queue.HasNext() {
		trackingID := queue.Next()
		if err := p.run(ctx, trackingID); err != nil {
			log.Error("parse failed", "tracking_id", trackingID, "err", err)
			errCount++
		}
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d tracking ids failed", errCount, queue.Len())
	}
	return nil
}

// validateFlags checks argument/flag combinations before running.
func validateFlags(args []string) error {
	if flagBatch == "" && len(args) == 0 {
		return fmt.Errorf("a tracking id argument is required unless --batch is given")
	}
	if flagBatch != "" && len(args) > 0 {
		return fmt.Errorf("--batch and a tracking id argument are mutually exclusive")
	}
	if flagBatch != "" && flagInput != "" {
		return fmt.Errorf("--batch requires fetching; it cannot be combined with --input")
	}

	formatCount := 0
	if flagJSON {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagPDF {
		formatCount++
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	return nil
}

// selectRenderer creates the Renderer for the chosen format. JSON is
// the default when no format flag is given.
func selectRenderer() core.Renderer {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer()
	case flagPDF:
		return render.NewPDFRenderer()
	default:
		return render.NewJSONRenderer()
	}
}
