// Command contentrec fetches web pages and converts them into signposted
// content lines, optionally assembling the output into a .docx template.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jackalderton/contentrec"
	"github.com/jackalderton/contentrec/batch"
	"github.com/jackalderton/contentrec/docx"
	cgoquery "github.com/jackalderton/contentrec/goquery"
	chttp "github.com/jackalderton/contentrec/http"
	cslog "github.com/jackalderton/contentrec/slog"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher and Extractor may be preset for end-to-end testing;
	// Run wires defaults when nil.
	Fetcher   contentrec.Fetcher
	Extractor contentrec.Extractor
	Assembler contentrec.Assembler
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command structure and shared extraction flags.
type CLI struct {
	Verbose        bool     `short:"v" help:"Log fetch and extraction details."`
	Exclude        []string `help:"CSS selectors to remove from <body> before extraction. Defaults to the built-in exclusion list."`
	AnnotateLinks  bool     `help:"Append (→ URL) after anchor text."`
	RemoveBeforeH1 bool     `help:"Delete everything before the first <h1>."`
	IncludeImgSrc  bool     `help:"Include <img> src in image lines."`
	Agency         string   `help:"Agency name for the [AGENCY] placeholder."`
	Client         string   `help:"Client name for the [CLIENT NAME] placeholder."`

	Extract  ExtractCmd  `cmd:"" help:"Fetch a URL and print its metadata and signposted lines."`
	Generate GenerateCmd `cmd:"" help:"Fetch a URL and assemble a template document."`
	Batch    BatchCmd    `cmd:"" help:"Process a CSV of URLs into a zip of documents."`
}

// Dependencies carries wired services into command Run methods via Kong
// binding.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   contentrec.Fetcher
	Extractor contentrec.Extractor
	Assembler contentrec.Assembler

	Options contentrec.Options
	Agency  string
	Client  string
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("contentrec"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'contentrec --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Options = contentrec.Options{
		ExcludeSelectors: cli.Exclude,
		AnnotateLinks:    cli.AnnotateLinks,
		RemoveBeforeH1:   cli.RemoveBeforeH1,
		IncludeImgSrc:    cli.IncludeImgSrc,
	}
	if len(cli.Exclude) == 0 {
		deps.Options.ExcludeSelectors = nil
	}
	deps.Agency = cli.Agency
	deps.Client = cli.Client

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = chttp.NewCachingFetcher(chttp.NewFetcher())
	}
	defer fetcher.Close()

	extractor := m.Extractor
	if extractor == nil {
		extractor = cgoquery.New()
	}

	assembler := m.Assembler
	if assembler == nil {
		assembler = docx.NewAssembler()
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = cslog.NewFetcher(fetcher, logger)
		extractor = cslog.NewExtractor(extractor, logger)
	}

	deps.Fetcher = fetcher
	deps.Extractor = extractor
	deps.Assembler = assembler

	return kongCtx.Run(deps)
}

// ExtractCmd prints the extraction preview for one URL.
type ExtractCmd struct {
	URL string `arg:"" help:"Page URL."`
}

func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := extractURL(deps, c.URL)
	if err != nil {
		return err
	}

	meta := result.Meta
	fmt.Fprintf(deps.Stdout, "Page: %s\n", meta.Page)
	fmt.Fprintf(deps.Stdout, "Date: %s\n", meta.Date)
	fmt.Fprintf(deps.Stdout, "URL: %s\n", meta.URL)
	fmt.Fprintf(deps.Stdout, "Title: %s (%d)\n", meta.Title, meta.TitleLength)
	fmt.Fprintf(deps.Stdout, "Description: %s (%d)\n", meta.Description, meta.DescriptionLength)
	fmt.Fprintln(deps.Stdout)

	for _, line := range result.Rendered() {
		fmt.Fprintln(deps.Stdout, line)
	}

	if len(meta.Schema) > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "-- structured data --")
		for _, line := range meta.Schema {
			fmt.Fprintln(deps.Stdout, line)
		}
	}
	return nil
}

// GenerateCmd assembles one URL into a template document.
type GenerateCmd struct {
	URL      string `arg:"" help:"Page URL."`
	Template string `required:"" type:"existingfile" help:"Template .docx with placeholders."`
	Out      string `default:"." help:"Output directory."`
}

func (c *GenerateCmd) Run(deps *Dependencies) error {
	template, err := os.ReadFile(c.Template)
	if err != nil {
		return err
	}

	result, err := extractURL(deps, c.URL)
	if err != nil {
		return err
	}

	document, err := deps.Assembler.Assemble(template, result.Meta, result.Rendered())
	if err != nil {
		return err
	}

	name := contentrec.SafeFilename(result.Meta.Page+batch.DocumentSuffix) + ".docx"
	path := filepath.Join(c.Out, name)
	if err := os.WriteFile(path, document, 0644); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, path)
	return nil
}

// BatchCmd processes a CSV of URLs into a zip archive.
type BatchCmd struct {
	CSV      string  `arg:"" type:"existingfile" help:"CSV file with a header row and a url column (optional out_name column)."`
	Template string  `required:"" type:"existingfile" help:"Template .docx with placeholders."`
	Out      string  `default:"content_recommendations.zip" help:"Output zip path."`
	Rate     float64 `default:"0" help:"Max fetches per second (0 disables rate limiting)."`
}

func (c *BatchCmd) Run(deps *Dependencies) error {
	csvData, err := os.ReadFile(c.CSV)
	if err != nil {
		return err
	}
	template, err := os.ReadFile(c.Template)
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Assembler: deps.Assembler,
	}
	if c.Rate > 0 {
		runner.Limiter = rate.NewLimiter(rate.Limit(c.Rate), 1)
	}

	out, err := runner.Run(deps.Ctx, csvData, template, deps.Options, deps.Agency, deps.Client)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Out, out.Archive, 0644); err != nil {
		return err
	}

	for _, res := range out.Results {
		if res.File != "" {
			fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", res.URL, res.Status, res.File)
		} else {
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", res.URL, res.Status)
		}
	}
	fmt.Fprintln(deps.Stdout, c.Out)
	return nil
}

func extractURL(deps *Dependencies, url string) (*contentrec.Result, error) {
	finalURL, body, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := deps.Extractor.Extract(body, finalURL, deps.Options)
	if err != nil {
		return nil, err
	}
	result.Meta.Agency = deps.Agency
	result.Meta.ClientName = deps.Client
	return result, nil
}
