// Package cmd implements the CLI application reporting on a taxfolio dataset.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&salesCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&taxformCmd{}, "reports")
	c.Register(&yearsCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")

	c.Register(&checkCmd{}, "dataset")
	c.Register(&bundleCmd{}, "dataset")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var datasetPath = flag.String("data", ".", "Path to the dataset folder, or to a bundle file")
var configFile = flag.String("config", DefaultConfigFile, "Path to the optional TOML configuration file")
var verbose = flag.Bool("v", false, "verbose logging")
var plain = flag.Bool("plain", false, "print raw markdown instead of rendering it for the terminal")

// DecodeDataset decodes the dataset of the app data path.
func DecodeDataset() (*taxfolio.Dataset, error) {
	return taxfolio.LoadDataset(*datasetPath)
}

// newLogger returns the logger of the app, writing to stderr for humans.
func newLogger(level zerolog.Level) zerolog.Logger {
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().
		Logger()
}

// engineConfig loads the configuration file and turns it into the engine and renderer configurations.
func engineConfig() (taxfolio.Config, renderer.Options, error) {
	fc, err := LoadConfig(*configFile)
	if err != nil {
		return taxfolio.Config{}, renderer.Options{}, err
	}
	cfg, err := fc.Engine()
	if err != nil {
		return taxfolio.Config{}, renderer.Options{}, err
	}
	cfg.Logger = newLogger(fc.logLevel())
	return cfg, renderer.Options{Locale: cfg.Locale}, nil
}

// parseYearFlag validates the -y flag common to the report commands.
func parseYearFlag(s string) (taxfolio.Year, subcommands.ExitStatus, bool) {
	y, err := taxfolio.ParseYear(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing year: %v\n", err)
		return "", subcommands.ExitUsageError, false
	}
	return y, subcommands.ExitSuccess, true
}

// newReport loads everything a report command needs.
func newReport(year string) (*taxfolio.Report, renderer.Options, subcommands.ExitStatus) {
	_, r, opts, status := loadReport(year)
	return r, opts, status
}

// loadReport is newReport that also returns the dataset the report was computed from.
func loadReport(year string) (*taxfolio.Dataset, *taxfolio.Report, renderer.Options, subcommands.ExitStatus) {
	y, status, ok := parseYearFlag(year)
	if !ok {
		return nil, nil, renderer.Options{}, status
	}
	cfg, opts, err := engineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, nil, opts, subcommands.ExitFailure
	}
	ds, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return nil, nil, opts, subcommands.ExitFailure
	}
	return ds, taxfolio.NewReport(ds, y, cfg), opts, subcommands.ExitSuccess
}

// printJSON prints v as indented JSON to stdout.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown prints md to stdout, rendered for the terminal unless -plain is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(160))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
