package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// reportTask is the data given to the front matter template.
type reportTask struct {
	Year   taxfolio.Year
	Report *taxfolio.Report
}

// File is the path of the task's report, relative to the output directory.
func (t reportTask) File() string { return t.Year.String() + ".md" }

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates the report of every year of the dataset" }

func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>]

  Generates the full report (summary, holdings, closed positions, charts and
  tax form) of every available year, plus "all", and saves each one to
  <dir>/<year>.md.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	cfg, opts, err := engineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	ds, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	tasks := publishTasks(ds, cfg)
	if len(tasks) <= 1 {
		fmt.Println("Dataset is empty, nothing to publish.")
		return subcommands.ExitSuccess
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, task := range tasks {
		md := renderer.ReportMarkdown(task.Report, opts) + "\n" + renderer.ChartsMarkdown(task.Report, opts)

		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to render front matter for %s: %v\n", task.Year, err)
				continue
			}
			md = fm + "\n" + md
		}

		fullPath := filepath.Join(c.outputDir, task.File())
		if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", task.File(), err)
			return subcommands.ExitFailure
		}
		cfg.Logger.Info().Str("year", task.Year.String()).Str("file", fullPath).Msg("report generated")
	}

	return subcommands.ExitSuccess
}

// publishTasks computes the report of every available year, "all" first.
func publishTasks(ds *taxfolio.Dataset, cfg taxfolio.Config) []reportTask {
	years := taxfolio.AvailableYears(ds)
	tasks := make([]reportTask, 0, len(years))
	for i, y := range years {
		if i == 1 {
			// dataset issues are the same for every year, log them once.
			cfg.Logger = cfg.Logger.Level(zerolog.ErrorLevel)
		}
		tasks = append(tasks, reportTask{Year: y, Report: taxfolio.NewReport(ds, y, cfg)})
	}
	return tasks
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
