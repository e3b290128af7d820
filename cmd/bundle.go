package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxfolio"
	"github.com/google/subcommands"
)

type bundleCmd struct {
	output string
}

func (*bundleCmd) Name() string { return "bundle" }
func (*bundleCmd) Synopsis() string {
	return "writes the dataset as a single canonical JSON file"
}
func (*bundleCmd) Usage() string {
	return `taxfolio bundle [-o <file>]

  Reads the dataset (a folder of per-collection JSON files, or a bundle) and
  writes it back as one JSON document holding every collection. The bundle
  can be used in place of the folder with -data.

Usage Examples:
# Writes the bundle of the current folder to stdout.
$ taxfolio bundle

# Writes it to a file.
$ taxfolio bundle -o portfolio.json
`
}

func (p *bundleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Bundle file to write. Defaults to stdout.")
}

func (p *bundleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.output == "" {
		if err := taxfolio.EncodeDataset(os.Stdout, ds); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding dataset: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := taxfolio.SaveDataset(p.output, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bundle %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully wrote %s.\n", p.output)
	return subcommands.ExitSuccess
}
