package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/hmlb/btctrack/formats"
	"github.com/hmlb/btctrack/renderer"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	format string
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import third-party export files into the ledger" }
func (*importCmd) Usage() string {
	return `btk import [-format <name>] [-dry-run] <file...>

  Detects the export format of each file, normalizes its rows into canonical
  transactions and merges them into the ledger. Re-importing a file is a
  no-op: records already present are skipped by id.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Force a format instead of auto-detecting (see 'btk formats')")
	f.BoolVar(&c.dryRun, "dry-run", false, "Parse and report without touching the ledger file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one export file to import.")
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	var forced formats.Parser
	if c.format != "" {
		p, ok := formats.Get(c.format)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown format %q. Known formats: %v\n", c.format, formats.Names())
			return subcommands.ExitUsageError
		}
		forced = p
	}

	batch := uuid.NewString()
	status := subcommands.ExitSuccess

	for _, file := range f.Args() {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", file, err)
			status = subcommands.ExitFailure
			continue
		}

		parser := forced
		if parser == nil {
			doc := formats.Tokenize(string(data))
			p, ok := formats.Detect(doc.Headers)
			if !ok {
				logger.Error().Str("batch", batch).Str("file", file).Msg("unrecognized export format")
				fmt.Fprintf(os.Stderr, "%s: %v\n", file, formats.ErrUnrecognizedFormat)
				status = subcommands.ExitFailure
				continue
			}
			parser = p
		}

		res := formats.ImportWith(parser, string(data))
		added := ledger.Append(res.Transactions...)
		duplicates := len(res.Transactions) - added

		logger.Info().
			Str("batch", batch).
			Str("file", file).
			Str("format", parser.Name()).
			Int("parsed", len(res.Transactions)).
			Int("added", added).
			Int("duplicates", duplicates).
			Int("errors", len(res.Errors)).
			Int("warnings", len(res.Warnings)).
			Msg("imported file")

		printMarkdown(renderer.ImportReport(file, parser.Name(), res, added, duplicates))
	}

	if c.dryRun {
		logger.Info().Str("batch", batch).Msg("dry run, ledger file untouched")
		return status
	}
	if err := encodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	return status
}
