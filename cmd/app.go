// Package cmd implements the btk CLI application: importing third-party
// exports into the canonical ledger file and reporting over it.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hmlb/btctrack"
	"github.com/rs/zerolog"
)

// Register the subcommands. A main package calls Register() to declare the
// commands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&txCmd{}, "reports")
	c.Register(&pnlCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&formatsCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// CommandNames lists the registered command names, for shell completion.
func CommandNames() []string {
	return []string{"import", "fmt", "tx", "pnl", "summary", "formats", "topic"}
}

// config carries the environment defaults; flags override them.
type config struct {
	LedgerFile string `env:"BTK_LEDGER_FILE" envDefault:"transactions.jsonl"`
	Method     string `env:"BTK_METHOD"      envDefault:"average"`
	Currency   string `env:"BTK_CURRENCY"    envDefault:"EUR"`
	LogLevel   string `env:"BTK_LOG_LEVEL"   envDefault:"info"`
}

// as a CLI application with a short lived lifecycle, globals are fine here.
var (
	cfg        = loadConfig()
	logger     = newLogger(cfg.LogLevel)
	ledgerFile = flag.String("ledger-file", cfg.LedgerFile, "Path to the ledger file containing transactions (JSONL format)")
)

func loadConfig() config {
	c := config{}
	if err := env.Parse(&c); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(2)
	}
	return c
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// decodeLedgerFile loads the app ledger file. A missing file is an empty
// ledger, not an error.
func decodeLedgerFile() (*btctrack.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("file", *ledgerFile).Msg("ledger file does not exist, starting empty")
		return btctrack.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return btctrack.DecodeLedger(f)
}

// encodeLedgerFile writes the ledger back to the app ledger file.
func encodeLedgerFile(l *btctrack.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return btctrack.EncodeLedger(f, l)
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
