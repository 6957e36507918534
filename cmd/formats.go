package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/hmlb/btctrack/formats"
)

type formatsCmd struct{}

func (*formatsCmd) Name() string     { return "formats" }
func (*formatsCmd) Synopsis() string { return "list the supported export formats" }
func (*formatsCmd) Usage() string {
	return `btk formats

  Lists the supported export formats in detection priority order.
`
}

func (c *formatsCmd) SetFlags(f *flag.FlagSet) {}

func (c *formatsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	fmt.Fprint(&b, "# Supported Export Formats\n\n")
	for i, name := range formats.Names() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
