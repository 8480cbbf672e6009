// Command ippparse checks IPPcode22 source read from standard input and
// prints its XML representation on standard output.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/ippcode/api"
	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

const helpText = `Reads source code written in IPPcode22 from standard input, checks its
lexical and syntactic correctness and prints the XML representation of the
program on standard output.

USAGE: ippparse [--help] [--stats=file [METRIC]...]...

--help
        display this help and exit; cannot be combined with other arguments
--stats=file
        write the statistics requested after it to file, one per line
--loc --comments --labels --jumps --fwjumps --backjumps --badjumps
        statistics that can be requested for the current --stats file
--print=string, --eol
        write a literal string or an empty line to the current --stats file
--format=xml|yaml
        representation of the program written to standard output
--summary
        print a table of all statistics to standard error
--list
        print the translated program as a table to standard error
--trace
        log translation events to standard error as JSON

Exit status: 0 success, 10 bad arguments, 12 stats file error,
21 bad header, 22 unknown opcode, 23 other lexical or syntax error.
`

func newRootCommand(b *config.Builder, stdout *bufio.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ippparse",
		Short:         "IPPcode22 to XML translator",
		Long:          helpText,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := b.Build()
			if err != nil {
				return err
			}

			setupLogging(cfg.Trace)

			driver := api.DriverBuilder{}.
				WithConfig(cfg).
				WithOpener(api.FileOpener{}).
				WithSummaryWriter(os.Stderr).
				Build()

			_, err = driver.Run(os.Stdin, stdout)

			return err
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().SortFlags = false
	cmd.Flags().Bool("help", false, "display this help and exit")
	config.BindFlags(cmd.Flags(), b)

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		b.RequestHelp(c.Flags().Args())
	})

	return cmd
}

func setupLogging(trace bool) {
	if trace {
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: core.LevelTrace,
		})
		slog.SetDefault(slog.New(handler))
		return
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(handler))
}

func exitCode(err error, b *config.Builder) core.ExitCode {
	var e *core.Error
	if errors.As(err, &e) {
		return e.Code
	}

	if b.Err() != nil {
		return core.CodeOf(b.Err())
	}

	return core.ExitParam
}

func fail(err error, b *config.Builder) {
	code := exitCode(err, b)
	fmt.Fprintf(os.Stderr, "Error %d: %v\n", code, err)
	atexit.Exit(int(code))
}

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		stdout.Flush()
	})

	b := config.NewBuilder()
	cmd := newRootCommand(b, stdout)
	cmd.SetArgs(os.Args[1:])

	if err := cmd.Execute(); err != nil {
		fail(err, b)
	}

	cfg, err := b.Build()
	if err != nil {
		fail(err, b)
	}

	if cfg.EmitHelp {
		stdout.WriteString(helpText)
	}

	if err := stdout.Flush(); err != nil {
		fail(core.Errorf(core.ExitInternal, 0, "flush output: %v", err), b)
	}

	atexit.Exit(0)
}
