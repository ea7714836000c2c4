// Command errno looks up platform error codes by number, symbolic name or
// message text.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errcode"
	"github.com/jmgilman/go/errcode/internal/lookup"
	"github.com/jmgilman/go/errcode/internal/report"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "errno:", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps invalid input to the usage status and everything else to a
// plain failure.
func exitCode(err error) int {
	if platformerrors.GetCode(err) == platformerrors.CodeInvalidInput {
		return exitUsage
	}
	return exitFailure
}

type options struct {
	list    bool
	search  bool
	system  bool
	output  string
	limit   int
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "errno [flags] <code|NAME>...",
		Short:         "Look up platform error codes, names and descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
# Describe a code by number or by name
errno 2
errno ENOENT EAGAIN

# List every known code
errno --list

# Find codes whose message mentions all words
errno --search no such file

# Native system codes, as JSON
errno --system --output json 5
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.verbose)
			return execute(cmd.OutOrStdout(), logger, opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "invalid flags")
	})

	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List all known error codes")
	cmd.Flags().BoolVarP(&opts.search, "search", "s", false, "Treat arguments as words to search for in messages")
	cmd.Flags().BoolVar(&opts.system, "system", false, "Use the native system category instead of errno")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(report.FormatText), "Output format (text, json, yaml)")
	cmd.Flags().IntVar(&opts.limit, "limit", lookup.DefaultLimit, "Number of codes scanned by --list, --search and name lookups")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
}

func execute(w io.Writer, logger zerolog.Logger, opts options, args []string) error {
	format, err := report.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	switch {
	case opts.list && opts.search:
		return platformerrors.New(platformerrors.CodeInvalidInput, "--list and --search are mutually exclusive")
	case opts.list && len(args) > 0:
		return platformerrors.New(platformerrors.CodeInvalidInput, "--list takes no arguments")
	case !opts.list && len(args) == 0:
		return platformerrors.New(platformerrors.CodeInvalidInput, "expected at least one code or name")
	case opts.limit <= 0:
		return platformerrors.Newf(platformerrors.CodeInvalidInput, "--limit must be positive, got %d", opts.limit)
	}

	category := errcode.Posix
	if opts.system {
		category = errcode.System
	}
	r := lookup.New(category, lookup.WithLimit(opts.limit))

	logger.Debug().
		Str("category", category.Name()).
		Str("format", string(format)).
		Int("limit", opts.limit).
		Msg("looking up error codes")

	var (
		entries []errcode.Response
		errs    []error
	)
	switch {
	case opts.list:
		entries = r.List()
	case opts.search:
		entries = r.Search(args...)
		logger.Debug().Strs("words", args).Int("matches", len(entries)).Msg("search complete")
		if len(entries) == 0 {
			errs = append(errs, platformerrors.Newf(platformerrors.CodeNotFound,
				"no error message matches %q", strings.Join(args, " ")))
		}
	default:
		for _, arg := range args {
			e, err := r.Resolve(arg)
			if err != nil {
				logger.Debug().Err(err).Str("arg", arg).Msg("lookup failed")
				errs = append(errs, err)
				continue
			}
			logger.Debug().Str("arg", arg).Int32("code", e.Code).Str("symbol", e.Symbol).Msg("resolved")
			entries = append(entries, e)
		}
	}

	if len(entries) > 0 || len(errs) == 0 {
		if err := report.Write(w, format, entries); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
