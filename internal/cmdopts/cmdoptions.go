package cmdopts

import (
	"context"
	"errors"
	"fmt"
	"io"

	flags "github.com/jessevdk/go-flags"
	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/sinks"
	"github.com/sheetsync/sheetsync/internal/sources"
)

const (
	ExitCodeOK int32 = iota
	ExitCodeConfigError
	ExitCodeCmdError
	ExitCodeFetchError
	ExitCodeParseError
	ExitCodeSinkError
	ExitCodeUserCancel
	ExitCodeFatalError
)

// Options contains the command line options.
type Options struct {
	Sources sources.CmdOpts `group:"Source"`
	Sinks   sinks.CmdOpts   `group:"Sinks"`
	Logging log.CmdOpts     `group:"Logging"`
	Help    bool

	Fetcher     sources.Fetcher
	SinksWriter sinks.Writer

	ExitCode         int32
	CommandCompleted bool

	OutputWriter io.Writer
}

func addCommands(parser *flags.Parser, opts *Options) {
	_, _ = parser.AddCommand("source", "Inspect the spreadsheet", "", NewSourceCommand(opts))
}

// New returns a new instance of Options and immediately executes the subcommand if specified.
// Subcommands are responsible for setting exit code.
// Function prints help message only if options are incorrect. If subcommand is executed
// but fails, function outputs the error message only, indicating that some argument
// values might be incorrect, e.g. unreachable source, wrong file name, etc.
func New(writer io.Writer) (cmdOpts *Options, err error) {
	cmdOpts = new(Options)
	if writer == nil {
		writer = io.Discard
	}
	parser := flags.NewParser(cmdOpts, flags.HelpFlag)
	parser.SubcommandsOptional = true // if not command specified, run synchronization
	cmdOpts.OutputWriter = writer
	addCommands(parser, cmdOpts)
	nonParsedArgs, err := parser.Parse() // parse and execute subcommand if any
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			cmdOpts.Help = true
		}
		if !flags.WroteHelp(err) && !cmdOpts.CommandCompleted {
			parser.WriteHelp(writer)
		}
		return cmdOpts, err
	}
	if cmdOpts.CommandCompleted { // subcommand executed, nothing to do more
		return
	}
	if len(nonParsedArgs) > 0 { // we don't expect any non-parsed arguments
		return cmdOpts, fmt.Errorf("unknown argument(s): %v", nonParsedArgs)
	}
	err = cmdOpts.ValidateConfig()
	return
}

func (c *Options) CompleteCommand(code int32) {
	c.CommandCompleted = true
	c.ExitCode = code
}

// Verbose returns true if the debug log is enabled
func (c *Options) Verbose() bool {
	return c.Logging.LogLevel == "debug"
}

// InitFetcher creates the spreadsheet fetcher based on the source kind.
func (c *Options) InitFetcher(ctx context.Context) (err error) {
	c.Fetcher, err = sources.NewFetcher(ctx, &c.Sources)
	return
}

// InitSinkWriter creates a new MultiWriter instance if needed.
func (c *Options) InitSinkWriter(ctx context.Context) (err error) {
	c.SinksWriter, err = sinks.NewSinkWriter(ctx, &c.Sinks)
	return
}

// ValidateConfig checks if the configuration is valid.
func (c *Options) ValidateConfig() error {
	if c.Sources.Source == "" {
		return errors.New("--source is empty")
	}
	if c.Sources.IndexGID == "" {
		return errors.New("--index-gid is empty")
	}
	if c.Sources.FirstYear < 1 || c.Sources.FirstYear > 9999 {
		return errors.New("--first-year must be between 1 and 9999")
	}
	if c.Sources.HTTPTimeout < 0 {
		return errors.New("--http-timeout must not be negative")
	}
	if len(c.Sinks.Sinks) == 0 {
		return errors.New("no --sink specified")
	}
	return nil
}
