package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"

	"github.com/sheetsync/sheetsync/internal/cmdopts"
	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
	"github.com/sheetsync/sheetsync/internal/reaper"
	"github.com/sheetsync/sheetsync/internal/sources"
)

// setupCloseHandler creates a 'listener' on a new goroutine which will notify the
// program if it receives an interrupt from the OS. We then handle this by
// cancelling the main context, so no partial output is ever written.
func setupCloseHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.GetLogger(mainCtx).Debug("SetupCloseHandler received an interrupt from OS. Closing session...")
		cancel()
		exitCode.Store(cmdopts.ExitCodeUserCancel)
	}()
}

var (
	exitCode atomic.Int32       // Exit code to be returned to the OS
	mainCtx  context.Context    // Main context for the application
	cancel   context.CancelFunc // Cancel function to stop the main context
	logger   log.LoggerHooker   // Logger for the application
	opts     *cmdopts.Options   // Command line options for the application
	err      error
)

var Exit = os.Exit

// exitCodeOf maps a synchronization failure to the process exit code
func exitCodeOf(err error) int32 {
	var (
		parseErr *metrics.ParseError
		fetchErr *sources.FetchError
	)
	switch {
	case err == nil:
		return cmdopts.ExitCodeOK
	case errors.Is(err, context.Canceled):
		return cmdopts.ExitCodeUserCancel
	case errors.As(err, &parseErr), errors.Is(err, reaper.ErrDuplicateSlug):
		return cmdopts.ExitCodeParseError
	case errors.As(err, &fetchErr):
		return cmdopts.ExitCodeFetchError
	case errors.Is(err, reaper.ErrSinkWrite):
		return cmdopts.ExitCodeSinkError
	default:
		return cmdopts.ExitCodeFatalError
	}
}

func main() {

	exitCode.Store(cmdopts.ExitCodeOK)
	defer func() {
		if err := recover(); err != nil {
			exitCode.Store(cmdopts.ExitCodeFatalError)
			log.GetLogger(mainCtx).WithField("callstack", string(debug.Stack())).Error(err)
		}
		Exit(int(exitCode.Load()))
	}()

	mainCtx, cancel = context.WithCancel(context.Background())
	setupCloseHandler(cancel)
	defer cancel()

	if opts, err = cmdopts.New(os.Stdout); err != nil {
		printVersion()
		fmt.Fprintln(os.Stderr, err)
		if !opts.Help {
			exitCode.Store(cmdopts.ExitCodeConfigError)
		}
		return
	}

	// check if some sub-command was executed and exit
	if opts.CommandCompleted {
		exitCode.Store(opts.ExitCode)
		return
	}

	logger = log.Init(opts.Logging)
	mainCtx = log.WithLogger(mainCtx, logger)

	if opts.Verbose() {
		logger.Debugf("opts: %+v", opts)
	}

	if err := opts.InitFetcher(mainCtx); err != nil {
		exitCode.Store(cmdopts.ExitCodeConfigError)
		logger.Error(err)
		return
	}

	if err := opts.InitSinkWriter(mainCtx); err != nil {
		exitCode.Store(cmdopts.ExitCodeConfigError)
		logger.Error(err)
		return
	}

	if _, err = reaper.NewReaper(mainCtx, opts).Reap(mainCtx); err != nil {
		// an interrupt has already stored its own code
		exitCode.CompareAndSwap(cmdopts.ExitCodeOK, exitCodeOf(err))
		logger.Error(err)
	}
}
