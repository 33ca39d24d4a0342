// Package main implements the main entry point for the gate computer
// cross-assembler.
package main

import (
	"errors"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/mvparker810/gate-computer-compiler/internal/cli"
	"github.com/mvparker810/gate-computer-compiler/internal/config"
	"github.com/mvparker810/gate-computer-compiler/internal/options"
	"github.com/mvparker810/gate-computer-compiler/internal/pipeline"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := pipeline.New(logger).Execute(opts, os.Stdout); err != nil {
		logger.Fatal("Assembling failed", log.Err(err))
	}
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("gccasm", log.String("version", buildinfo.Version(version, commit, date)))
}
