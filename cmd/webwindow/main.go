package main

import (
	"github.com/bnema/webwindow/internal/cli/cmd"
	"github.com/bnema/webwindow/internal/domain/build"
	"github.com/bnema/webwindow/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	logger := logging.NewFromEnv()
	stop := logging.SetupCrashHandler(logger)
	defer stop()
	defer logging.RecoverPanic(logger)

	cmd.SetBuildInfo(build.New(version, commit, buildDate))
	cmd.Execute()
}
