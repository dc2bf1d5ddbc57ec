package logging

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"
)

// SetupCrashHandler logs fatal signals with runtime information before the
// process exits. The returned function stops the handler.
func SetupCrashHandler(logger zerolog.Logger) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGABRT,
		syscall.SIGFPE,
		syscall.SIGBUS,
		syscall.SIGILL,
	)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-c:
			handleCrash(logger, sig)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}

// RecoverPanic logs a panic with its stack and re-panics. Use with defer.
func RecoverPanic(logger zerolog.Logger) {
	if r := recover(); r != nil {
		logger.Error().
			Str("panic", fmt.Sprint(r)).
			Str("stack", string(debug.Stack())).
			Msg("panic")
		panic(r)
	}
}

func handleCrash(logger zerolog.Logger, sig os.Signal) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.Error().
		Str("signal", sig.String()).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("gc", m.NumGC).
		Str("stack", string(debug.Stack())).
		Msg("fatal signal")

	code := 1
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	os.Exit(code)
}
