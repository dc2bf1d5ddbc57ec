package logging

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRunID creates an identifier for one invocation.
// Format: YYYYMMDD_HHMMSS_xxxxxxxx
func GenerateRunID() string {
	short := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return time.Now().Format("20060102_150405") + "_" + short
}

// ShortRunID returns the random suffix of a run id.
func ShortRunID(runID string) string {
	if i := strings.LastIndexByte(runID, '_'); i >= 0 {
		return runID[i+1:]
	}
	return runID
}

// WithRunID tags the context logger with a run id.
func WithRunID(ctx context.Context, runID string) context.Context {
	logger := FromContext(ctx).With().Str("run_id", runID).Logger()
	return WithContext(ctx, logger)
}
