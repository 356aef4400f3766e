// Package diag is the single seam through which the affect core reports
// recoverable anomalies. Each anomaly is a short code plus optional
// positional arguments; where the message ends up is the caller's choice.
package diag

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Code is a short diagnostic tag. Codes prefixed "W-" are warnings, "E-" errors.
type Code string

const (
	GoalImportanceNegative Code = "W-G_IMPORTANCE_IS_NEGATIVE"

	AttentionNegativeStepSize Code = "W-A_NEGATIVE_STEPSIZE"
	AttentionNegative         Code = "W-A_NEGATIVE_ATTENTION"
	AttentionOverflow         Code = "W-A_OVERFLOW"

	AttachmentNegativeStepSize Code = "W-SA_NEGATIVE_LEVELSIZE"
	AttachmentOverflow         Code = "W-SA_OVERFLOW"

	PlanTooFewEvents Code = "E-P_TOO_FEW_EVENTS"
	PlanOutOfBounds  Code = "E-P_OUT_OF_BOUNDS"
)

// IsError reports whether the code denotes an error rather than a warning.
func (c Code) IsError() bool {
	return strings.HasPrefix(string(c), "E-")
}

// Reporter receives diagnostics from the core.
type Reporter interface {
	Report(code Code, args ...string)
}

// Nop discards every report.
type Nop struct{}

func (Nop) Report(Code, ...string) {}

// OrNop returns r, or a Nop reporter when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}

// Multi forwards each report to every reporter in order.
type Multi []Reporter

func (m Multi) Report(code Code, args ...string) {
	for _, r := range m {
		r.Report(code, args...)
	}
}

// ZapReporter writes reports to a zap logger.
type ZapReporter struct {
	logger *zap.Logger
}

func NewZapReporter(logger *zap.Logger) *ZapReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapReporter{logger: logger}
}

func (z *ZapReporter) Report(code Code, args ...string) {
	fields := []zap.Field{zap.String("code", string(code))}
	if len(args) > 0 {
		fields = append(fields, zap.Strings("args", args))
	}
	if code.IsError() {
		z.logger.Error("affect diagnostic", fields...)
		return
	}
	z.logger.Warn("affect diagnostic", fields...)
}

// Entry is one captured report.
type Entry struct {
	Code Code
	Args []string
}

// Recorder keeps every report in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Report(code Code, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Code: code, Args: append([]string(nil), args...)})
}

// Entries returns a copy of the captured reports.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns how many reports carried the given code.
func (r *Recorder) Count(code Code) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Code == code {
			n++
		}
	}
	return n
}

// Len returns the total number of reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
