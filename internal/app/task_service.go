// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/domain/pathguard"
	"github.com/jsamuelsen11/dataworks/internal/domain/task"
	"github.com/jsamuelsen11/dataworks/internal/platform/logging"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// Output file and directory permissions.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Capabilities are the external collaborators the tasks delegate to.
// Server is optional; the others are required.
type Capabilities struct {
	Fetcher    ports.Fetcher
	Embedded   ports.SQLEngine // databases whose path ends in ".db"
	Analytical ports.SQLEngine // every other database path
	Server     ports.SQLEngine // postgres:// and postgresql:// DSNs
	Selector   ports.HTMLSelector
	Images     ports.ImageCodec
	Markdown   ports.MarkdownRenderer
	Tabular    ports.TabularEngine
}

// TaskService implements ports.TaskService. Every task follows the same four
// steps: check each path against the guard, call the delegate, persist the
// output, and report the outcome through the logger and the recorder.
type TaskService struct {
	guard       *pathguard.Guard
	caps        Capabilities
	recorder    ports.TaskRecorder
	logger      *slog.Logger
	now         func() time.Time
	maxCSVBytes int64
}

// Option configures a TaskService.
type Option func(*TaskService)

// WithRecorder sets the recorder that receives one call per task run.
func WithRecorder(r ports.TaskRecorder) Option {
	return func(s *TaskService) { s.recorder = r }
}

// WithClock overrides the clock used for scrape timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) { s.now = now }
}

// WithMaxCSVBytes bounds the size of files accepted by FilterTabular.
// Zero or a negative value removes the bound.
func WithMaxCSVBytes(n int64) Option {
	return func(s *TaskService) { s.maxCSVBytes = n }
}

// NewTaskService creates a TaskService. If logger is nil, log output is
// discarded.
func NewTaskService(guard *pathguard.Guard, caps Capabilities, logger *slog.Logger, opts ...Option) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &TaskService{
		guard:  guard,
		caps:   caps,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// allow checks every path in order and returns a security-violation failure
// for the first one the guard rejects.
func (s *TaskService) allow(name task.Name, paths ...string) error {
	for _, p := range paths {
		if !s.guard.Check(p) {
			return task.Denied(name, p, s.guard.Root())
		}
	}
	return nil
}

// report logs the outcome of a task run, records it, and returns err
// unchanged. A request-scoped logger in ctx takes precedence over the
// service logger.
func (s *TaskService) report(ctx context.Context, name task.Name, start time.Time, err error, attrs ...slog.Attr) error {
	logger := logging.FromContextOr(ctx, s.logger)
	result := "success"
	if err != nil {
		kind := task.KindOf(err)
		result = string(kind)

		all := []slog.Attr{
			slog.String("operation", string(name)),
			slog.String("kind", string(kind)),
		}
		all = append(all, attrs...)
		all = append(all, slog.Any("error", err))
		logger.LogAttrs(ctx, slog.LevelError, "task failed", all...)
	} else {
		all := append([]slog.Attr{slog.String("operation", string(name))}, attrs...)
		logger.LogAttrs(ctx, slog.LevelInfo, "task completed", all...)
	}

	if s.recorder != nil {
		s.recorder.RecordTask(ctx, string(name), result, start)
	}
	return err
}

// writeOutput writes data to path, creating the parent directory first.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// encodeJSON renders v as two-space indented JSON without HTML escaping.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
