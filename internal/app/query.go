package app

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/domain/task"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

var errNoServerEngine = errors.New("no server SQL engine configured")

// RunQuery executes req.Query and writes {query, results, column_names} to
// req.OutputPath. Database paths ending in ".db" use the embedded engine,
// postgres:// DSNs use the server engine, and every other path uses the
// analytical engine. A DSN is not a filesystem path and is not guarded.
func (s *TaskService) RunQuery(ctx context.Context, req task.QueryRequest) (*task.QueryResult, error) {
	start := time.Now()
	attrs := []slog.Attr{slog.String("db_path", redactDSN(req.DBPath)), slog.String("path", req.OutputPath)}

	engine, isDSN := s.engineFor(req.DBPath)

	guarded := []string{req.OutputPath}
	if !isDSN {
		guarded = []string{req.DBPath, req.OutputPath}
	}
	if err := s.allow(task.RunQuery, guarded...); err != nil {
		return nil, s.report(ctx, task.RunQuery, start, err, attrs...)
	}

	if engine == nil {
		return nil, s.report(ctx, task.RunQuery, start,
			task.Fail(task.RunQuery, task.KindInvalidInput, "", errNoServerEngine), attrs...)
	}
	attrs = append(attrs, slog.String("engine", engine.Name()))

	result, err := engine.Query(ctx, req.DBPath, req.Query)
	if err != nil {
		return nil, s.report(ctx, task.RunQuery, start,
			task.Fail(task.RunQuery, task.KindExternalCall, redactDSN(req.DBPath), err), attrs...)
	}

	data, err := encodeJSON(result)
	if err != nil {
		return nil, s.report(ctx, task.RunQuery, start,
			task.Fail(task.RunQuery, task.KindExternalCall, req.OutputPath, err), attrs...)
	}
	if err := writeOutput(req.OutputPath, data); err != nil {
		return nil, s.report(ctx, task.RunQuery, start,
			task.Fail(task.RunQuery, task.KindIO, req.OutputPath, err), attrs...)
	}

	attrs = append(attrs, slog.Int("rows", len(result.Results)))
	return result, s.report(ctx, task.RunQuery, start, nil, attrs...)
}

// engineFor picks the engine for dbPath and reports whether dbPath is a
// server DSN rather than a file.
func (s *TaskService) engineFor(dbPath string) (ports.SQLEngine, bool) {
	switch {
	case strings.HasSuffix(dbPath, ".db"):
		return s.caps.Embedded, false
	case isServerDSN(dbPath):
		return s.caps.Server, true
	default:
		return s.caps.Analytical, false
	}
}

func isServerDSN(dbPath string) bool {
	return strings.HasPrefix(dbPath, "postgres://") || strings.HasPrefix(dbPath, "postgresql://")
}

// redactDSN drops the password of a server DSN for logging.
func redactDSN(dbPath string) string {
	if !isServerDSN(dbPath) {
		return dbPath
	}
	u, err := url.Parse(dbPath)
	if err != nil {
		return "postgres://invalid"
	}
	if u.User != nil {
		u.User = url.User(u.User.Username())
	}
	return u.String()
}
