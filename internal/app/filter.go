package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/domain/tabular"
	"github.com/jsamuelsen11/dataworks/internal/domain/task"
)

// FilterTabular loads req.CSVPath and returns the rows whose FilterColumn
// equals FilterValue, in file order with columns in file order. Nothing is
// written to disk. The path guard runs before any other check.
func (s *TaskService) FilterTabular(ctx context.Context, req task.FilterRequest) ([]tabular.Row, error) {
	start := time.Now()
	attrs := []slog.Attr{slog.String("path", req.CSVPath), slog.String("column", req.FilterColumn)}

	if err := s.allow(task.FilterTabular, req.CSVPath); err != nil {
		return nil, s.report(ctx, task.FilterTabular, start, err, attrs...)
	}

	if req.FilterColumn == "" {
		return nil, s.report(ctx, task.FilterTabular, start,
			task.Fail(task.FilterTabular, task.KindInvalidInput, req.CSVPath, errors.New("filter column is required")), attrs...)
	}

	f, err := os.Open(req.CSVPath)
	if err != nil {
		return nil, s.report(ctx, task.FilterTabular, start,
			task.Fail(task.FilterTabular, task.KindIO, req.CSVPath, fmt.Errorf("opening csv: %w", err)), attrs...)
	}
	defer func() { _ = f.Close() }()

	if s.maxCSVBytes > 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, s.report(ctx, task.FilterTabular, start,
				task.Fail(task.FilterTabular, task.KindIO, req.CSVPath, err), attrs...)
		}
		if info.Size() > s.maxCSVBytes {
			return nil, s.report(ctx, task.FilterTabular, start,
				task.Fail(task.FilterTabular, task.KindInvalidInput, req.CSVPath,
					fmt.Errorf("csv is %d bytes, limit is %d", info.Size(), s.maxCSVBytes)), attrs...)
		}
	}

	rows, err := s.caps.Tabular.FilterEqual(ctx, f, req.FilterColumn, req.FilterValue)
	if err != nil {
		return nil, s.report(ctx, task.FilterTabular, start,
			task.Fail(task.FilterTabular, task.KindExternalCall, req.CSVPath, err), attrs...)
	}

	attrs = append(attrs, slog.Int("rows", len(rows)))
	return rows, s.report(ctx, task.FilterTabular, start, nil, attrs...)
}
