package app

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/domain/task"
)

// scrapeTimestampLayout renders local time with microseconds.
const scrapeTimestampLayout = "2006-01-02 15:04:05.000000"

// ScrapePage downloads req.URL, applies the optional CSS selector, and writes
// {url, timestamp, content} to req.OutputPath.
func (s *TaskService) ScrapePage(ctx context.Context, req task.ScrapeRequest) error {
	start := time.Now()
	attrs := []slog.Attr{slog.String("url", req.URL), slog.String("path", req.OutputPath)}
	if req.Selector != "" {
		attrs = append(attrs, slog.String("selector", req.Selector))
	}

	if err := s.allow(task.ScrapePage, req.OutputPath); err != nil {
		return s.report(ctx, task.ScrapePage, start, err, attrs...)
	}

	resp, err := s.caps.Fetcher.Fetch(ctx, req.URL, nil)
	if err != nil {
		return s.report(ctx, task.ScrapePage, start,
			task.Fail(task.ScrapePage, task.KindExternalCall, req.URL, err), attrs...)
	}

	content, err := s.caps.Selector.Select(bytes.NewReader(resp.Body), req.Selector)
	if err != nil {
		return s.report(ctx, task.ScrapePage, start,
			task.Fail(task.ScrapePage, task.KindExternalCall, req.URL, err), attrs...)
	}

	doc := task.ScrapeDocument{
		URL:       req.URL,
		Timestamp: s.now().Format(scrapeTimestampLayout),
		Content:   content,
	}
	data, err := encodeJSON(doc)
	if err != nil {
		return s.report(ctx, task.ScrapePage, start,
			task.Fail(task.ScrapePage, task.KindExternalCall, req.OutputPath, err), attrs...)
	}
	if err := writeOutput(req.OutputPath, data); err != nil {
		return s.report(ctx, task.ScrapePage, start,
			task.Fail(task.ScrapePage, task.KindIO, req.OutputPath, err), attrs...)
	}

	return s.report(ctx, task.ScrapePage, start, nil, attrs...)
}
