package app

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/domain/task"
)

var documentShell = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Converted from {{.Source}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type shellData struct {
	Source string
	Body   template.HTML
}

// RenderMarkdown converts req.MDPath to HTML and writes a standalone document
// titled after the source file name to req.OutputPath.
func (s *TaskService) RenderMarkdown(ctx context.Context, req task.MarkdownRequest) error {
	start := time.Now()
	attrs := []slog.Attr{slog.String("src", req.MDPath), slog.String("path", req.OutputPath)}

	if err := s.allow(task.RenderMarkdown, req.MDPath, req.OutputPath); err != nil {
		return s.report(ctx, task.RenderMarkdown, start, err, attrs...)
	}

	source, err := os.ReadFile(req.MDPath)
	if err != nil {
		return s.report(ctx, task.RenderMarkdown, start,
			task.Fail(task.RenderMarkdown, task.KindIO, req.MDPath, fmt.Errorf("reading markdown: %w", err)), attrs...)
	}

	body, err := s.caps.Markdown.Render(source, req.Extras)
	if err != nil {
		return s.report(ctx, task.RenderMarkdown, start,
			task.Fail(task.RenderMarkdown, task.KindExternalCall, req.MDPath, err), attrs...)
	}

	var doc bytes.Buffer
	data := shellData{
		Source: filepath.Base(req.MDPath),
		Body:   template.HTML(body),
	}
	if err := documentShell.Execute(&doc, data); err != nil {
		return s.report(ctx, task.RenderMarkdown, start,
			task.Fail(task.RenderMarkdown, task.KindExternalCall, req.MDPath, err), attrs...)
	}

	if err := writeOutput(req.OutputPath, doc.Bytes()); err != nil {
		return s.report(ctx, task.RenderMarkdown, start,
			task.Fail(task.RenderMarkdown, task.KindIO, req.OutputPath, err), attrs...)
	}

	return s.report(ctx, task.RenderMarkdown, start, nil, attrs...)
}
