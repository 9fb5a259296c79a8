package app

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/domain/task"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

// TransformImage decodes req.ImagePath, applies the optional resize and
// format conversion, and writes the result to req.OutputPath. The output file
// is only written once encoding has succeeded.
func (s *TaskService) TransformImage(ctx context.Context, req task.ImageRequest) error {
	start := time.Now()
	attrs := []slog.Attr{slog.String("src", req.ImagePath), slog.String("path", req.OutputPath)}

	if err := s.allow(task.TransformImage, req.ImagePath, req.OutputPath); err != nil {
		return s.report(ctx, task.TransformImage, start, err, attrs...)
	}

	if err := req.Validate(); err != nil {
		return s.report(ctx, task.TransformImage, start,
			task.Fail(task.TransformImage, task.KindInvalidInput, "", err), attrs...)
	}

	src, err := os.Open(req.ImagePath)
	if err != nil {
		return s.report(ctx, task.TransformImage, start,
			task.Fail(task.TransformImage, task.KindIO, req.ImagePath, fmt.Errorf("opening image: %w", err)), attrs...)
	}
	defer func() { _ = src.Close() }()

	var out bytes.Buffer
	opts := ports.ImageOptions{
		Resize:     req.Resize,
		Format:     req.Format,
		OutputName: req.OutputPath,
		Quality:    req.EffectiveQuality(),
	}
	if err := s.caps.Images.Transform(src, &out, opts); err != nil {
		return s.report(ctx, task.TransformImage, start,
			task.Fail(task.TransformImage, task.KindExternalCall, req.ImagePath, err), attrs...)
	}

	if err := writeOutput(req.OutputPath, out.Bytes()); err != nil {
		return s.report(ctx, task.TransformImage, start,
			task.Fail(task.TransformImage, task.KindIO, req.OutputPath, err), attrs...)
	}

	attrs = append(attrs, slog.Int("bytes", out.Len()))
	return s.report(ctx, task.TransformImage, start, nil, attrs...)
}
