package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/dataworks/internal/domain/tabular"
	"github.com/jsamuelsen11/dataworks/internal/domain/task"
)

// TaskService defines the service port for the task functions.
// Implemented by the application layer; called by inbound adapters.
//
// Every method checks each path argument against the allowed root before
// doing anything else. Every returned error is a *task.Failure whose Kind
// tells the caller why the task failed; errors.Is(err, domain.ErrForbidden)
// identifies a rejected path.
type TaskService interface {
	// FetchAndSave downloads a URL and writes the body to the save path.
	FetchAndSave(ctx context.Context, req task.FetchRequest) error

	// RunQuery executes SQL against a database file and writes the result
	// document. The engine is chosen from the database path.
	RunQuery(ctx context.Context, req task.QueryRequest) (*task.QueryResult, error)

	// ScrapePage downloads an HTML page and writes the selected content.
	ScrapePage(ctx context.Context, req task.ScrapeRequest) error

	// TransformImage resizes and/or re-encodes an image file.
	TransformImage(ctx context.Context, req task.ImageRequest) error

	// RenderMarkdown converts a Markdown file to a standalone HTML document.
	RenderMarkdown(ctx context.Context, req task.MarkdownRequest) error

	// FilterTabular loads a CSV file and returns the rows matching the filter.
	FilterTabular(ctx context.Context, req task.FilterRequest) ([]tabular.Row, error)
}

// TaskRecorder records the outcome of one task run. Implemented by
// telemetry.Metrics.
type TaskRecorder interface {
	RecordTask(ctx context.Context, taskName, result string, start time.Time)
}
