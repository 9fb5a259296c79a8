package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/dataworks/internal/domain/tabular"
	"github.com/jsamuelsen11/dataworks/internal/domain/task"
)

// FetchedResponse is the body and metadata of a successful HTTP GET.
type FetchedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetcher performs outbound HTTP GET requests.
// Implemented by the web client adapter; called by the fetch and scrape tasks.
type Fetcher interface {
	// Fetch issues a GET for url with the given extra headers. Responses with
	// a status of 400 or above are returned as errors.
	Fetch(ctx context.Context, url string, headers map[string]string) (*FetchedResponse, error)
}

// SQLEngine runs a single query against a database identified by a path or DSN.
// The connection is opened and closed within each call.
type SQLEngine interface {
	// Name identifies the engine in logs (e.g. "sqlite", "duckdb").
	Name() string

	// Query executes query and returns every row with its column names.
	Query(ctx context.Context, dsn, query string) (*task.QueryResult, error)
}

// HTMLSelector parses an HTML document and renders the selected content.
type HTMLSelector interface {
	// Select returns the whole document when selector is empty, otherwise the
	// list of matching elements rendered as "[<a>..</a>, <b>..</b>]".
	Select(doc io.Reader, selector string) (string, error)
}

// ImageOptions controls a single image transformation.
type ImageOptions struct {
	// Resize is optional; nil keeps the source dimensions.
	Resize *task.Size

	// Format is the target format name ("JPEG", "png", ...). Empty derives
	// the format from OutputName, falling back to the source format.
	Format string

	// OutputName is the destination file name, used only for format inference.
	OutputName string

	// Quality is the JPEG quality (1-100); ignored by other formats.
	Quality int
}

// ImageCodec decodes, transforms, and re-encodes images.
type ImageCodec interface {
	Transform(src io.Reader, dst io.Writer, opts ImageOptions) error
}

// MarkdownRenderer converts Markdown to an HTML fragment.
type MarkdownRenderer interface {
	// Render converts source using the named extensions. Unknown extension
	// names are an error.
	Render(source []byte, extensions []string) ([]byte, error)
}

// TabularEngine loads delimited data into a frame and filters it.
type TabularEngine interface {
	// FilterEqual returns the rows whose column equals value, in source order,
	// with columns in source order.
	FilterEqual(ctx context.Context, src io.Reader, column string, value any) ([]tabular.Row, error)
}
