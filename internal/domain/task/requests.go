package task

import (
	"fmt"

	"github.com/jsamuelsen11/dataworks/internal/domain"
)

// DefaultJPEGQuality is applied when an ImageRequest leaves Quality at zero.
const DefaultJPEGQuality = 85

// Quality bounds for JPEG encoding.
const (
	MinQuality = 1
	MaxQuality = 100
)

// FetchRequest asks for a URL to be fetched and saved to SavePath.
type FetchRequest struct {
	URL      string
	SavePath string
	Headers  map[string]string
}

// QueryRequest runs Query against the database at DBPath and writes the
// result document to OutputPath.
type QueryRequest struct {
	DBPath     string
	Query      string
	OutputPath string
}

// QueryResult holds the rows and column names produced by a query.
type QueryResult struct {
	Query       string   `json:"query"`
	Results     [][]any  `json:"results"`
	ColumnNames []string `json:"column_names"`
}

// ScrapeRequest fetches an HTML page, optionally narrows it with a CSS
// selector, and writes a ScrapeDocument to OutputPath.
type ScrapeRequest struct {
	URL        string
	OutputPath string
	Selector   string
}

// ScrapeDocument is the persisted shape of a scrape. Field order is the
// on-disk key order.
type ScrapeDocument struct {
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

// Size is a target width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// ImageRequest decodes ImagePath, applies the optional resize and format
// conversion, and writes the re-encoded image to OutputPath.
type ImageRequest struct {
	ImagePath  string
	OutputPath string
	Resize     *Size
	Format     string
	Quality    int
}

// EffectiveQuality returns Quality, or DefaultJPEGQuality when unset.
func (r ImageRequest) EffectiveQuality() int {
	if r.Quality == 0 {
		return DefaultJPEGQuality
	}
	return r.Quality
}

// Validate checks Quality and Resize. A zero Quality is valid and means
// DefaultJPEGQuality.
func (r ImageRequest) Validate() error {
	fields := make(map[string]string)
	if q := r.Quality; q != 0 && (q < MinQuality || q > MaxQuality) {
		fields["quality"] = fmt.Sprintf("must be between %d and %d, got %d", MinQuality, MaxQuality, q)
	}
	if r.Resize != nil && (r.Resize.Width <= 0 || r.Resize.Height <= 0) {
		fields["resize"] = fmt.Sprintf("width and height must be positive, got %dx%d", r.Resize.Width, r.Resize.Height)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MarkdownRequest renders MDPath to an HTML document at OutputPath using the
// named Markdown extensions.
type MarkdownRequest struct {
	MDPath     string
	OutputPath string
	Extras     []string
}

// FilterRequest loads the CSV at CSVPath and keeps the rows whose
// FilterColumn equals FilterValue.
type FilterRequest struct {
	CSVPath      string
	FilterColumn string
	FilterValue  any
}
