package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/dataworks/internal/domain/task"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

// errTaskFailed is returned by a subcommand after a failed TaskResult has
// been printed. main exits 1 without printing it again.
var errTaskFailed = errors.New("task failed")

type globalOptions struct {
	profile   string
	configDir string
}

// runner holds what every subcommand needs: where to print and how to build
// the task service.
type runner struct {
	out        io.Writer
	indent     bool
	newService func(globalOptions) (ports.TaskService, error)

	opts globalOptions
}

func newRootCommand(r *runner) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskrun",
		Short:         "Run a single data task and print its result as JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	root.PersistentFlags().StringVar(&r.opts.profile, "profile", profile, "configuration profile (local, dev, prod)")
	root.PersistentFlags().StringVar(&r.opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")

	root.AddCommand(
		newFetchCommand(r),
		newQueryCommand(r),
		newScrapeCommand(r),
		newImageCommand(r),
		newMarkdownCommand(r),
		newFilterCommand(r),
	)
	return root
}

// exec builds the service, runs fn, and prints the TaskResult. A failed
// task yields errTaskFailed.
func (r *runner) exec(ctx context.Context, name task.Name, fn func(context.Context, ports.TaskService) (any, error)) error {
	svc, err := r.newService(r.opts)
	if err != nil {
		return err
	}

	payload, err := fn(ctx, svc)
	result := task.From(name, payload, err)

	enc := json.NewEncoder(r.out)
	enc.SetEscapeHTML(false)
	if r.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if !result.OK {
		return errTaskFailed
	}
	return nil
}

type outputPayload struct {
	OutputPath string `json:"output_path"`
}

func newFetchCommand(r *runner) *cobra.Command {
	var req task.FetchRequest

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a URL and save the body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.exec(cmd.Context(), task.FetchAndSave, func(ctx context.Context, svc ports.TaskService) (any, error) {
				return outputPayload{OutputPath: req.SavePath}, svc.FetchAndSave(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.URL, "url", "", "URL to fetch")
	cmd.Flags().StringVar(&req.SavePath, "out", "", "file to write the body to")
	cmd.Flags().StringToStringVarP(&req.Headers, "header", "H", nil, "request header as name=value (repeatable)")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newQueryCommand(r *runner) *cobra.Command {
	var req task.QueryRequest

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run SQL against a database and save the result document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.exec(cmd.Context(), task.RunQuery, func(ctx context.Context, svc ports.TaskService) (any, error) {
				res, err := svc.RunQuery(ctx, req)
				if err != nil {
					return nil, err
				}
				return res, nil
			})
		},
	}

	cmd.Flags().StringVar(&req.DBPath, "db", "", "database file (.db selects SQLite, otherwise DuckDB) or postgres:// URL")
	cmd.Flags().StringVar(&req.Query, "query", "", "SQL statement")
	cmd.Flags().StringVar(&req.OutputPath, "out", "", "file to write the JSON result to")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("query")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newScrapeCommand(r *runner) *cobra.Command {
	var req task.ScrapeRequest

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Download an HTML page and save the selected content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.exec(cmd.Context(), task.ScrapePage, func(ctx context.Context, svc ports.TaskService) (any, error) {
				return outputPayload{OutputPath: req.OutputPath}, svc.ScrapePage(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.URL, "url", "", "page URL")
	cmd.Flags().StringVar(&req.OutputPath, "out", "", "file to write the JSON document to")
	cmd.Flags().StringVar(&req.Selector, "selector", "", "CSS selector; empty keeps the whole document")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newImageCommand(r *runner) *cobra.Command {
	var (
		req           task.ImageRequest
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Resize and re-encode an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
				req.Resize = &task.Size{Width: width, Height: height}
			}
			return r.exec(cmd.Context(), task.TransformImage, func(ctx context.Context, svc ports.TaskService) (any, error) {
				return outputPayload{OutputPath: req.OutputPath}, svc.TransformImage(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.ImagePath, "in", "", "source image")
	cmd.Flags().StringVar(&req.OutputPath, "out", "", "destination image")
	cmd.Flags().IntVar(&width, "width", 0, "resize width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "resize height in pixels")
	cmd.Flags().StringVar(&req.Format, "format", "", "output format (jpeg, png, gif, tiff, bmp)")
	cmd.Flags().IntVar(&req.Quality, "quality", task.DefaultJPEGQuality, "JPEG quality 1-100")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newMarkdownCommand(r *runner) *cobra.Command {
	var req task.MarkdownRequest

	cmd := &cobra.Command{
		Use:   "markdown",
		Short: "Render a Markdown file to a standalone HTML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.exec(cmd.Context(), task.RenderMarkdown, func(ctx context.Context, svc ports.TaskService) (any, error) {
				return outputPayload{OutputPath: req.OutputPath}, svc.RenderMarkdown(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.MDPath, "in", "", "Markdown source")
	cmd.Flags().StringVar(&req.OutputPath, "out", "", "HTML destination")
	cmd.Flags().StringSliceVar(&req.Extras, "extra", nil, "Markdown extension name (repeatable or comma separated)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newFilterCommand(r *runner) *cobra.Command {
	var (
		req   task.FilterRequest
		value string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the CSV rows whose column equals a value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("value") {
				req.FilterValue = parseFilterValue(value)
			}
			return r.exec(cmd.Context(), task.FilterTabular, func(ctx context.Context, svc ports.TaskService) (any, error) {
				rows, err := svc.FilterTabular(ctx, req)
				if err != nil {
					return nil, err
				}
				return rows, nil
			})
		},
	}

	cmd.Flags().StringVar(&req.CSVPath, "csv", "", "CSV file")
	cmd.Flags().StringVar(&req.FilterColumn, "column", "", "column to compare")
	cmd.Flags().StringVar(&value, "value", "", "value to match; JSON literals (null, true, 42) keep their type")
	_ = cmd.MarkFlagRequired("csv")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

// parseFilterValue decodes s as a JSON scalar so that the command line
// matches the HTTP body's typing. A quoted JSON string yields its contents;
// anything that is not a JSON scalar is taken as a literal string.
func parseFilterValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case nil, bool, float64, string:
		return v
	default:
		return s
	}
}
