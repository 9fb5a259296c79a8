package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/sqlengine"
	"github.com/jsamuelsen11/dataworks/internal/domain"
	"github.com/jsamuelsen11/dataworks/internal/domain/pathguard"
	"github.com/jsamuelsen11/dataworks/internal/domain/tabular"
	"github.com/jsamuelsen11/dataworks/internal/domain/task"
	"github.com/jsamuelsen11/dataworks/internal/platform/logging"
	"github.com/jsamuelsen11/dataworks/internal/ports"
	"github.com/jsamuelsen11/dataworks/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// recordedRun is one call captured by fakeRecorder.
type recordedRun struct {
	task   string
	result string
}

type fakeRecorder struct {
	mu   sync.Mutex
	runs []recordedRun
}

func (f *fakeRecorder) RecordTask(_ context.Context, taskName, result string, _ time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, recordedRun{task: taskName, result: result})
}

// fixture bundles a TaskService rooted at a temp dir with its mocks.
type fixture struct {
	root     string
	svc      *TaskService
	fetcher  *mocks.MockFetcher
	embedded *mocks.MockSQLEngine
	analytic *mocks.MockSQLEngine
	server   *mocks.MockSQLEngine
	selector *mocks.MockHTMLSelector
	images   *mocks.MockImageCodec
	markdown *mocks.MockMarkdownRenderer
	tabular  *mocks.MockTabularEngine
	recorder *fakeRecorder
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		root:     t.TempDir(),
		fetcher:  mocks.NewMockFetcher(t),
		embedded: mocks.NewMockSQLEngine(t),
		analytic: mocks.NewMockSQLEngine(t),
		server:   mocks.NewMockSQLEngine(t),
		selector: mocks.NewMockHTMLSelector(t),
		images:   mocks.NewMockImageCodec(t),
		markdown: mocks.NewMockMarkdownRenderer(t),
		tabular:  mocks.NewMockTabularEngine(t),
		recorder: &fakeRecorder{},
	}
	caps := Capabilities{
		Fetcher:    f.fetcher,
		Embedded:   f.embedded,
		Analytical: f.analytic,
		Server:     f.server,
		Selector:   f.selector,
		Images:     f.images,
		Markdown:   f.markdown,
		Tabular:    f.tabular,
	}
	guard := pathguard.New(f.root, pathguard.ModePrefix, discardLogger())
	opts = append([]Option{WithRecorder(f.recorder)}, opts...)
	f.svc = NewTaskService(guard, caps, discardLogger(), opts...)
	return f
}

func (f *fixture) path(parts ...string) string {
	return filepath.Join(append([]string{f.root}, parts...)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func assertKind(t *testing.T, err error, want task.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want %s failure", want)
	}
	if got := task.KindOf(err); got != want {
		t.Fatalf("KindOf(%v) = %q, want %q", err, got, want)
	}
}

// --- NewTaskService ---

func TestNewTaskService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(pathguard.New("/data", pathguard.ModePrefix, nil), Capabilities{}, nil)
	if svc.logger == nil {
		t.Fatal("NewTaskService(nil logger) should create a no-op logger, got nil")
	}
	if svc.now == nil {
		t.Fatal("NewTaskService() should default the clock")
	}
}

// --- Guard ---

func TestTaskService_GuardRejectsBeforeDelegate(t *testing.T) {
	t.Parallel()

	outside := "/definitely-outside-root/out.json"

	tests := []struct {
		name string
		run  func(f *fixture) error
	}{
		{
			name: "fetch save path",
			run: func(f *fixture) error {
				return f.svc.FetchAndSave(context.Background(), task.FetchRequest{URL: "http://x", SavePath: outside})
			},
		},
		{
			name: "query db path",
			run: func(f *fixture) error {
				_, err := f.svc.RunQuery(context.Background(), task.QueryRequest{DBPath: "/etc/app.db", Query: "SELECT 1", OutputPath: f.path("o.json")})
				return err
			},
		},
		{
			name: "query output path",
			run: func(f *fixture) error {
				_, err := f.svc.RunQuery(context.Background(), task.QueryRequest{DBPath: f.path("a.db"), Query: "SELECT 1", OutputPath: outside})
				return err
			},
		},
		{
			name: "scrape output path",
			run: func(f *fixture) error {
				return f.svc.ScrapePage(context.Background(), task.ScrapeRequest{URL: "http://x", OutputPath: outside})
			},
		},
		{
			name: "image source path",
			run: func(f *fixture) error {
				return f.svc.TransformImage(context.Background(), task.ImageRequest{ImagePath: "/etc/img.png", OutputPath: f.path("o.png")})
			},
		},
		{
			name: "markdown output path",
			run: func(f *fixture) error {
				return f.svc.RenderMarkdown(context.Background(), task.MarkdownRequest{MDPath: f.path("a.md"), OutputPath: outside})
			},
		},
		{
			name: "filter csv path",
			run: func(f *fixture) error {
				_, err := f.svc.FilterTabular(context.Background(), task.FilterRequest{CSVPath: "/etc/passwd", FilterColumn: "x"})
				return err
			},
		},
		{
			name: "filter csv path with empty column",
			run: func(f *fixture) error {
				_, err := f.svc.FilterTabular(context.Background(), task.FilterRequest{CSVPath: "/etc/passwd"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// No mock expectations: any delegate call fails the test.
			f := newFixture(t)

			err := tt.run(f)

			assertKind(t, err, task.KindSecurityViolation)
			if !errors.Is(err, domain.ErrForbidden) {
				t.Errorf("errors.Is(err, ErrForbidden) = false for %v", err)
			}
			if len(f.recorder.runs) != 1 || f.recorder.runs[0].result != string(task.KindSecurityViolation) {
				t.Errorf("recorded runs = %+v, want one security_violation", f.recorder.runs)
			}
		})
	}
}

// --- FetchAndSave ---

func TestTaskService_FetchAndSave(t *testing.T) {
	t.Parallel()

	t.Run("re-indents json bodies", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		headers := map[string]string{"Authorization": "Bearer t"}
		f.fetcher.EXPECT().Fetch(mock.Anything, "http://api/items", headers).Return(&ports.FetchedResponse{
			StatusCode:  200,
			ContentType: "application/json; charset=utf-8",
			Body:        []byte(`{"b":1.50,"a":[true,null]}`),
		}, nil)

		out := f.path("nested", "dir", "items.json")
		if err := f.svc.FetchAndSave(context.Background(), task.FetchRequest{URL: "http://api/items", SavePath: out, Headers: headers}); err != nil {
			t.Fatalf("FetchAndSave() error = %v", err)
		}

		want := "{\n  \"a\": [\n    true,\n    null\n  ],\n  \"b\": 1.50\n}"
		if got := readFile(t, out); got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
		if f.recorder.runs[0] != (recordedRun{task: "fetch_and_save", result: "success"}) {
			t.Errorf("recorded = %+v", f.recorder.runs)
		}
	})

	t.Run("writes other bodies verbatim", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		body := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
		f.fetcher.EXPECT().Fetch(mock.Anything, "http://cdn/logo", map[string]string(nil)).Return(&ports.FetchedResponse{
			StatusCode: 200, ContentType: "image/png", Body: body,
		}, nil)

		out := f.path("logo.png")
		if err := f.svc.FetchAndSave(context.Background(), task.FetchRequest{URL: "http://cdn/logo", SavePath: out}); err != nil {
			t.Fatalf("FetchAndSave() error = %v", err)
		}
		if got := readFile(t, out); got != string(body) {
			t.Errorf("file = %q, want %q", got, body)
		}
	})

	t.Run("fetch error is an external call failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.fetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("HTTP 404"))

		out := f.path("x.json")
		err := f.svc.FetchAndSave(context.Background(), task.FetchRequest{URL: "http://x", SavePath: out})
		assertKind(t, err, task.KindExternalCall)
		if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
			t.Errorf("output exists after failure: %v", statErr)
		}
	})

	t.Run("invalid json under json content type", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.fetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).Return(&ports.FetchedResponse{
			StatusCode: 200, ContentType: "application/json", Body: []byte("{nope"),
		}, nil)

		err := f.svc.FetchAndSave(context.Background(), task.FetchRequest{URL: "http://x", SavePath: f.path("x.json")})
		assertKind(t, err, task.KindExternalCall)
	})

	t.Run("unwritable save path is an io failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		writeFile(t, f.path("file"), "occupied")
		f.fetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).Return(&ports.FetchedResponse{
			StatusCode: 200, ContentType: "text/plain", Body: []byte("hi"),
		}, nil)

		err := f.svc.FetchAndSave(context.Background(), task.FetchRequest{URL: "http://x", SavePath: f.path("file", "child.txt")})
		assertKind(t, err, task.KindIO)
	})
}

// --- RunQuery ---

func TestTaskService_RunQuery_SQLiteScenario(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	guard := pathguard.New(root, pathguard.ModePrefix, discardLogger())
	svc := NewTaskService(guard, Capabilities{Embedded: sqlengine.NewSQLite()}, discardLogger())

	out := filepath.Join(root, "out", "result.json")
	result, err := svc.RunQuery(context.Background(), task.QueryRequest{
		DBPath:     filepath.Join(root, "test.db"),
		Query:      "SELECT 1 AS x",
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("RunQuery() error = %v", err)
	}
	if len(result.Results) != 1 || len(result.Results[0]) != 1 || result.Results[0][0] != int64(1) {
		t.Errorf("Results = %v, want [[1]]", result.Results)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(readFile(t, out)), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(doc) != 3 {
		t.Errorf("output keys = %d, want 3", len(doc))
	}
	if got := strings.Join(strings.Fields(string(doc["results"])), ""); got != "[[1]]" {
		t.Errorf("results = %s, want [[1]]", got)
	}
	if got := strings.Join(strings.Fields(string(doc["column_names"])), ""); got != `["x"]` {
		t.Errorf("column_names = %s, want [\"x\"]", got)
	}
	if string(doc["query"]) != `"SELECT 1 AS x"` {
		t.Errorf("query = %s", doc["query"])
	}
}

func TestTaskService_RunQuery_EngineSelection(t *testing.T) {
	t.Parallel()

	want := &task.QueryResult{Query: "q", Results: [][]any{}, ColumnNames: []string{}}

	t.Run("db suffix uses embedded engine", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		db := f.path("app.db")
		f.embedded.EXPECT().Name().Return("sqlite")
		f.embedded.EXPECT().Query(mock.Anything, db, "q").Return(want, nil)

		if _, err := f.svc.RunQuery(context.Background(), task.QueryRequest{DBPath: db, Query: "q", OutputPath: f.path("o.json")}); err != nil {
			t.Fatalf("RunQuery() error = %v", err)
		}
	})

	t.Run("other paths use analytical engine", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		db := f.path("warehouse.duckdb")
		f.analytic.EXPECT().Name().Return("duckdb")
		f.analytic.EXPECT().Query(mock.Anything, db, "q").Return(want, nil)

		if _, err := f.svc.RunQuery(context.Background(), task.QueryRequest{DBPath: db, Query: "q", OutputPath: f.path("o.json")}); err != nil {
			t.Fatalf("RunQuery() error = %v", err)
		}
	})

	t.Run("postgres dsn uses server engine without guard", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		dsn := "postgres://u:secret@db:5432/app"
		f.server.EXPECT().Name().Return("postgres")
		f.server.EXPECT().Query(mock.Anything, dsn, "q").Return(want, nil)

		if _, err := f.svc.RunQuery(context.Background(), task.QueryRequest{DBPath: dsn, Query: "q", OutputPath: f.path("o.json")}); err != nil {
			t.Fatalf("RunQuery() error = %v", err)
		}
	})

	t.Run("postgres dsn without server engine", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		svc := NewTaskService(pathguard.New(root, pathguard.ModePrefix, nil), Capabilities{}, discardLogger())

		_, err := svc.RunQuery(context.Background(), task.QueryRequest{DBPath: "postgresql://db/app", Query: "q", OutputPath: filepath.Join(root, "o.json")})
		assertKind(t, err, task.KindInvalidInput)
	})

	t.Run("engine error is an external call failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.embedded.EXPECT().Name().Return("sqlite")
		f.embedded.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("no such table"))

		out := f.path("o.json")
		_, err := f.svc.RunQuery(context.Background(), task.QueryRequest{DBPath: f.path("a.db"), Query: "SELECT * FROM t", OutputPath: out})
		assertKind(t, err, task.KindExternalCall)
		if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
			t.Errorf("output exists after failure: %v", statErr)
		}
	})
}

func TestRedactDSN(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"/data/app.db", "/data/app.db"},
		{"postgres://u:secret@db:5432/app", "postgres://u@db:5432/app"},
		{"postgresql://db/app", "postgresql://db/app"},
	}
	for _, tt := range tests {
		if got := redactDSN(tt.in); got != tt.want {
			t.Errorf("redactDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// --- ScrapePage ---

func TestTaskService_ScrapePage(t *testing.T) {
	t.Parallel()

	clock := func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 890123000, time.Local) }
	f := newFixture(t, WithClock(clock))

	f.fetcher.EXPECT().Fetch(mock.Anything, "http://site", map[string]string(nil)).Return(&ports.FetchedResponse{
		StatusCode: 200, ContentType: "text/html", Body: []byte("<p>a</p>"),
	}, nil)
	f.selector.EXPECT().Select(mock.Anything, "p").RunAndReturn(func(r io.Reader, _ string) (string, error) {
		b, _ := io.ReadAll(r)
		if string(b) != "<p>a</p>" {
			t.Errorf("selector got %q", b)
		}
		return "[<p>a</p>]", nil
	})

	out := f.path("scrape.json")
	if err := f.svc.ScrapePage(context.Background(), task.ScrapeRequest{URL: "http://site", OutputPath: out, Selector: "p"}); err != nil {
		t.Fatalf("ScrapePage() error = %v", err)
	}

	want := "{\n  \"url\": \"http://site\",\n  \"timestamp\": \"2025-03-04 05:06:07.890123\",\n  \"content\": \"[<p>a</p>]\"\n}"
	if got := readFile(t, out); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestTaskService_ScrapePage_SelectorError(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.fetcher.EXPECT().Fetch(mock.Anything, mock.Anything, mock.Anything).Return(&ports.FetchedResponse{Body: []byte("<p>")}, nil)
	f.selector.EXPECT().Select(mock.Anything, "p[[").Return("", errors.New("bad selector"))

	err := f.svc.ScrapePage(context.Background(), task.ScrapeRequest{URL: "http://site", OutputPath: f.path("s.json"), Selector: "p[["})
	assertKind(t, err, task.KindExternalCall)
}

// --- TransformImage ---

func TestTaskService_TransformImage(t *testing.T) {
	t.Parallel()

	t.Run("passes options and writes encoded bytes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		src := f.path("in.png")
		writeFile(t, src, "raw-image")
		out := f.path("thumbs", "out.jpg")

		wantOpts := ports.ImageOptions{Resize: &task.Size{Width: 10, Height: 20}, Format: "JPEG", OutputName: out, Quality: task.DefaultJPEGQuality}
		f.images.EXPECT().Transform(mock.Anything, mock.Anything, wantOpts).RunAndReturn(func(r io.Reader, w io.Writer, _ ports.ImageOptions) error {
			b, _ := io.ReadAll(r)
			_, err := w.Write(append([]byte("encoded:"), b...))
			return err
		})

		req := task.ImageRequest{ImagePath: src, OutputPath: out, Resize: &task.Size{Width: 10, Height: 20}, Format: "JPEG"}
		if err := f.svc.TransformImage(context.Background(), req); err != nil {
			t.Fatalf("TransformImage() error = %v", err)
		}
		if got := readFile(t, out); got != "encoded:raw-image" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("invalid quality never reaches the codec", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.svc.TransformImage(context.Background(), task.ImageRequest{ImagePath: f.path("in.png"), OutputPath: f.path("o.jpg"), Quality: 101})
		assertKind(t, err, task.KindInvalidInput)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("errors.Is(err, ErrValidation) = false for %v", err)
		}
	})

	t.Run("missing source is an io failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.svc.TransformImage(context.Background(), task.ImageRequest{ImagePath: f.path("missing.png"), OutputPath: f.path("o.png")})
		assertKind(t, err, task.KindIO)
	})

	t.Run("codec error leaves no output", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		src := f.path("in.png")
		writeFile(t, src, "garbage")
		f.images.EXPECT().Transform(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("unknown format"))

		out := f.path("o.png")
		err := f.svc.TransformImage(context.Background(), task.ImageRequest{ImagePath: src, OutputPath: out})
		assertKind(t, err, task.KindExternalCall)
		if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
			t.Errorf("output exists after failure: %v", statErr)
		}
	})
}

// --- RenderMarkdown ---

func TestTaskService_RenderMarkdown(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	src := f.path("docs", "notes<1>.md")
	writeFile(t, src, "# Title")
	f.markdown.EXPECT().Render([]byte("# Title"), []string{"tables"}).Return([]byte("<h1>Title</h1>\n"), nil)

	out := f.path("site", "notes.html")
	if err := f.svc.RenderMarkdown(context.Background(), task.MarkdownRequest{MDPath: src, OutputPath: out, Extras: []string{"tables"}}); err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}

	got := readFile(t, out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		"<title>Converted from notes&lt;1&gt;.md</title>",
		"<h1>Title</h1>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q:\n%s", want, got)
		}
	}
}

func TestTaskService_RenderMarkdown_Failures(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.svc.RenderMarkdown(context.Background(), task.MarkdownRequest{MDPath: f.path("none.md"), OutputPath: f.path("o.html")})
		assertKind(t, err, task.KindIO)
	})

	t.Run("renderer error", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		src := f.path("a.md")
		writeFile(t, src, "x")
		f.markdown.EXPECT().Render(mock.Anything, []string{"bogus"}).Return(nil, errors.New("unknown markdown extension"))

		err := f.svc.RenderMarkdown(context.Background(), task.MarkdownRequest{MDPath: src, OutputPath: f.path("o.html"), Extras: []string{"bogus"}})
		assertKind(t, err, task.KindExternalCall)
	})
}

// --- FilterTabular ---

func TestTaskService_FilterTabular(t *testing.T) {
	t.Parallel()

	t.Run("returns engine rows", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		csv := f.path("people.csv")
		writeFile(t, csv, "name,status\nada,active\n")
		want := []tabular.Row{{Columns: []string{"name", "status"}, Values: []any{"ada", "active"}}}
		f.tabular.EXPECT().FilterEqual(mock.Anything, mock.Anything, "status", "active").Return(want, nil)

		got, err := f.svc.FilterTabular(context.Background(), task.FilterRequest{CSVPath: csv, FilterColumn: "status", FilterValue: "active"})
		if err != nil {
			t.Fatalf("FilterTabular() error = %v", err)
		}
		if len(got) != 1 || got[0].Values[0] != "ada" {
			t.Errorf("rows = %+v", got)
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, WithMaxCSVBytes(8))
		csv := f.path("big.csv")
		writeFile(t, csv, "a,b\n1,2\n3,4\n")

		_, err := f.svc.FilterTabular(context.Background(), task.FilterRequest{CSVPath: csv, FilterColumn: "a", FilterValue: 1.0})
		assertKind(t, err, task.KindInvalidInput)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.FilterTabular(context.Background(), task.FilterRequest{CSVPath: f.path("none.csv"), FilterColumn: "a"})
		assertKind(t, err, task.KindIO)
	})

	t.Run("empty column", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		csv := f.path("p.csv")
		writeFile(t, csv, "a\n1\n")

		// No engine expectation: the engine must not be called.
		_, err := f.svc.FilterTabular(context.Background(), task.FilterRequest{CSVPath: csv, FilterValue: "1"})
		assertKind(t, err, task.KindInvalidInput)
	})

	t.Run("engine error", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		csv := f.path("p.csv")
		writeFile(t, csv, "a\n1\n")
		f.tabular.EXPECT().FilterEqual(mock.Anything, mock.Anything, "missing", nil).Return(nil, errors.New("column not found"))

		_, err := f.svc.FilterTabular(context.Background(), task.FilterRequest{CSVPath: csv, FilterColumn: "missing"})
		assertKind(t, err, task.KindExternalCall)
	})
}

// --- Report ---

func TestTaskService_LogsFailureContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	root := t.TempDir()
	svc := NewTaskService(pathguard.New(root, pathguard.ModePrefix, nil), Capabilities{}, logger)

	_ = svc.FetchAndSave(context.Background(), task.FetchRequest{URL: "http://x", SavePath: "/etc/out"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "task failed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "task failed")
	}
	if entry["kind"] != string(task.KindSecurityViolation) {
		t.Errorf("kind = %v", entry["kind"])
	}
	if entry["path"] != "/etc/out" {
		t.Errorf("path = %v", entry["path"])
	}
	if entry["operation"] != string(task.FetchAndSave) {
		t.Errorf("operation = %v", entry["operation"])
	}
}

func TestTaskService_PrefersRequestLogger(t *testing.T) {
	t.Parallel()

	var serviceBuf, requestBuf bytes.Buffer
	root := t.TempDir()
	svc := NewTaskService(
		pathguard.New(root, pathguard.ModePrefix, nil),
		Capabilities{},
		slog.New(slog.NewJSONHandler(&serviceBuf, nil)),
	)

	reqLogger := slog.New(slog.NewJSONHandler(&requestBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := logging.WithLogger(context.Background(), reqLogger)

	_, _ = svc.FilterTabular(ctx, task.FilterRequest{CSVPath: "/etc/people.csv", FilterColumn: "x"})

	if serviceBuf.Len() != 0 {
		t.Errorf("service logger received %q, want nothing", serviceBuf.String())
	}
	if !strings.Contains(requestBuf.String(), `"request_id":"req-42"`) {
		t.Errorf("request log = %q, want request_id attribute", requestBuf.String())
	}
}

func TestWriteOutput_BareFileName(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := writeOutput("plain.txt", []byte("ok")); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}
	if got := readFile(t, "plain.txt"); got != "ok" {
		t.Errorf("file = %q", got)
	}
}
