// Package task holds the request types accepted by the task functions and
// the typed outcome they produce. A task never panics or aborts the process:
// every problem is reported as a *Failure tagged with a Kind.
package task

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/dataworks/internal/domain"
)

// Name identifies one task function.
type Name string

// Task names, used in logs, metrics, and TaskResult payloads.
const (
	FetchAndSave   Name = "fetch_and_save"
	RunQuery       Name = "run_query"
	ScrapePage     Name = "scrape_page"
	TransformImage Name = "transform_image"
	RenderMarkdown Name = "render_markdown"
	FilterTabular  Name = "filter_tabular"
)

// Kind classifies why a task failed.
type Kind string

const (
	// KindSecurityViolation means a path argument was rejected by the guard.
	KindSecurityViolation Kind = "security_violation"

	// KindInvalidInput means a parameter was out of range before any
	// capability was called.
	KindInvalidInput Kind = "invalid_input"

	// KindExternalCall means the delegated capability returned an error.
	KindExternalCall Kind = "external_call_failure"

	// KindIO means a filesystem read or write failed.
	KindIO Kind = "io_failure"
)

// sentinel maps a Kind to the domain sentinel used for errors.Is checks.
func (k Kind) sentinel() error {
	switch k {
	case KindSecurityViolation:
		return domain.ErrForbidden
	case KindInvalidInput:
		return domain.ErrValidation
	case KindExternalCall:
		return domain.ErrExternalCall
	case KindIO:
		return domain.ErrIO
	default:
		return nil
	}
}

// Failure is the failure branch of a task outcome. It unwraps to both the
// domain sentinel for its Kind and the underlying cause, so callers can use
// errors.Is(err, domain.ErrForbidden) as well as inspect the original error.
type Failure struct {
	Task Name
	Kind Kind
	Path string
	Err  error
}

// Error returns a human-readable reason including the task and path.
func (f *Failure) Error() string {
	msg := fmt.Sprintf("%s: %s", f.Task, f.Kind)
	if f.Path != "" {
		msg += fmt.Sprintf(" (%s)", f.Path)
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

// Unwrap exposes the kind sentinel and the cause.
func (f *Failure) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := f.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if f.Err != nil {
		errs = append(errs, f.Err)
	}
	return errs
}

// Reason returns the cause's message without the task prefix.
func (f *Failure) Reason() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return f.Err.Error()
}

// ErrOutsideRoot is the cause recorded for guard rejections.
var ErrOutsideRoot = errors.New("access denied: path must be within the allowed root")

// Denied builds a security-violation failure for path.
func Denied(name Name, path, root string) *Failure {
	return &Failure{
		Task: name,
		Kind: KindSecurityViolation,
		Path: path,
		Err:  fmt.Errorf("%w %s", ErrOutsideRoot, root),
	}
}

// Fail builds a failure of the given kind. A nil err yields a failure with
// no cause.
func Fail(name Name, kind Kind, path string, err error) *Failure {
	return &Failure{Task: name, Kind: kind, Path: path, Err: err}
}

// KindOf returns the Kind of err when it is (or wraps) a *Failure, or ""
// otherwise.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}
