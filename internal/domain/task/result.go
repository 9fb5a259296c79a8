package task

import "errors"

// Result is the uniform outcome of one task invocation: either OK with an
// optional payload, or a failure carrying its reason.
type Result struct {
	Task    Name           `json:"task"`
	OK      bool           `json:"ok"`
	Payload any            `json:"payload,omitempty"`
	Failure *FailureReport `json:"failure,omitempty"`
}

// FailureReport is the serializable view of a Failure.
type FailureReport struct {
	Kind   Kind   `json:"kind"`
	Path   string `json:"path,omitempty"`
	Reason string `json:"reason"`
}

// Succeeded builds a successful Result.
func Succeeded(name Name, payload any) Result {
	return Result{Task: name, OK: true, Payload: payload}
}

// Failed builds a failed Result from err. Errors that are not a *Failure are
// reported as external call failures.
func Failed(name Name, err error) Result {
	var f *Failure
	if !errors.As(err, &f) {
		f = Fail(name, KindExternalCall, "", err)
	}
	return Result{
		Task: name,
		OK:   false,
		Failure: &FailureReport{
			Kind:   f.Kind,
			Path:   f.Path,
			Reason: f.Reason(),
		},
	}
}

// From builds a Result from a payload and the error returned by a task.
func From(name Name, payload any, err error) Result {
	if err != nil {
		return Failed(name, err)
	}
	return Succeeded(name, payload)
}
