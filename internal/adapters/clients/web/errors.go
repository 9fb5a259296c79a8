package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/dataworks/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// StatusError reports a response whose status code is 400 or above.
type StatusError struct {
	URL        string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Detail)
}

// Unwrap maps the status to a domain sentinel so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case e.StatusCode >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return domain.ErrExternalCall
	}
}

// problemDetail is the subset of an RFC 9457 body we surface.
type problemDetail struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// TranslateHTTPError builds a *StatusError from an error response. The detail
// comes from an application/problem+json body when present, otherwise from
// the status text.
func TranslateHTTPError(url string, resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = pd.Title
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	return &StatusError{URL: url, StatusCode: resp.StatusCode, Detail: detail}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
