package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/dataworks/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders renders headers as a "headers" log group with keys in
// sorted order. Sensitive values are replaced with "[REDACTED]" and
// multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) slog.Attr {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		value := strings.Join(headers[k], ",")
		if logging.IsSensitiveHeader(k) {
			value = redactedValue
		}
		attrs = append(attrs, slog.String(k, value))
	}
	return slog.Group("headers", attrs...)
}
