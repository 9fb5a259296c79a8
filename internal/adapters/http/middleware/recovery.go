package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/dataworks/internal/adapters/http/dto"
)

// errInternalServer is the only detail clients see for a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a logged error
// and an RFC 9457 500 response, so one bad request never takes down the
// service. If headers were already sent only the log entry is emitted.
// http.ErrAbortHandler is re-raised so net/http can abort the connection
// quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(http.ErrAbortHandler)
				}

				stack := debug.Stack()
				if p, ok := v.(*handlerPanic); ok {
					v, stack = p.value, p.stack
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// handlerPanic carries a panic raised on a handler goroutine, with its
// original stack, back to the serving goroutine.
type handlerPanic struct {
	value any
	stack []byte
}

func (p *handlerPanic) Error() string {
	return fmt.Sprintf("handler panic: %v", p.value)
}

// Unwrap lets errors.Is see an http.ErrAbortHandler panic value.
func (p *handlerPanic) Unwrap() error {
	if err, ok := p.value.(error); ok {
		return err
	}
	return nil
}
