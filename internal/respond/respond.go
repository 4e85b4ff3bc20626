// Package respond owns the error side of the wire contract: the JSON 404 for
// unmatched routes and the JSON 500 every handler failure is translated into
// at the dispatch boundary.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/k8s-hands-on/backend/internal/middleware"
)

const (
	// MsgNotFound is the user-facing description for unmatched routes.
	MsgNotFound = "Ruta no encontrada"
	// MsgInternal is the user-facing description for failures during request processing.
	MsgInternal = "Error interno del servidor"
)

// ErrorBody is the wire shape shared by every error response. Unmatched
// routes set Path; internal failures set Message.
type ErrorBody struct {
	Error   string `json:"error" doc:"Human-readable error description"`
	Path    string `json:"path,omitempty" doc:"Requested path, echoed back for unmatched routes"`
	Message string `json:"message,omitempty" doc:"Failure detail for internal errors"`
}

var installOnce sync.Once

// Install points huma's error constructors at the shared wire shape, so that
// errors returned from handlers render the documented payload instead of
// RFC 7807 problem details.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return newStatusError(context.Background(), status, msg, errs)
		}

		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			ctx := context.Background()
			if hctx != nil {
				ctx = hctx.Context()
			}
			return newStatusError(ctx, status, msg, errs)
		}
	})
}

// WriteJSON serializes body directly to the ResponseWriter.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(body)
}

// NotFoundHandler echoes the unmatched path back in the documented 404
// payload. Routing is exact on method and path, so chi's MethodNotAllowed
// hook points here as well: a wrong method on a known path is a routing miss,
// not a 405.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := ErrorBody{Error: MsgNotFound, Path: requestPath(r)}
		if err := WriteJSON(w, http.StatusNotFound, body); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// Recoverer converts panics during request processing into the documented 500
// payload. The stack goes to the log, not the client.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					appmiddleware.LogError(r.Context(), "panic recovered", err,
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					body := ErrorBody{Error: MsgInternal, Message: err.Error()}
					if writeErr := WriteJSON(w, http.StatusInternalServerError, body); writeErr != nil {
						appmiddleware.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requestPath returns the raw request path: percent-encoding preserved,
// query string excluded.
func requestPath(r *http.Request) string {
	if p := r.URL.EscapedPath(); p != "" {
		return p
	}
	return "/"
}

// statusError carries the shared wire shape through huma's StatusError plumbing.
type statusError struct {
	ErrorBody
	status int
}

func (e *statusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ErrorBody.Error != "" {
		return e.ErrorBody.Error
	}
	return http.StatusText(e.status)
}

func (e *statusError) GetStatus() int {
	return e.status
}

func newStatusError(ctx context.Context, status int, msg string, errs []error) huma.StatusError {
	detail := joinDetails(errs)
	body := ErrorBody{Error: msg, Message: detail}
	if body.Error == "" {
		body.Error = http.StatusText(status)
	}

	switch {
	case status >= http.StatusInternalServerError:
		if detail == "" {
			detail = msg
		}
		body.Error = MsgInternal
		body.Message = detail
		appmiddleware.LogError(ctx, "handler failure", joinErrors(errs),
			zap.Int("status", status),
			zap.String("detail", detail),
		)
	case status >= http.StatusBadRequest:
		fields := []zap.Field{zap.Int("status", status), zap.String("message", body.Error)}
		if err := joinErrors(errs); err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogWarn(ctx, "request rejected", fields...)
	}

	return &statusError{ErrorBody: body, status: status}
}

func joinDetails(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}
