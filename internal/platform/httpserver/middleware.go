package httpserver

import (
	"net/http"
	"runtime/debug"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wrote {
		r.status = status
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	if !r.wrote {
		r.status = http.StatusOK
		r.wrote = true
	}
	return r.ResponseWriter.Write(body)
}

// withCORS allows every origin.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("Access-Control-Allow-Origin", "*")
		headers.Set("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE")
		headers.Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				s.logger.Error("http handler panicked",
					"event", "http_handler_panic",
					"module", "internal/platform/httpserver",
					"layer", "transport",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", recovered,
					"stack", string(debug.Stack()),
				)
				writeCampaignError(w, http.StatusInternalServerError, "internal_error", msgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.metrics.ObserveHTTPRequest(r.Pattern, rec.status)
		s.logger.Debug("http request served",
			"event", "http_request_served",
			"module", "internal/platform/httpserver",
			"layer", "transport",
			"method", r.Method,
			"path", r.URL.Path,
			"route", r.Pattern,
			"status", rec.status,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

// admin gates a handler behind a session token when AdminRequireToken is set.
func (s *Server) admin(next http.HandlerFunc) http.HandlerFunc {
	if !s.adminRequireToken {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.sessions.Handler.VerifyTokenHandler(r.Context(), r.Header.Get("Authorization")); err != nil {
			writeSessionDomainError(w, err)
			return
		}
		next(w, r)
	}
}
