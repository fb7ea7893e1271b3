package api

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"kotoba/internal/logging"
)

const maxBodyBytes = 64 << 10

// quietPaths are polled by the UI and only logged on errors.
var quietPaths = map[string]bool{
	"/api/health":          true,
	"/api/captions/active": true,
}

func corsOptions(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowCreds := true
	for _, o := range allowedOrigins {
		if o == "*" {
			allowCreds = false
			break
		}
	}
	return cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: allowCreds,
		MaxAge:           300,
	}
}

// requestLogger logs each request and stores the chi request id in the
// context so handlers can tag their own log lines.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logging.WithRequestID(r.Context(), chimw.GetReqID(r.Context()))
			r = r.WithContext(ctx)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if quietPaths[r.URL.Path] && status < http.StatusBadRequest {
				return
			}
			attrs := []logging.Attr{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", status),
				logging.Duration("elapsed", time.Since(start)),
			}
			log := logging.WithContext(ctx, logger)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", logging.Args(attrs...)...)
				return
			}
			log.Info("request", logging.Args(attrs...)...)
		})
	}
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
