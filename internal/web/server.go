package web

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/engine"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{
			"join": strings.Join,
			"yesno": func(b bool) string {
				if b {
					return "Yes"
				}
				return "No"
			},
		}).
		ParseFS(templateFS, "templates/index.html"),
)

// maxBodyBytes caps request bodies for both the form and the API.
const maxBodyBytes = 64 << 10

// SessionSource hands out store sessions. *store.Store implements it.
type SessionSource interface {
	Session(ctx context.Context) (*sql.Conn, error)
}

// Server routes HTTP requests to the executor.
type Server struct {
	sessions SessionSource
	executor *engine.Executor
	logger   zerolog.Logger
}

// New creates a Server. Every request runs on its own session from
// sessions.
func New(sessions SessionSource, executor *engine.Executor, logger zerolog.Logger) *Server {
	return &Server{
		sessions: sessions,
		executor: executor,
		logger:   logger,
	}
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /{$}", s.handlePage)
	mux.HandleFunc("POST /api/translate", s.handleTranslate)
	mux.HandleFunc("GET /api/examples", s.handleExamples)

	var h http.Handler = mux
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	h = hlog.NewHandler(s.logger)(h)
	return h
}

// run executes one query on a fresh session. It returns an error only when
// no session could be obtained.
func (s *Server) run(ctx context.Context, query string) (*engine.Outcome, error) {
	conn, err := s.sessions.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return s.executor.Run(ctx, conn, query), nil
}

// ListenAndServe serves h on addr until ctx is canceled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
