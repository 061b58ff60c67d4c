package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"expenses/internal/core"
	"expenses/internal/metrics"
	"expenses/internal/middleware/ratelimit"
	"expenses/internal/middleware/security"
	"expenses/internal/middleware/trace"
	appweb "expenses/web"
)

// maxBodyBytes caps request bodies accepted by the JSON API.
const maxBodyBytes = 1 << 20

// ExpenseService is the part of services.ExpenseService the handlers use.
type ExpenseService interface {
	Create(ctx context.Context, in core.ExpenseInput) (core.Expense, error)
	List(ctx context.Context) ([]core.Expense, error)
	Get(ctx context.Context, id int64) (core.Expense, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// StatsService computes the statistics document.
type StatsService interface {
	Statistics(ctx context.Context) (core.Statistics, error)
}

// Options carries the collaborators of a Server.
type Options struct {
	Expenses ExpenseService
	Stats    StatsService
	Metrics  *metrics.Metrics // optional
	Logger   *slog.Logger     // optional, defaults to slog.Default()

	RateLimitPerMinute int
}

type Server struct {
	http.Server
	templates   *template.Template
	expenses    ExpenseService
	stats       StatsService
	metrics     *metrics.Metrics
	rateLimiter *ratelimit.Limiter
	detector    *security.Detector
	logger      *slog.Logger

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		expenses: opts.Expenses,
		stats:    opts.Stats,
		metrics:  opts.Metrics,
		logger:   logger,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RateLimitPerMinute,
		}),
	}

	var onSuspicious func()
	if s.metrics != nil {
		onSuspicious = s.metrics.SuspiciousRequest
	}
	s.detector = security.NewDetector(onSuspicious)

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		logger.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	mux := http.NewServeMux()

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		logger.Warn("Failed to mount embedded static FS", "error", err)
	}

	limited := s.rateLimiter.Middleware(s.detector.ExtractClientIP, s.handleRateLimited)

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.Handle("POST /api/expenses", limited(http.HandlerFunc(s.handleCreateExpense)))
	mux.HandleFunc("GET /api/expenses/{id}", s.handleGetExpense)
	mux.Handle("DELETE /api/expenses/{id}", limited(http.HandlerFunc(s.handleDeleteExpense)))
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/statistics", s.handleStatistics)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	var recorder trace.Recorder
	if s.metrics != nil {
		recorder = s.metrics
	}
	tracer := trace.NewMiddleware(logger, s.detector.ExtractClientIP, recorder)
	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())

	// trace must see the same *http.Request the mux routes so it can read
	// the matched pattern afterwards.
	s.Server = http.Server{
		Addr:              addr,
		Handler:           tracer.Middleware(headers.Middleware(s.detector.Middleware(mux))),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// Shutdown gracefully shuts down the server and its background routines
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) handleRateLimited(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RateLimited()
	}
	s.logger.WarnContext(r.Context(), "Rate limit exceeded",
		"client_ip", s.detector.ExtractClientIP(r),
		"method", r.Method,
		"path", r.URL.Path)
	writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
}
