package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/gst_compliance/internal/config"
)

type Server struct {
	httpServer *http.Server
}

// Services are the use cases exposed over HTTP.
type Services struct {
	FiledLogs    FiledLogService
	FiledLogRepo FiledLogsRepository
	Returns      ReturnsReconciler
	Advance      AdvanceReporter
	PDF          AdvancePDFGenerator
}

func NewServer(cfg config.HTTP, log *slog.Logger, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, services),
		},
	}
}

func NewRouter(log *slog.Logger, services Services) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	filedLogs := NewFiledLogsHandler(log, services.FiledLogs, services.FiledLogRepo)
	returns := NewReturnsHandler(log, services.Returns)
	reports := NewReportsHandler(log, services.Advance, services.PDF)
	reconciliation := NewReconciliationHandler(log)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/filed-logs/{gstin}", func(r chi.Router) {
			r.Get("/", filedLogs.GetFiledLogs)

			r.Route("/{period}", func(r chi.Router) {
				r.Get("/", filedLogs.GetFiledLog)
				r.Get("/data", filedLogs.GetData)
				r.Get("/sek", filedLogs.GetSEKValidity)
				r.Get("/files/{field}", filedLogs.GetFile)
				r.Put("/files/{field}", filedLogs.PutFile)
				r.Put("/status", filedLogs.PutStatus)
			})
		})

		r.Post("/returns/{gstin}", returns.PostReturns)
		r.Get("/reports/gst-advance-detail", reports.GetAdvanceDetail)
		r.Post("/purchase-reconciliation", reconciliation.PostReconciliation)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
