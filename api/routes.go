package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-dashboard/internal/auth"
	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/account"
	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/category"
	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/status"
	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/summary"
	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-dashboard/internal/logging"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	DB       status.Pinger
	Service  *service.Service
	Verifier auth.TokenVerifier
	Location *time.Location
}

// Router builds the chi router with the Huma API mounted on it. Everything
// except /status and the OpenAPI documents requires a bearer token.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(r.DB)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Finance Dashboard API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	config.Security = []map[string][]string{{"bearer": {}}}

	api := humachi.New(router, config)
	api.UseMiddleware(logging.Middleware(r.Logger))

	authed := huma.NewGroup(api)
	authed.UseMiddleware(auth.Middleware(api, r.Verifier, r.Logger))

	transaction.Register(authed, r.Service.Transaction, r.Location)
	account.Register(authed, r.Service.Account)
	category.Register(authed, r.Service.Category)
	summary.Register(authed, r.Service.Summary)

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
