package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sambu-farm/farm-backend-go/internal/config"
	"github.com/sambu-farm/farm-backend-go/internal/handler/http/middleware"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Factory    FactoryHandler
	Delivery   DeliveryHandler
	Advance    AdvanceHandler
	Fertilizer FertilizerHandler
	Bonus      BonusHandler
	Payroll    PayrollHandler
	Report     ReportHandler
	Import     ImportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "farm-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Get("/{id}", h.Worker.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Worker.Create)
					r.Put("/{id}", h.Worker.Update)
					r.Delete("/{id}", h.Worker.Delete)
				})
			})

			r.Route("/factories", func(r chi.Router) {
				r.Get("/", h.Factory.List)
				r.Get("/{id}", h.Factory.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Factory.Create)
					r.Post("/initialize", h.Factory.InitializeDefaults)
					r.Put("/{id}", h.Factory.Update)
					r.Delete("/{id}", h.Factory.Delete)
				})
			})

			r.Route("/deliveries", func(r chi.Router) {
				r.Get("/", h.Delivery.List)
				r.Post("/", h.Delivery.Create)
				r.Post("/price-unpriced", h.Delivery.PriceUnpriced)
				r.Get("/{id}", h.Delivery.Get)
				r.Put("/{id}", h.Delivery.Update)
				r.Delete("/{id}", h.Delivery.Delete)
				r.Post("/{id}/price", h.Delivery.Price)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", h.Advance.List)
				r.Post("/", h.Advance.Create)
				r.Get("/summary", h.Advance.Summary)
				r.Get("/{id}", h.Advance.Get)
				r.Put("/{id}", h.Advance.Update)
				r.Delete("/{id}", h.Advance.Delete)
				r.Post("/{id}/mark-deducted", h.Advance.MarkDeducted)
			})

			r.Route("/fertilizer", func(r chi.Router) {
				r.Get("/", h.Fertilizer.List)
				r.Post("/", h.Fertilizer.Create)
				r.Get("/summary", h.Fertilizer.Summary)
				r.Get("/factory/{factoryId}/summary", h.Fertilizer.FactorySummary)
				r.Get("/{id}", h.Fertilizer.Get)
				r.Put("/{id}", h.Fertilizer.Update)
				r.Delete("/{id}", h.Fertilizer.Delete)
				r.Post("/{id}/mark-paid", h.Fertilizer.MarkPaid)
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Get("/", h.Bonus.List)
				r.Post("/", h.Bonus.Create)
				r.Get("/summary", h.Bonus.Summary)
				r.Get("/period/{period}/summary", h.Bonus.PeriodSummary)
				r.Get("/factory/{factoryId}/summary", h.Bonus.FactorySummary)
				r.Get("/{id}", h.Bonus.Get)
				r.Put("/{id}", h.Bonus.Update)
				r.Delete("/{id}", h.Bonus.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/calculate", h.Payroll.Calculate)
				r.Get("/", h.Payroll.ListByPeriod)
				r.Get("/summary", h.Payroll.Summary)
				r.Get("/worker/{workerId}", h.Payroll.ListByWorker)
				r.Get("/{id}", h.Payroll.Get)
				r.Post("/{id}/mark-paid", h.Payroll.MarkPaid)
				r.Delete("/{id}", h.Payroll.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/dashboard", h.Report.Dashboard)
				r.Get("/production", h.Report.MonthlyProduction)
				r.Get("/profit", h.Report.ProfitSummary)
				r.Get("/outstanding", h.Report.OutstandingMoney)
				r.Get("/worker-activity", h.Report.WorkerActivity)
				r.Get("/payroll/excel", h.Report.ExportPayrollExcel)
				r.Get("/payroll/pdf", h.Report.ExportPayrollPDF)
			})

			r.Route("/import", func(r chi.Router) {
				r.Post("/deliveries", h.Import.ImportFieldBook)
				r.Post("/workers", h.Import.ImportWorkers)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
