package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sambu-farm/farm-backend-go/internal/config"
	appHTTP "github.com/sambu-farm/farm-backend-go/internal/handler/http"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/cron"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/jwt"
	"github.com/sambu-farm/farm-backend-go/internal/repository/postgresql"
	advanceService "github.com/sambu-farm/farm-backend-go/internal/service/advance"
	authService "github.com/sambu-farm/farm-backend-go/internal/service/auth"
	bonusService "github.com/sambu-farm/farm-backend-go/internal/service/bonus"
	deliveryService "github.com/sambu-farm/farm-backend-go/internal/service/delivery"
	factoryService "github.com/sambu-farm/farm-backend-go/internal/service/factory"
	fertilizerService "github.com/sambu-farm/farm-backend-go/internal/service/fertilizer"
	importerService "github.com/sambu-farm/farm-backend-go/internal/service/importer"
	payrollService "github.com/sambu-farm/farm-backend-go/internal/service/payroll"
	reportService "github.com/sambu-farm/farm-backend-go/internal/service/report"
	workerService "github.com/sambu-farm/farm-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	factoryRepo := postgresql.NewFactoryRepository(db)
	deliveryRepo := postgresql.NewDeliveryRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	fertilizerRepo := postgresql.NewFertilizerRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	factorySvc := factoryService.NewFactoryService(db, factoryRepo, cfg.Pay.TransportDeductionPerKg)
	deliverySvc := deliveryService.NewDeliveryService(db, deliveryRepo, workerRepo, factoryRepo, cfg.Pay.WorkerRatePerKg)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, workerRepo)
	fertilizerSvc := fertilizerService.NewObligationService(fertilizerRepo, factoryRepo, workerRepo, cfg.Pay.FertilizerCostPerBag)
	bonusSvc := bonusService.NewReceiptService(bonusRepo, factoryRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, workerRepo, deliveryRepo, advanceRepo, fertilizerRepo)
	reportSvc := reportService.NewReportService(reportRepo, payrollRepo)
	importSvc := importerService.NewImportService(db, workerRepo, factoryRepo, deliveryRepo, advanceRepo, cfg.Pay.WorkerRatePerKg)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Factory:    appHTTP.NewFactoryHandler(factorySvc),
		Delivery:   appHTTP.NewDeliveryHandler(deliverySvc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
		Fertilizer: appHTTP.NewFertilizerHandler(fertilizerSvc),
		Bonus:      appHTTP.NewBonusHandler(bonusSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Import:     appHTTP.NewImportHandler(importSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	var scheduler *cron.Scheduler
	if cfg.App.PayrollCron {
		scheduler = cron.NewScheduler()
		cron.NewPayrollJobs(payrollSvc).Register(scheduler)
		scheduler.Start()
	}

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
