package app

import (
	"database/sql"

	"go-salary/internal/area"
	"go-salary/internal/config"
	"go-salary/internal/employee"
	"go-salary/internal/messaging/kafka"
	"go-salary/internal/middleware"
	"go-salary/internal/rate"
	"go-salary/internal/report"
	"go-salary/internal/salaryrecord"
	"go-salary/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	areaRepo := area.NewRepository(gormDB)
	rateRepo := rate.NewRepository(gormDB)
	salaryRecordRepo := salaryrecord.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, rdb)
	areaService := area.NewService(db, areaRepo, rdb)
	rateService := rate.NewService(db, rateRepo)
	salaryRecordService := salaryrecord.NewService(db, salaryRecordRepo, counterRepo)
	reportService := report.NewService(db, reportRepo, counterRepo, outboxRepo, cfg.ReportDir)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	areaHandler := area.NewHandler(areaService)
	rateHandler := rate.NewHandler(rateService)
	salaryRecordHandler := salaryrecord.NewHandlerWithRedis(salaryRecordService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		area.RegisterRoutes(api, areaHandler, logger)
		rate.RegisterRoutes(api, rateHandler, logger)
		salaryrecord.RegisterRoutes(api, salaryRecordHandler, rdb, logger)
		report.RegisterRoutes(api, reportHandler, logger)
	}

	return nil
}
