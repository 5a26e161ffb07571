package report

import (
	"go-salary/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	reports := r.Group("/salary-reports")
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		reports.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)

		reports.GET("/:id/download",
			middleware.RateLimitByIP(1, 3),
			handler.Download,
		)

		reports.POST("",
			middleware.RateLimitByIP(0.2, 1),
			handler.Request,
		)
	}
}
