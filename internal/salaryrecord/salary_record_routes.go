package salaryrecord

import (
	"go-salary/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	records := r.Group("/salary-records")
	records.Use(middleware.ContextLogger(logger))
	{
		records.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		records.GET("/grand-total",
			middleware.RateLimitByIP(5, 20),
			handler.GrandTotal,
		)

		records.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)

		records.POST("",
			middleware.RateLimitByIP(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		records.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		records.DELETE("/:id",
			middleware.RateLimitByIP(0.2, 1),
			handler.Delete,
		)
	}
}
