package rate

import (
	"go-salary/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	rates := r.Group("/rates")
	rates.Use(middleware.ContextLogger(logger))
	{
		rates.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		rates.GET("/resolve",
			middleware.RateLimitByIP(5, 20),
			handler.Resolve,
		)

		rates.PUT("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Upsert,
		)
	}
}
