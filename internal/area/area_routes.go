package area

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
	areas := r.Group("/areas")
	areas.Use(middleware.ContextLogger(logger))
	{
		areas.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		areas.GET("/options",
			middleware.RateLimitByIP(5, 20),
			handler.GetOptions,
		)

		areas.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)

		areas.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)

		areas.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)

		areas.DELETE("/:id",
			middleware.RateLimitByIP(0.2, 1),
			handler.Delete,
		)
	}
}
