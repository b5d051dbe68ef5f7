package handlers

import (
	"github.com/ais-aviation/currency-service/cmd/docs"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	portssvc "github.com/ais-aviation/currency-service/internal/core/ports/services"
	"github.com/ais-aviation/currency-service/internal/middleware"
	"github.com/ais-aviation/currency-service/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCurrencyValidator()

	r.GET("/health", Health(cfg.ServiceName))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(r, cfg, services.User)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerCurrencyValidator adds the "currency" binding tag, checking the
// closed set of supported codes.
func registerCurrencyValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			return domain.IsSupportedCurrency(fl.Field().String())
		})
	}
}

// setupAPIV1Routes configures the /api/v1 group. Rate reads and conversion
// are public (the booking UI calls them before login); the refresh operation
// requires an admin JWT.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	registerRateRoutes(v1, services.Rate, services.Conversion,
		middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin())
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
