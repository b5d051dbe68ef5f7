package services

import (
	"github.com/ais-aviation/currency-service/internal/core/ports"
	portsrepo "github.com/ais-aviation/currency-service/internal/core/ports/repositories"
	portssvc "github.com/ais-aviation/currency-service/internal/core/ports/services"
	"github.com/ais-aviation/currency-service/pkg/config"
)

// NewServiceContainer creates a service container with initialized dependencies.
// cache may be nil when Redis is not configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, source ports.RateSource, cache ports.RateCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	rateService := NewRateService(repos.ExchangeRateRepo, source, cache)
	container.Rate = rateService
	container.Conversion = NewConversionService(rateService)
	container.User = NewUserService(repos.UserRepo, cfg.OwnerEmail)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.RateSvcFacade = (*RateService)(nil)
	_ portssvc.ConversionSvc = (*ConversionService)(nil)
	_ portssvc.UserSvcFacade = (*UserService)(nil)
)
