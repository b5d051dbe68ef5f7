package services

// ServiceContainer holds instances of all the application services.
// Handlers depend on this rather than on concrete service types.
type ServiceContainer struct {
	Rate       RateSvcFacade
	Conversion ConversionSvc
	User       UserSvcFacade
}
