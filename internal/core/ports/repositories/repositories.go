package repositories

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	ExchangeRateRepo ExchangeRateRepository
	UserRepo         UserRepository
}
