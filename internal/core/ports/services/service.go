package services

// ServiceContainer holds all service facades for dependency injection into
// the HTTP layer.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Preference  PreferenceSvcFacade
	Currency    CurrencySvcFacade
	Rates       RateResolverSvc
}
