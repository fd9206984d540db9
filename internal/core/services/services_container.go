package services

import (
	"time"

	"github.com/fxvault/fxvault_backend/internal/core/ports/providers"
	portsrepo "github.com/fxvault/fxvault_backend/internal/core/ports/repositories"
	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
	"github.com/fxvault/fxvault_backend/internal/platform/metrics"
)

// NewServiceContainer wires the core services with their dependencies.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	cache providers.RateCache,
	provider providers.RateProvider,
	catalog providers.CurrencyCatalog,
	baseCurrency string,
	rateCacheTTL time.Duration,
	m *metrics.ConversionMetrics,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Rates = NewRateService(cache, provider, baseCurrency, rateCacheTTL)
	container.Currency = NewCurrencyService(container.Rates)
	container.Preference = NewPreferenceService(repos.PreferenceRepo, catalog)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Preference, container.Rates, m)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.PreferenceSvcFacade  = (*PreferenceService)(nil)
	_ portssvc.CurrencySvcFacade    = (*CurrencyService)(nil)
	_ portssvc.RateResolverSvc      = (*RateService)(nil)
)
