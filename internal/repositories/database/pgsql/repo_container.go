package pgsql

import (
	portsrepo "github.com/fxvault/fxvault_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx repositories over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PreferenceRepo:  newPgxPreferenceRepository(dbPool),
	}
}

// Compile-time interface checks.
var (
	_ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)
	_ portsrepo.PreferenceRepositoryFacade  = (*PgxPreferenceRepository)(nil)
)
