package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/repositories"
	"wander/internal/services"
	mem "wander/pkg/memcache"
)

var Module = fx.Provide(provideAccountRepo, provideResetTokens, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens)
}
