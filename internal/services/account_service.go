package services

import (
	"context"
	"time"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/repositories"
	mem "wander/pkg/memcache"
	"wander/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)

	// RequestPasswordReset issues a single-use token for the account's
	// email. The token is returned to the caller; there is no outbound
	// mail in this service.
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens mem.ResetTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, resetTokens mem.ResetTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	return token, nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
