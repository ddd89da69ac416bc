package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lensauth/internal/delivery/context"
	"lensauth/internal/domain/entity"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/repository"
	"lensauth/internal/domain/service"
	"lensauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	refreshRepo  repository.RefreshCredentialRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	provider     service.IdentityProvider
	publisher    service.EventPublisher
	issuer       usecase.TokenIssuer
	bootstrap    usecase.IdentityBootstrap
	now          func() time.Time
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	RefreshRepo  repository.RefreshCredentialRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Provider     service.IdentityProvider `optional:"true"`
	Publisher    service.EventPublisher
	Issuer       usecase.TokenIssuer
	Bootstrap    usecase.IdentityBootstrap
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		refreshRepo:  params.RefreshRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		provider:     params.Provider,
		publisher:    params.Publisher,
		issuer:       params.Issuer,
		bootstrap:    params.Bootstrap,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a password account.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        entity.NormalizeEmail(input.Email),
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		FullName:     entity.ComposeFullName(input.FirstName, input.LastName),
		IsActive:     true,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.Any("accountID", account.ID))
	publishAuthEvent(ctx, srv.log(ctx), srv.publisher, service.AuthEventAccountRegistered, account.ID, account.Email, nil)

	return account, nil
}

// Login checks the password and issues a fresh pair, replacing any previous session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login rejected: wrong password", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.signIn(ctx, account)
}

// LoginWithProvider completes the provider's code exchange, bootstraps the account and signs it in.
func (srv *accountService) LoginWithProvider(ctx context.Context, code string) (*usecase.LoginOutput, error) {
	if srv.provider == nil {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("identity provider is not configured")
	}
	if code == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid
	}

	profile, err := srv.provider.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Provider code exchange failed", slog.String("provider", string(srv.provider.Provider())), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	account, err := srv.bootstrap.Bootstrap(ctx, profile)
	if err != nil {
		return nil, err
	}

	return srv.signIn(ctx, account)
}

func (srv *accountService) signIn(ctx context.Context, account *entity.Account) (*usecase.LoginOutput, error) {
	if !account.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	tokens, err := srv.issuer.Issue(ctx, account)
	if err != nil {
		return nil, err
	}

	loginAt := srv.now()
	account.LastLoginAt = &loginAt
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to record login time", slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Account signed in", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: account, Tokens: tokens}, nil
}

// Logout blacklists the record the refresh token points at, keeping it for audit.
func (srv *accountService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	ctx = context.WithoutCancel(ctx)
	tokenHash := srv.tokenService.HashToken(refreshToken)

	record, err := srv.refreshRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshCredentialNotFound) || errors.Is(err, repository.ErrRefreshCredentialExpired) {
			return nil
		}

		return errors.Wrap(err, "failed to look up refresh credential")
	}

	if err := srv.refreshRepo.Blacklist(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshCredentialNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to blacklist refresh credential")
	}

	srv.log(ctx).Info("Session revoked", slog.Any("accountID", record.AccountID))
	publishAuthEvent(ctx, srv.log(ctx), srv.publisher, service.AuthEventSessionRevoked, record.AccountID, "", nil)

	return nil
}

func (srv *accountService) Exists(ctx context.Context, email string) (bool, error) {
	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrAccountNotFound) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to find account by email")
}

// CurrentAccount reloads the account behind the token; the claims are only a snapshot.
func (srv *accountService) CurrentAccount(ctx context.Context, identity *entity.Identity) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, identity.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountMissing
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

func (srv *accountService) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return account, nil
}

func (srv *accountService) UpdateProfile(ctx context.Context, identity *entity.Identity, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	account, err := srv.CurrentAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	account.FirstName = input.FirstName
	account.LastName = input.LastName
	account.FullName = entity.ComposeFullName(input.FirstName, input.LastName)
	account.PhoneNo = input.PhoneNo
	account.Avatar = input.Avatar

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountMissing
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("accountID", account.ID))

	return account, nil
}

func (srv *accountService) ListAccounts(ctx context.Context, identity *entity.Identity, limit, offset int) ([]*entity.Account, error) {
	if !identity.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset = max(offset, 0)

	accounts, err := srv.accountRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}
