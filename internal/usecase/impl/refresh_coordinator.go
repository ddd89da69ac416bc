package impl

import (
	"context"
	"log/slog"

	deliverycontext "lensauth/internal/delivery/context"
	"lensauth/internal/domain/entity"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/repository"
	"lensauth/internal/domain/service"
	"lensauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// refreshCoordinator implements the RefreshCoordinator interface.
type refreshCoordinator struct {
	tokenService service.TokenService
	accountRepo  repository.AccountRepository
	refreshRepo  repository.RefreshCredentialRepository
	issuer       usecase.TokenIssuer
	logger       *slog.Logger
}

// RefreshCoordinatorParams holds dependencies for RefreshCoordinator, injected by Fx.
type RefreshCoordinatorParams struct {
	fx.In

	TokenService service.TokenService
	AccountRepo  repository.AccountRepository
	RefreshRepo  repository.RefreshCredentialRepository
	Issuer       usecase.TokenIssuer
	Logger       *slog.Logger
}

// NewRefreshCoordinator is the constructor for refreshCoordinator.
func NewRefreshCoordinator(params RefreshCoordinatorParams) usecase.RefreshCoordinator {
	return &refreshCoordinator{
		tokenService: params.TokenService,
		accountRepo:  params.AccountRepo,
		refreshRepo:  params.RefreshRepo,
		issuer:       params.Issuer,
		logger:       params.Logger,
	}
}

func (srv *refreshCoordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh validates the presented token against its stored record and rotates it.
// Storage calls ignore cancellation so a client disconnect cannot leave a half-finished rotation.
func (srv *refreshCoordinator) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	ctx = context.WithoutCancel(ctx)

	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	tokenHash := srv.tokenService.HashToken(refreshToken)

	if _, err := srv.refreshRepo.FindByTokenHash(ctx, tokenHash); err != nil {
		switch {
		case errors.Is(err, repository.ErrRefreshCredentialNotFound):
			return nil, srv.unknownHash(ctx, refreshToken)
		case errors.Is(err, repository.ErrRefreshCredentialExpired):
			return nil, domainerrors.ErrRefreshTokenExpired
		default:
			return nil, errors.Wrap(err, "failed to look up refresh credential")
		}
	}

	claims, err := srv.tokenService.Verify(entity.TokenKindRefresh, refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrRefreshTokenExpired
		}
		srv.log(ctx).Warn("Stored refresh token failed verification", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountMissing
		}

		return nil, errors.Wrap(err, "failed to load account")
	}
	if !account.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	current, err := srv.refreshRepo.FindByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshCredentialNotFound) || errors.Is(err, repository.ErrRefreshCredentialExpired) {
			return nil, domainerrors.ErrRefreshTokenRevoked
		}

		return nil, errors.Wrap(err, "failed to load current refresh credential")
	}
	if current.TokenHash != tokenHash || current.Blacklisted {
		srv.log(ctx).Info("Refresh token revoked",
			slog.Any("accountID", account.ID),
			slog.Bool("blacklisted", current.Blacklisted),
		)

		return nil, domainerrors.ErrRefreshTokenRevoked
	}

	return srv.issuer.Rotate(ctx, account, tokenHash)
}

// unknownHash separates a superseded token this service signed from one it never issued.
func (srv *refreshCoordinator) unknownHash(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.Verify(entity.TokenKindRefresh, refreshToken)
	if err != nil {
		return domainerrors.ErrRefreshTokenInvalid
	}

	srv.log(ctx).Info("Superseded refresh token presented", slog.Any("accountID", claims.AccountID))

	return domainerrors.ErrRefreshTokenRevoked
}
