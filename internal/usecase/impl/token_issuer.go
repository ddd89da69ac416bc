// Package impl contains the implementation of the application's business logic.
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

// tokenIssuer implements the TokenIssuer interface.
type tokenIssuer struct {
	tokenService service.TokenService
	refreshRepo  repository.RefreshCredentialRepository
	logger       *slog.Logger
}

// TokenIssuerParams holds dependencies for TokenIssuer, injected by Fx.
type TokenIssuerParams struct {
	fx.In

	TokenService service.TokenService
	RefreshRepo  repository.RefreshCredentialRepository
	Logger       *slog.Logger
}

// NewTokenIssuer is the constructor for tokenIssuer.
func NewTokenIssuer(params TokenIssuerParams) usecase.TokenIssuer {
	return &tokenIssuer{
		tokenService: params.TokenService,
		refreshRepo:  params.RefreshRepo,
		logger:       params.Logger,
	}
}

func (srv *tokenIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tokenIssuer) Issue(ctx context.Context, account *entity.Account) (*entity.TokenPair, error) {
	pair, record, err := srv.mint(account)
	if err != nil {
		return nil, err
	}

	if err := srv.refreshRepo.Replace(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to store refresh credential", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh credential")
	}

	srv.log(ctx).Debug("Token pair issued", slog.Any("accountID", account.ID))

	return pair, nil
}

func (srv *tokenIssuer) Rotate(ctx context.Context, account *entity.Account, previousHash string) (*entity.TokenPair, error) {
	pair, record, err := srv.mint(account)
	if err != nil {
		return nil, err
	}

	if err := srv.refreshRepo.Rotate(ctx, previousHash, record); err != nil {
		if errors.Is(err, repository.ErrRefreshCredentialConflict) {
			srv.log(ctx).Info("Refresh rotation lost to a concurrent writer", slog.Any("accountID", account.ID))

			return nil, domainerrors.ErrRefreshTokenRevoked.WrapMessage("refresh credential already rotated")
		}
		srv.log(ctx).Error("Failed to rotate refresh credential", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to rotate refresh credential")
	}

	srv.log(ctx).Debug("Token pair rotated", slog.Any("accountID", account.ID))

	return pair, nil
}

// mint signs both tokens and builds the record that makes the refresh token usable.
func (srv *tokenIssuer) mint(account *entity.Account) (*entity.TokenPair, *entity.RefreshCredential, error) {
	identity := account.Identity()

	access, err := srv.tokenService.Sign(entity.TokenKindAccess, identity)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to sign access token")
	}

	refresh, err := srv.tokenService.Sign(entity.TokenKindRefresh, identity)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to sign refresh token")
	}

	record := &entity.RefreshCredential{
		AccountID: account.ID,
		TokenHash: srv.tokenService.HashToken(refresh.Value),
		CreatedAt: refresh.ExpiresAt.Add(-srv.tokenService.TTL(entity.TokenKindRefresh)),
		ExpiresAt: refresh.ExpiresAt,
	}

	pair := &entity.TokenPair{
		AccessToken:      access.Value,
		RefreshToken:     refresh.Value,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshExpiresAt: refresh.ExpiresAt,
	}

	return pair, record, nil
}
