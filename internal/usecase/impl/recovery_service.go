package impl

import (
	"context"
	"log/slog"
	"time"

	"lensauth/config"
	deliverycontext "lensauth/internal/delivery/context"
	"lensauth/internal/domain/entity"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/repository"
	"lensauth/internal/domain/service"
	"lensauth/internal/usecase"
	"lensauth/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recoveryCodeLength = 6

// recoveryService implements the RecoveryUsecase interface.
type recoveryService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	recoveryRepo repository.RecoveryRepository
	hasher       service.PasswordHasher
	publisher    service.EventPublisher
	codeTTL      time.Duration
	sessionTTL   time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// RecoveryServiceParams holds dependencies for RecoveryService, injected by Fx.
type RecoveryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	RecoveryRepo repository.RecoveryRepository
	Hasher       service.PasswordHasher
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRecoveryService is the constructor for recoveryService.
func NewRecoveryService(params RecoveryServiceParams) usecase.RecoveryUsecase {
	codeTTL, sessionTTL := 10*time.Minute, 15*time.Minute
	if params.Config != nil && params.Config.Recovery != nil {
		if params.Config.Recovery.CodeTTL > 0 {
			codeTTL = params.Config.Recovery.CodeTTL
		}
		if params.Config.Recovery.SessionTTL > 0 {
			sessionTTL = params.Config.Recovery.SessionTTL
		}
	}

	return &recoveryService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		recoveryRepo: params.RecoveryRepo,
		hasher:       params.Hasher,
		publisher:    params.Publisher,
		codeTTL:      codeTTL,
		sessionTTL:   sessionTTL,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *recoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestCode issues a one-time code, replacing any code the account already had.
// The code leaves the service only through the recovery.code_issued event.
func (srv *recoveryService) RequestCode(ctx context.Context, email string) (*usecase.RecoveryCodeOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidEmail
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	code, err := util.RandomDigits(recoveryCodeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate recovery code")
	}

	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash recovery code")
	}

	now := srv.now()
	if err := srv.recoveryRepo.UpsertCode(ctx, &entity.RecoveryCode{
		AccountID: account.ID,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(srv.codeTTL),
		CreatedAt: now,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store recovery code")
	}

	srv.log(ctx).Info("Recovery code issued", slog.Any("accountID", account.ID))
	publishAuthEvent(ctx, srv.log(ctx), srv.publisher, service.AuthEventRecoveryCodeIssued, account.ID, account.Email,
		map[string]string{
			"code":      code,
			"fullName":  account.FullName,
			"expiresIn": util.FormatDuration(srv.codeTTL),
		})

	return &usecase.RecoveryCodeOutput{AccountID: account.ID}, nil
}

// VerifyCode consumes a valid code and opens a reset session.
func (srv *recoveryService) VerifyCode(ctx context.Context, accountID uuid.UUID, code string) (*usecase.VerifyCodeOutput, error) {
	var session *entity.RecoverySession

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recoveryRepo := repoFactory.NewRecoveryRepository()

		stored, err := recoveryRepo.FindCode(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrRecoveryCodeNotFound) {
				return domainerrors.ErrInvalidOTP
			}

			return errors.Wrap(err, "failed to load recovery code")
		}

		now := srv.now()
		if !now.Before(stored.ExpiresAt) || !srv.hasher.Check(code, stored.CodeHash) {
			return domainerrors.ErrInvalidOTP
		}

		if err := recoveryRepo.DeleteCode(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to consume recovery code")
		}

		session = &entity.RecoverySession{
			ID:        uuid.New(),
			AccountID: accountID,
			ExpiresAt: now.Add(srv.sessionTTL),
			CreatedAt: now,
		}
		if err := recoveryRepo.CreateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create reset session")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Recovery code verified", slog.Any("accountID", accountID))

	return &usecase.VerifyCodeOutput{SessionID: session.ID, AccountID: accountID}, nil
}

func (srv *recoveryService) ValidateSession(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	session, err := srv.recoveryRepo.FindSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrRecoverySessionNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to load reset session")
	}

	return !session.IsExpired(srv.now()), nil
}

func (srv *recoveryService) InvalidateSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.recoveryRepo.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrRecoverySessionNotFound) {
			return domainerrors.ErrRecoverySessionNotFound
		}

		return errors.Wrap(err, "failed to delete reset session")
	}

	return nil
}

// ResetPassword sets the new password, closes the reset session and ends the account's
// refresh session, all in one transaction.
func (srv *recoveryService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recoveryRepo := repoFactory.NewRecoveryRepository()
		accountRepo := repoFactory.NewAccountRepository()

		session, err := recoveryRepo.FindSession(ctx, input.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrRecoverySessionNotFound) {
				return domainerrors.ErrRecoverySessionInvalid
			}

			return errors.Wrap(err, "failed to load reset session")
		}
		if session.IsExpired(srv.now()) {
			return domainerrors.ErrRecoverySessionInvalid
		}

		account, err = accountRepo.FindByID(ctx, session.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrRecoverySessionInvalid
			}

			return errors.Wrap(err, "failed to load account")
		}

		account.PasswordHash = hash
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := recoveryRepo.DeleteSession(ctx, session.ID); err != nil {
			return errors.Wrap(err, "failed to close reset session")
		}

		if err := repoFactory.NewRefreshCredentialRepository().DeleteByAccountID(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to end refresh session")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset", slog.Any("accountID", account.ID))
	publishAuthEvent(ctx, srv.log(ctx), srv.publisher, service.AuthEventPasswordReset, account.ID, account.Email, nil)

	return nil
}
