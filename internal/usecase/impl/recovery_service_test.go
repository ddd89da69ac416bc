package impl

import (
	"context"
	"testing"
	"time"

	"lensauth/internal/domain/entity"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/repository"
	"lensauth/internal/domain/service"
	mockRepo "lensauth/internal/mocks/repository"
	mockSvc "lensauth/internal/mocks/service"
	"lensauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// issuedCode returns the code carried by the most recent recovery.code_issued event.
func (h *harness) issuedCode(t *testing.T) string {
	t.Helper()

	events := h.events.ofType(service.AuthEventRecoveryCodeIssued)
	require.NotEmpty(t, events)

	return events[len(events)-1].Attributes["code"]
}

func TestRecoveryService_FullReset(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	account := h.seedAccount(t, "ada@example.com", "Str0ngPass")

	login, err := h.accounts.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)

	requested, err := h.recoveryUC.RequestCode(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, requested.AccountID)

	code := h.issuedCode(t)
	assert.Regexp(t, `^[0-9]{6}$`, code)
	event := h.events.ofType(service.AuthEventRecoveryCodeIssued)[0]
	assert.Equal(t, "Test User", event.Attributes["fullName"])
	assert.Equal(t, "10m0s", event.Attributes["expiresIn"])

	stored, err := h.recovery.FindCode(ctx, account.ID)
	require.NoError(t, err)
	assert.NotEqual(t, code, stored.CodeHash)

	verified, err := h.recoveryUC.VerifyCode(ctx, account.ID, code)
	require.NoError(t, err)
	assert.Equal(t, account.ID, verified.AccountID)

	valid, err := h.recoveryUC.ValidateSession(ctx, verified.SessionID)
	require.NoError(t, err)
	assert.True(t, valid)

	err = h.recoveryUC.ResetPassword(ctx, &usecase.ResetPasswordInput{
		SessionID:       verified.SessionID,
		Password:        "N3wPassword",
		ConfirmPassword: "N3wPassword",
	})
	require.NoError(t, err)

	_, err = h.accounts.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "Str0ngPass"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	valid, err = h.recoveryUC.ValidateSession(ctx, verified.SessionID)
	require.NoError(t, err)
	assert.False(t, valid)

	// The refresh session that predates the reset is gone.
	_, err = h.refreshRepo.FindByAccountID(ctx, account.ID)
	assert.ErrorIs(t, err, repository.ErrRefreshCredentialNotFound)
	_, err = h.coordinator.Refresh(ctx, login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenRevoked)

	_, err = h.accounts.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "N3wPassword"})
	require.NoError(t, err)
	assert.Len(t, h.events.ofType(service.AuthEventPasswordReset), 1)
}

func TestRecoveryService_RequestCode_UnknownEmail(t *testing.T) {
	h := newHarness(t)

	_, err := h.recoveryUC.RequestCode(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	assert.Empty(t, h.events.ofType(service.AuthEventRecoveryCodeIssued))
}

func TestRecoveryService_VerifyCode(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong code keeps the real one usable", func(t *testing.T) {
		h := newHarness(t)
		account := h.seedAccount(t, "ada@example.com", "Str0ngPass")
		_, err := h.recoveryUC.RequestCode(ctx, "ada@example.com")
		require.NoError(t, err)
		code := h.issuedCode(t)

		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}
		_, err = h.recoveryUC.VerifyCode(ctx, account.ID, wrong)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)

		_, err = h.recoveryUC.VerifyCode(ctx, account.ID, code)
		assert.NoError(t, err)
	})

	t.Run("codes are single use", func(t *testing.T) {
		h := newHarness(t)
		account := h.seedAccount(t, "ada@example.com", "Str0ngPass")
		_, err := h.recoveryUC.RequestCode(ctx, "ada@example.com")
		require.NoError(t, err)
		code := h.issuedCode(t)

		_, err = h.recoveryUC.VerifyCode(ctx, account.ID, code)
		require.NoError(t, err)

		_, err = h.recoveryUC.VerifyCode(ctx, account.ID, code)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	})

	t.Run("expired code", func(t *testing.T) {
		h := newHarness(t)
		account := h.seedAccount(t, "ada@example.com", "Str0ngPass")
		_, err := h.recoveryUC.RequestCode(ctx, "ada@example.com")
		require.NoError(t, err)
		code := h.issuedCode(t)

		h.clock.Advance(10 * time.Minute)

		_, err = h.recoveryUC.VerifyCode(ctx, account.ID, code)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	})

	t.Run("a new request replaces the previous code", func(t *testing.T) {
		h := newHarness(t)
		account := h.seedAccount(t, "ada@example.com", "Str0ngPass")
		_, err := h.recoveryUC.RequestCode(ctx, "ada@example.com")
		require.NoError(t, err)
		first := h.issuedCode(t)

		_, err = h.recoveryUC.RequestCode(ctx, "ada@example.com")
		require.NoError(t, err)
		second := h.issuedCode(t)
		if first == second {
			t.Skip("both draws produced the same code")
		}

		_, err = h.recoveryUC.VerifyCode(ctx, account.ID, first)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)

		_, err = h.recoveryUC.VerifyCode(ctx, account.ID, second)
		assert.NoError(t, err)
	})

	t.Run("no code requested", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.recoveryUC.VerifyCode(ctx, uuid.New(), "123456")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	})
}

func TestRecoveryService_Sessions(t *testing.T) {
	ctx := context.Background()

	openSession := func(t *testing.T, h *harness) *usecase.VerifyCodeOutput {
		t.Helper()

		account := h.seedAccount(t, "ada@example.com", "Str0ngPass")
		_, err := h.recoveryUC.RequestCode(ctx, "ada@example.com")
		require.NoError(t, err)

		out, err := h.recoveryUC.VerifyCode(ctx, account.ID, h.issuedCode(t))
		require.NoError(t, err)

		return out
	}

	t.Run("expired session cannot reset", func(t *testing.T) {
		h := newHarness(t)
		session := openSession(t, h)

		h.clock.Advance(16 * time.Minute)

		valid, err := h.recoveryUC.ValidateSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.False(t, valid)

		err = h.recoveryUC.ResetPassword(ctx, &usecase.ResetPasswordInput{
			SessionID:       session.SessionID,
			Password:        "N3wPassword",
			ConfirmPassword: "N3wPassword",
		})
		assert.ErrorIs(t, err, domainerrors.ErrRecoverySessionInvalid)
	})

	t.Run("invalidated session", func(t *testing.T) {
		h := newHarness(t)
		session := openSession(t, h)

		require.NoError(t, h.recoveryUC.InvalidateSession(ctx, session.SessionID))

		err := h.recoveryUC.InvalidateSession(ctx, session.SessionID)
		assert.ErrorIs(t, err, domainerrors.ErrRecoverySessionNotFound)

		valid, err := h.recoveryUC.ValidateSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("unknown session", func(t *testing.T) {
		h := newHarness(t)

		valid, err := h.recoveryUC.ValidateSession(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, valid)

		err = h.recoveryUC.ResetPassword(ctx, &usecase.ResetPasswordInput{
			SessionID:       uuid.New(),
			Password:        "N3wPassword",
			ConfirmPassword: "N3wPassword",
		})
		assert.ErrorIs(t, err, domainerrors.ErrRecoverySessionInvalid)
	})

	t.Run("password checks run before the session is touched", func(t *testing.T) {
		h := newHarness(t)
		session := openSession(t, h)

		err := h.recoveryUC.ResetPassword(ctx, &usecase.ResetPasswordInput{
			SessionID:       session.SessionID,
			Password:        "N3wPassword",
			ConfirmPassword: "N3wPassw0rd",
		})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)

		err = h.recoveryUC.ResetPassword(ctx, &usecase.ResetPasswordInput{
			SessionID:       session.SessionID,
			Password:        "weak",
			ConfirmPassword: "weak",
		})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

		valid, err := h.recoveryUC.ValidateSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.True(t, valid)
	})
}

func TestRecoveryService_ResetPassword_Transaction(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewRecoveryService(RecoveryServiceParams{
		TxManager:    txManager,
		AccountRepo:  mockRepo.NewMockAccountRepository(t),
		RecoveryRepo: mockRepo.NewMockRecoveryRepository(t),
		Hasher:       hasher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	account := newTestAccount()
	sessionID := uuid.New()
	now := time.Now()

	hasher.EXPECT().ValidatePasswordStrength("N3wPassword").Return(nil)
	hasher.EXPECT().Hash("N3wPassword").Return("$2a$04$newhash", nil)

	t.Run("refresh cleanup failure aborts the reset", func(t *testing.T) {
		txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				txAccounts := mockRepo.NewMockAccountRepository(t)
				txRecovery := mockRepo.NewMockRecoveryRepository(t)
				txRefresh := mockRepo.NewMockRefreshCredentialRepository(t)

				factory.EXPECT().NewAccountRepository().Return(txAccounts)
				factory.EXPECT().NewRecoveryRepository().Return(txRecovery)
				factory.EXPECT().NewRefreshCredentialRepository().Return(txRefresh)

				txRecovery.EXPECT().FindSession(ctx, sessionID).Return(&entity.RecoverySession{
					ID:        sessionID,
					AccountID: account.ID,
					ExpiresAt: now.Add(time.Hour),
				}, nil)
				txAccounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
				txAccounts.EXPECT().Update(ctx, mock.MatchedBy(func(a *entity.Account) bool {
					return a.PasswordHash == "$2a$04$newhash"
				})).Return(nil)
				txRecovery.EXPECT().DeleteSession(ctx, sessionID).Return(nil)
				txRefresh.EXPECT().DeleteByAccountID(ctx, account.ID).
					Return(domainerrors.NewDatabaseExecuteError(errors.New("redis down"), "refresh.delete"))

				return fn(factory)
			})

		err := srv.ResetPassword(ctx, &usecase.ResetPasswordInput{
			SessionID:       sessionID,
			Password:        "N3wPassword",
			ConfirmPassword: "N3wPassword",
		})
		require.Error(t, err)
		assert.True(t, domainerrors.IsStorageError(err))
	})
}
