package impl

import (
	"context"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"lensauth/config"
	deliverycontext "lensauth/internal/delivery/context"
	"lensauth/internal/domain/entity"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/repository"
	"lensauth/internal/domain/service"
	"lensauth/internal/usecase"
	"lensauth/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const placeholderNamePart = 3

// identityBootstrap implements the IdentityBootstrap interface.
type identityBootstrap struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	publisher   service.EventPublisher
	charset     string
	logger      *slog.Logger
}

// IdentityBootstrapParams holds dependencies for IdentityBootstrap, injected by Fx.
type IdentityBootstrapParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewIdentityBootstrap is the constructor for identityBootstrap.
func NewIdentityBootstrap(params IdentityBootstrapParams) usecase.IdentityBootstrap {
	charset := config.DefaultPlaceholderCharset
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PlaceholderCharset != "" {
		charset = params.Config.Auth.PlaceholderCharset
	}

	return &identityBootstrap{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		publisher:   params.Publisher,
		charset:     charset,
		logger:      params.Logger,
	}
}

func (srv *identityBootstrap) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Bootstrap returns the account registered under the profile's email, creating it on first sign-in.
// An existing account is returned unchanged; the provider's current name and picture are ignored.
func (srv *identityBootstrap) Bootstrap(ctx context.Context, profile *entity.ProviderProfile) (*entity.Account, error) {
	email := entity.NormalizeEmail(profile.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provider profile has no email")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	account, err = srv.newProviderAccount(email, profile)
	if err != nil {
		return nil, err
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if !errors.Is(err, repository.ErrAccountEmailTaken) {
			return nil, errors.Wrap(err, "failed to create account")
		}

		// A concurrent bootstrap for the same email won the insert.
		winner, findErr := srv.accountRepo.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to re-read account after duplicate email")
		}

		return winner, nil
	}

	srv.log(ctx).Info("Account bootstrapped from provider profile",
		slog.Any("accountID", account.ID),
		slog.String("provider", string(profile.Provider)),
	)
	publishAuthEvent(ctx, srv.log(ctx), srv.publisher, service.AuthEventAccountBootstrapped,
		account.ID, account.Email, map[string]string{"provider": string(profile.Provider)})

	return account, nil
}

func (srv *identityBootstrap) newProviderAccount(email string, profile *entity.ProviderProfile) (*entity.Account, error) {
	placeholder, err := placeholderPassword(profile.GivenName, profile.FamilyName, srv.charset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate placeholder password")
	}

	hash, err := srv.hasher.Hash(placeholder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash placeholder password")
	}

	fullName := profile.Name
	if fullName == "" {
		fullName = entity.ComposeFullName(profile.GivenName, profile.FamilyName)
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    profile.GivenName,
		LastName:     profile.FamilyName,
		FullName:     fullName,
		Avatar:       profile.Picture,
		IsActive:     true,
		IsAdmin:      false,
	}
	if profile.Provider == entity.ProviderGoogle {
		account.GoogleID = profile.SubjectID
	}

	return account, nil
}

// placeholderPassword builds first3(given) + first3(family) + "@" + a 3-digit number,
// padding short name parts with random characters from charset.
func placeholderPassword(givenName, familyName, charset string) (string, error) {
	first, err := padNamePart(givenName, charset)
	if err != nil {
		return "", err
	}

	last, err := padNamePart(familyName, charset)
	if err != nil {
		return "", err
	}

	number, err := util.RandomIntRange(100, 999)
	if err != nil {
		return "", err
	}

	return first + last + "@" + strconv.FormatInt(number, 10), nil
}

func padNamePart(name, charset string) (string, error) {
	part := []rune(name)
	if len(part) > placeholderNamePart {
		part = part[:placeholderNamePart]
	}

	missing := placeholderNamePart - utf8.RuneCountInString(string(part))
	padding, err := util.RandomString(charset, missing)
	if err != nil {
		return "", err
	}

	return string(part) + padding, nil
}
