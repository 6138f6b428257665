// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("type", input.Type))

	profileType := entity.ProfileType(input.Type)
	if !profileType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidProfileType, "registration rejected")
	}

	if input.Password != input.RepeatedPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "registration rejected")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := buildNewUserEntity(input, hashedPassword, profileType)

	var accessToken, refreshTokenString string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		usernameTaken, err := userRepo.ExistsByUsername(ctx, newUser.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username availability")
		}
		if usernameTaken {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "registration rejected")
		}

		emailTaken, err := userRepo.ExistsByEmail(ctx, newUser.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if emailTaken {
			return errors.Wrap(domainerrors.ErrEmailTaken, "registration rejected")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(newUser.ID, profileType)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens during registration")
		}

		return srv.storeRefreshToken(ctx, repoFactory.RefreshTokenRepo(), newUser.ID, refreshTokenString)
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID), slog.String("type", input.Type))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         newUser,
	}, nil
}

// buildNewUserEntity assembles the account with its derived display name and
// attached profile. The registration username is title-cased and split on
// whitespace: the first word becomes the first name, the rest the last name.
// The title-cased form is also what gets stored and uniqueness-checked, so
// "max muster" and "Max Muster" are the same account.
func buildNewUserEntity(input usecase.RegisterInput, hashedPassword string, profileType entity.ProfileType) *entity.User {
	firstName, lastName := deriveNames(input.Username)

	return &entity.User{
		Username:  titleCase(input.Username),
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.TrimSpace(input.Email),
		Password:  hashedPassword,
		Profile: &entity.UserProfile{
			Type: profileType,
		},
	}
}

func deriveNames(username string) (string, string) {
	words := strings.Fields(titleCase(username))
	if len(words) == 0 {
		return "", ""
	}

	return words[0], strings.Join(words[1:], " ")
}

// titleCase upper-cases the first letter of each whitespace-separated word
// and lower-cases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// Login orchestrates the login process.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	// Usernames are stored title-cased; canonicalize the login input the
	// same way so the submitted casing does not matter.
	user, err := srv.userRepo.FindByUsername(ctx, titleCase(input.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Do not reveal whether the username or the password was wrong.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	// bcrypt is CPU-bound; check outside any transaction.
	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	profileType := entity.ProfileTypeCustomer
	if user.Profile != nil {
		profileType = user.Profile.Type
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, profileType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, user.ID, refreshTokenString); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh pair. The old
// token is revoked in the same transaction that stores the new one.
func (srv *userService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token rejected")
	}

	var newAccessToken, newRefreshToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindByToken(ctx, input.RefreshToken)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token not found")
			}

			return errors.Wrap(err, "failed to load refresh token")
		}

		if stored.IsExpired() {
			if err := refreshRepo.DeleteByToken(ctx, stored.Token); err != nil {
				return errors.Wrap(err, "failed to delete expired refresh token")
			}

			return errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token expired")
		}

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user during token refresh")
		}

		profileType := entity.ProfileTypeCustomer
		if user.Profile != nil {
			profileType = user.Profile.Type
		}

		newAccessToken, newRefreshToken, err = srv.tokenService.GenerateTokens(user.ID, profileType)
		if err != nil {
			return errors.Wrap(err, "failed to generate rotated tokens")
		}

		if err := refreshRepo.DeleteByToken(ctx, stored.Token); err != nil {
			return errors.Wrap(err, "failed to revoke old refresh token")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, user.ID, newRefreshToken)
	})

	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout invalidates a session by deleting its refresh token. A token that
// is already gone makes logout a no-op rather than an error.
func (srv *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting to log out")

	if err := srv.refreshTokenRepo.DeleteByToken(ctx, input.RefreshToken); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Warn("Logout with unknown refresh token")

			return nil
		}

		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
