package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Phone    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// LoginUserUseCase handles user login by phone number and password.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login. A wrong phone and a wrong password produce the
// same error so the response does not leak which accounts exist.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	phone := strings.TrimSpace(input.Phone)

	user, err := uc.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid phone or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid phone or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if !user.IsActive {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserInactive,
			"user account is inactive",
			domainerror.ErrUserInactive,
		)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}
