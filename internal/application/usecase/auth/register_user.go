// Package auth contains account registration and token use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Phone     string
	FirstName string
	LastName  string
	Password  string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration. Phone numbers are the login
// and must match one of the registered country formats.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	phone := strings.TrimSpace(input.Phone)

	if err := entity.ValidatePhone(phone); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPhone,
			err.Error(),
			domainerror.ErrInvalidPhone,
		)
	}

	exists, err := uc.userRepo.ExistsByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone number: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePhoneTaken,
			"phone number already registered",
			domainerror.ErrPhoneTaken,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(phone, input.FirstName, input.LastName, hash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterUserOutput{User: user}, nil
}
