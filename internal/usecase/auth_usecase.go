package usecase

import (
	"context"

	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (u *authUsecase) AssignRole(ctx context.Context, targetUserID, role string) error {
	switch role {
	case domain.RoleCandidate, domain.RoleRecruiter, domain.RoleAdmin:
	default:
		return apperror.BadRequest("unknown role")
	}

	user, err := u.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}

	user.Role = role
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
