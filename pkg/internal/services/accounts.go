package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlogue/fitlogue/pkg/internal/models"
	"github.com/fitlogue/fitlogue/pkg/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Accounts struct {
	users repository.UserRepository
}

func NewAccounts(users repository.UserRepository) *Accounts {
	return &Accounts{users: users}
}

type JoinRequest struct {
	Email    string
	Password string
	Name     string
	Nick     string
}

func (s *Accounts) Join(ctx context.Context, request JoinRequest) (models.User, error) {
	var user models.User

	_, err := s.users.GetByEmail(ctx, request.Email)
	if err == nil {
		return user, fmt.Errorf("%w: email is already in use", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	password, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return user, fmt.Errorf("%w: unable to digest password", ErrValidation)
	}

	user = models.User{
		Email:         request.Email,
		Password:      string(password),
		Name:          request.Name,
		Nick:          request.Nick,
		BlueChecked:   false,
		CreatorStatus: models.CreatorStatusUnapplied,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return user, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}

func (s *Accounts) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("%w: unable to find user with credentials", ErrAccessDenied)
	} else if err != nil {
		return user, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return user, fmt.Errorf("%w: unable to find user with credentials", ErrAccessDenied)
	}
	return user, nil
}

// GetAuthenticatedUser resolves the caller's account or fails with the
// access-denied class, since a missing row here means a stale identity.
func (s *Accounts) GetAuthenticatedUser(ctx context.Context, userID uint) (models.User, error) {
	user, err := s.users.GetByIDWithPhoto(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("%w: not authenticated", ErrAccessDenied)
	} else if err != nil {
		return user, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}

type CreatorApplication struct {
	Height    int
	Weight    int
	Instagram string
	Job       string
	IntroMsg  string
}

// SubmitCreatorApplication moves the account into the pending state and
// records the measurements the review needs. Verification itself stays with
// the back office.
func (s *Accounts) SubmitCreatorApplication(ctx context.Context, userID uint, application CreatorApplication) (models.User, error) {
	user, err := s.GetAuthenticatedUser(ctx, userID)
	if err != nil {
		return user, err
	}

	if !user.CreatorStatus.CanTransition(models.CreatorStatusPending) {
		return user, fmt.Errorf(
			"%w: cannot apply while application is %s",
			ErrValidation, user.CreatorStatus,
		)
	}

	user.Height = application.Height
	user.Weight = application.Weight
	user.Instagram = application.Instagram
	user.Job = application.Job
	user.IntroMsg = application.IntroMsg
	user.CreatorStatus = models.CreatorStatusPending
	now := time.Now()
	user.AppliedAt = &now

	if err := s.users.Save(ctx, &user); err != nil {
		return user, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}
