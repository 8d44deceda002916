package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-drive/internal/common/apperr"
	"go-drive/internal/features/file"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserService owns the user lifecycle driven by identity-provider
// webhooks. Read-only identity resolution for other features lives in the
// repository-backed directory adapter, not here.
type UserService interface {
	GetByAccountID(ctx context.Context, accountID string) (*User, error)
	CreateUser(ctx context.Context, accountID, email, fullName, avatar string) error
	UpdateUser(ctx context.Context, accountID, email, avatar string) error
	DeleteUser(ctx context.Context, accountID string) error
}

type UserServiceImpl struct {
	UserRepo UserRepository
	Files    file.FileService
	Logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, files file.FileService, logger *zap.Logger) UserService {
	return &UserServiceImpl{
		UserRepo: userRepo,
		Files:    files,
		Logger:   logger,
	}
}

func (s *UserServiceImpl) GetByAccountID(ctx context.Context, accountID string) (*User, error) {
	u, err := s.UserRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, mapRepoErr("get user", err)
	}
	return u, nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, accountID, email, fullName, avatar string) error {
	u := &User{
		AccountID: accountID,
		Email:     email,
		FullName:  fullName,
		Avatar:    avatar,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	s.Logger.Info("user created", zap.String("accountId", accountID))
	return nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, accountID, email, avatar string) error {
	if err := s.UserRepo.UpdateProfile(ctx, accountID, email, avatar); err != nil {
		return mapRepoErr("update user", err)
	}
	return nil
}

// DeleteUser removes the account and everything it owns: each owned file's
// payload and metadata go first, then the user record itself.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, accountID string) error {
	u, err := s.UserRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return mapRepoErr("get user", err)
	}

	if err := s.Files.CascadeDeleteForOwner(ctx, u.ID); err != nil {
		return fmt.Errorf("cascade delete files: %w", err)
	}

	if err := s.UserRepo.Delete(ctx, u.ID); err != nil {
		return mapRepoErr("delete user", err)
	}
	s.Logger.Info("user deleted", zap.String("accountId", accountID))
	return nil
}

func mapRepoErr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
