package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/redis"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/security"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"

	"github.com/go-sql-driver/mysql"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrParamInvalid
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExist
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}
	// The unique index is the authority; the earlier lookup only covers the
	// common case. A concurrent insert loses here, not with a 500.
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}

	return s.issueToken(user)
}

// isDuplicateError reports whether err is a MySQL unique-key violation.
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return s.issueToken(user)
}

// Logout revokes the token by blacklisting its signature for the token's
// remaining lifetime.
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	key := consts.TokenRevokedKey + signature
	return redis.SetWithExpiration(ctx, key, "1", security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.UpdateOwnedVehicle(ctx, userID, req.OwnedBrand, req.OwnedModel); err != nil {
		return nil, err
	}
	user.OwnedBrand = req.OwnedBrand
	user.OwnedModel = req.OwnedModel
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) issueToken(user *model.User) (*dto.AuthResultDTO, error) {
	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResultDTO{Token: token, User: toUserDTO(user)}, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		OwnedBrand: user.OwnedBrand,
		OwnedModel: user.OwnedModel,
		CreatedAt:  user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
