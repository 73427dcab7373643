package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
)

type fakeUserRepo struct {
	byUsername *model.User
	createErr  error
	created    *model.User
}

func (s *fakeUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	return nil, nil
}

func (s *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.byUsername, nil
}

func (s *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = 1
	s.created = user
	return nil
}

func (s *fakeUserRepo) UpdateOwnedVehicle(ctx context.Context, userID uint64, brand, vehicleModel *string) error {
	return nil
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	result, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: " yeniuye ", Password: "parola123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.Token == "" {
		t.Error("register must issue a token")
	}
	if repo.created == nil || repo.created.Username != "yeniuye" {
		t.Errorf("stored user = %+v, want trimmed username", repo.created)
	}
	if repo.created.PasswordHash == "parola123" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterExistingUsername(t *testing.T) {
	repo := &fakeUserRepo{byUsername: &model.User{ID: 1, Username: "yeniuye"}}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "yeniuye", Password: "parola123"})
	if !errors.Is(err, ErrUsernameExist) {
		t.Errorf("err = %v, want ErrUsernameExist", err)
	}
}

func TestRegisterLostInsertRace(t *testing.T) {
	// The pre-insert lookup saw nothing, but a concurrent registration won
	// the unique index. The duplicate-key error must map to the same
	// conflict as the lookup path, not bubble up as an internal error.
	repo := &fakeUserRepo{createErr: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "yeniuye", Password: "parola123"})
	if !errors.Is(err, ErrUsernameExist) {
		t.Errorf("err = %v, want ErrUsernameExist", err)
	}
}

func TestRegisterOtherInsertErrorsPropagate(t *testing.T) {
	repo := &fakeUserRepo{createErr: &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout"}}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "yeniuye", Password: "parola123"})
	if errors.Is(err, ErrUsernameExist) || err == nil {
		t.Errorf("non-duplicate driver errors must propagate, got %v", err)
	}
}
