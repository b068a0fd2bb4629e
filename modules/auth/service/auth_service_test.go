package service

import (
	"context"
	"os"
	"testing"

	"meetbook/core/config"
	"meetbook/core/constants"
	"meetbook/core/database"
	"meetbook/core/errors"
	"meetbook/modules/auth/dto"
	"meetbook/modules/user/entity"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) UpdatePhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error {
	return nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	resp, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "  Host@Example.COM ",
		Password:  "hunter2hunter2",
		Name:      "Host",
		IsPartner: true,
	})
	if appErr != nil {
		t.Fatalf("Register: %v", appErr)
	}
	if resp.Token == "" {
		t.Error("token is empty")
	}
	if resp.User.Email != "host@example.com" {
		t.Errorf("email = %s, want normalized lowercase", resp.User.Email)
	}

	stored := repo.byEmail["host@example.com"]
	if stored == nil {
		t.Fatal("user was not stored")
	}
	if stored.Role != constants.RolePartner {
		t.Errorf("role = %s, want %s", stored.Role, constants.RolePartner)
	}
	if stored.PasswordHash == "hunter2hunter2" {
		t.Error("password stored in plain text")
	}
	if stored.ReferralCode == "" {
		t.Error("referral code is empty")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.RegisterRequest
		wantCode errors.ErrorCode
	}{
		{"missing email", dto.RegisterRequest{Password: "hunter2hunter2"}, errors.ErrInvalidInput},
		{"bad email", dto.RegisterRequest{Email: "nope", Password: "hunter2hunter2"}, errors.ErrInvalidInput},
		{"short password", dto.RegisterRequest{Email: "a@b.com", Password: "short"}, errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(newFakeUserRepo())
			_, appErr := svc.Register(context.Background(), &tt.req)
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Fatalf("error = %v, want code %s", appErr, tt.wantCode)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	req := &dto.RegisterRequest{Email: "a@b.com", Password: "hunter2hunter2"}

	if _, appErr := svc.Register(context.Background(), req); appErr != nil {
		t.Fatalf("first register: %v", appErr)
	}
	_, appErr := svc.Register(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("error = %v, want code %s", appErr, errors.ErrAlreadyExists)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	if _, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "hunter2hunter2",
	}); appErr != nil {
		t.Fatalf("register: %v", appErr)
	}

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "A@b.com",
		Password: "hunter2hunter2",
	})
	if appErr != nil {
		t.Fatalf("Login: %v", appErr)
	}
	if resp.Token == "" {
		t.Error("token is empty")
	}

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@b.com",
		Password: "wrong-password",
	})
	if appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Fatalf("error = %v, want code %s", appErr, errors.ErrUnauthorized)
	}

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "unknown@b.com",
		Password: "hunter2hunter2",
	})
	if appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Fatalf("error = %v, want code %s", appErr, errors.ErrUnauthorized)
	}
}
