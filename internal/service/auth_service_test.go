package service

import (
	"course_cms_backend/internal/config"
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
	"errors"
	"testing"
	"time"
)

type fakeUserStore struct {
	users map[string]*model.User // key: email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) FindByID(id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (f *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func newAuthServiceForTest() *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(newFakeUserStore(), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthServiceForTest()

	user, err := svc.Register(model.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}

	token, logged, err := svc.Login(model.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %q, want %q", logged.ID, user.ID)
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthServiceForTest()

	req := model.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(req)
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("err = %v, want ErrEmailRegistered", err)
	}
	if err.Error() != "Email already registered" {
		t.Errorf("message = %q, want Email already registered", err.Error())
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newAuthServiceForTest()

	if _, err := svc.Register(model.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login(model.LoginRequest{Email: "ada@example.com", Password: "wrong"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(model.LoginRequest{Email: "nobody@example.com", Password: "secret123"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}
