package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/intramail/intramail/internal/common"
	"github.com/intramail/intramail/internal/server/auth"
	"github.com/intramail/intramail/internal/server/config"
	"github.com/intramail/intramail/internal/server/models"
)

// --- helpers ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	lastCreated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	created := *u
	f.lastCreated = &created
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u1"
	u.CreatedAt = time.Now()
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func newUserService(repo *fakeUsersRepo) *UserService {
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: 8 * time.Hour,
	}
	return NewUserService(repo, cfg)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return h
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newUserService(repo)

	user, err := s.Register(context.Background(), "a@x.com", "Alice", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == "" || user.CreatedAt.IsZero() {
		t.Fatalf("db-assigned fields missing: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}
	if repo.lastCreated.PasswordHash == "pw" || repo.lastCreated.PasswordHash == "" {
		t.Fatalf("password was not hashed before storage")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := newUserService(&fakeUsersRepo{})

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"a@x.com", ""},
		{"", ""},
	} {
		_, err := s.Register(context.Background(), tc.email, "", tc.password)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("email=%q password=%q: want ErrorValidation, got %v", tc.email, tc.password, err)
		}
	}
}

func TestRegister_Duplicate(t *testing.T) {
	s := newUserService(&fakeUsersRepo{createErr: common.ErrorConflict})

	_, err := s.Register(context.Background(), "a@x.com", "", "pw")
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want ErrorConflict, got %v", err)
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	s := newUserService(&fakeUsersRepo{createErr: errors.New("connection reset")})

	_, err := s.Register(context.Background(), "a@x.com", "", "pw")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	hash := mustHash(t, "pw")
	repo := &fakeUsersRepo{getOut: &models.User{ID: "u1", Email: "a@x.com", Name: "Alice", PasswordHash: hash}}
	s := newUserService(repo)

	res, err := s.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("empty token")
	}
	if res.User.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}

	identity, err := auth.VerifyToken(res.Token, []byte("k"))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if identity.ID != "u1" || identity.Email != "a@x.com" || identity.Name != "Alice" {
		t.Fatalf("unexpected identity in token: %+v", identity)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreIdentical(t *testing.T) {
	hash := mustHash(t, "right")

	unknown := newUserService(&fakeUsersRepo{getErr: common.ErrorNotFound})
	_, errUnknown := unknown.Login(context.Background(), "nonexistent@x.com", "anything")

	wrongPw := newUserService(&fakeUsersRepo{getOut: &models.User{ID: "u1", Email: "a@x.com", PasswordHash: hash}})
	_, errWrong := wrongPw.Login(context.Background(), "a@x.com", "wrong")

	if !errors.Is(errUnknown, common.ErrorUnauthorized) {
		t.Fatalf("unknown email: want ErrorUnauthorized, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want ErrorUnauthorized, got %v", errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("error shapes differ: %q vs %q", errUnknown, errWrong)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	s := newUserService(&fakeUsersRepo{})

	_, err := s.Login(context.Background(), "", "pw")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	s := newUserService(&fakeUsersRepo{getErr: errors.New("connection reset")})

	_, err := s.Login(context.Background(), "a@x.com", "pw")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}
