package command

import (
	"errors"
	"testing"
	"time"

	"github.com/unimarket-dev/unimarket/internal/user/domain"
	"github.com/unimarket-dev/unimarket/pkg/auth"
)

func init() {
	auth.Init("test-secret", time.Minute)
}

// fakeUserRepo is an in-memory UserRepository for usecase tests.
type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User)}
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByRole(role string, limit, offset int) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole(role string) (int64, error) {
	var n int64
	for _, user := range r.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

func TestRegisterDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleBuyer {
		t.Fatalf("role = %q, want %q", user.Role, domain.RoleBuyer)
	}
	if user.DisplayName != "alice" {
		t.Fatalf("display name = %q, want username fallback", user.DisplayName)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	if _, err := handler.Handle(RegisterUserCommand{Username: "alice", Email: "a@example.com", Password: "password123"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := handler.Handle(RegisterUserCommand{Username: "alice", Email: "b@example.com", Password: "password123"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}

	if n, _ := repo.Count(); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	if _, err := handler.Handle(RegisterUserCommand{Username: "alice", Email: "a@example.com", Password: "password123"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := handler.Handle(RegisterUserCommand{Username: "bob", Email: "a@example.com", Password: "password123"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	cases := map[string]RegisterUserCommand{
		"short username": {Username: "ab", Email: "a@example.com", Password: "password123"},
		"bad characters": {Username: "has space", Email: "a@example.com", Password: "password123"},
		"missing email":  {Username: "alice", Email: "", Password: "password123"},
		"weak password":  {Username: "alice", Email: "a@example.com", Password: "short"},
		"unknown role":   {Username: "alice", Email: "a@example.com", Password: "password123", Role: "superuser"},
	}
	for name, cmd := range cases {
		if _, err := handler.Handle(cmd); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	if n, _ := repo.Count(); n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
}
