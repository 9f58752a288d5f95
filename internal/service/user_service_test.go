package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("username: got %q", user.Username)
	}
	if user.ID.IsZero() {
		t.Fatalf("expected assigned id")
	}
}

func TestCreateUserEmptyUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.CreateUser(context.Background(), ""); !errors.Is(err, ErrUsernameRequired) {
		t.Fatalf("got %v, want ErrUsernameRequired", err)
	}
	if _, err := svc.CreateUser(context.Background(), "   "); !errors.Is(err, ErrUsernameRequired) {
		t.Fatalf("blank username: got %v, want ErrUsernameRequired", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.CreateUser(context.Background(), "alice"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "alice"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("got %v, want ErrUsernameTaken", err)
	}
}

func TestListUsers(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	for _, name := range []string{"alice", "bob"} {
		if _, err := svc.CreateUser(context.Background(), name); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len: got %d, want 2", len(users))
	}
}

func TestCreateUserStoreFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errors.New("store down")
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), "alice")
	if err == nil || errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrUsernameRequired) {
		t.Fatalf("store failure must propagate untranslated, got %v", err)
	}
}
