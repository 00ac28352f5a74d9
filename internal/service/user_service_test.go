package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"carwash-dashboard/internal/model"
)

func adminPrincipal() model.Principal {
	return model.Principal{UserID: 1, Email: "admin@example.com", UserType: model.UserTypeAdmin}
}

func TestCreateUser(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*model.User{}}
	svc := NewUserService(repo, zerolog.Nop())

	shopID := int64(3)
	id, err := svc.Create(context.Background(), adminPrincipal(), CreateUserInput{
		FirstName: "Dana",
		LastName:  "Lee",
		Email:     "dana@example.com",
		Password:  "s3cret",
		UserType:  "manager",
		ShopID:    &shopID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 101 {
		t.Errorf("returned id = %d, want 101", id)
	}
	if repo.created == nil {
		t.Fatal("no user persisted")
	}
	if repo.created.PasswordHash == "s3cret" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, zerolog.Nop())

	viewer := model.Principal{UserID: 2, UserType: "manager"}
	_, err := svc.Create(context.Background(), viewer, CreateUserInput{
		Email: "x@y.z", Password: "pw",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{byEmail: map[string]*model.User{}}, zerolog.Nop())

	_, err := svc.Create(context.Background(), adminPrincipal(), CreateUserInput{Email: "", Password: "pw"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("missing email: got %v, want ErrInvalidArgument", err)
	}
	_, err = svc.Create(context.Background(), adminPrincipal(), CreateUserInput{Email: "x@y.z", Password: ""})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("missing password: got %v, want ErrInvalidArgument", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{
		byEmail: map[string]*model.User{"taken@example.com": {Email: "taken@example.com"}},
	}
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), adminPrincipal(), CreateUserInput{
		Email: "taken@example.com", Password: "pw",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	repo := &fakeUserRepo{
		byEmail: map[string]*model.User{"dana@example.com": {ID: 7, Email: "dana@example.com"}},
	}
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.ResetPassword(context.Background(), adminPrincipal(), "dana@example.com", "newpw"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if repo.updatedEmail != "dana@example.com" {
		t.Errorf("updated email = %q", repo.updatedEmail)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.updatedHash), []byte("newpw")); err != nil {
		t.Errorf("stored hash does not match new password: %v", err)
	}
	if len(repo.adminLogs) != 1 {
		t.Fatalf("expected 1 audit row, got %d", len(repo.adminLogs))
	}
	audit := repo.adminLogs[0]
	if audit.AdminID != 1 || audit.AffectedUserID != 7 || audit.ActionType != "password_reset" {
		t.Errorf("audit row = %+v", audit)
	}
}

func TestResetPasswordErrors(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*model.User{}}
	svc := NewUserService(repo, zerolog.Nop())

	err := svc.ResetPassword(context.Background(), model.Principal{UserType: "manager"}, "a@b.c", "pw")
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("non-admin: got %v, want ErrForbidden", err)
	}

	err = svc.ResetPassword(context.Background(), adminPrincipal(), "", "pw")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("missing email: got %v, want ErrInvalidArgument", err)
	}

	err = svc.ResetPassword(context.Background(), adminPrincipal(), "ghost@example.com", "pw")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown email: got %v, want ErrNotFound", err)
	}
}

func TestResetPasswordSurvivesAuditFailure(t *testing.T) {
	repo := &fakeUserRepo{
		byEmail:     map[string]*model.User{"dana@example.com": {ID: 7, Email: "dana@example.com"}},
		adminLogErr: errors.New("insert failed"),
	}
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.ResetPassword(context.Background(), adminPrincipal(), "dana@example.com", "newpw"); err != nil {
		t.Fatalf("audit failure should not fail the reset: %v", err)
	}
	if repo.updatedHash == "" {
		t.Error("password was not updated")
	}
}
