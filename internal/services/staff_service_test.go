package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/college-events/internal/helpers"
	"github.com/campushub/college-events/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

func validSignup() SignupInput {
	return SignupInput{
		Name:       "Grace Hopper",
		Email:      "grace@college.edu",
		Username:   "ghopper",
		Password:   "compilers4ever",
		Department: "Computer Science",
		Phone:      "5559876",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewStaffService(newMockStaffRepo(), testSecret)

	staff, err := svc.Register(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if staff.Password == "compilers4ever" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte("compilers4ever")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewStaffService(newMockStaffRepo(), testSecret)

	in := validSignup()
	in.Department = " "
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRegisterConflicts(t *testing.T) {
	svc := NewStaffService(newMockStaffRepo(), testSecret)

	if _, err := svc.Register(context.Background(), validSignup()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	in := validSignup()
	in.Username = "ghopper2"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, models.ErrEmailTaken) {
		t.Errorf("duplicate email: expected ErrEmailTaken, got %v", err)
	}

	in = validSignup()
	in.Email = "grace2@college.edu"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, models.ErrUsernameTaken) {
		t.Errorf("duplicate username: expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginDoesNotDistinguishFailures(t *testing.T) {
	svc := NewStaffService(newMockStaffRepo(), testSecret)
	if _, err := svc.Register(context.Background(), validSignup()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "nobody", "compilers4ever")
	_, _, wrongErr := svc.Login(context.Background(), "ghopper", "wrong-password")

	if !errors.Is(unknownErr, models.ErrInvalidCredentials) {
		t.Errorf("unknown username: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, models.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("failure modes distinguishable: %q vs %q", unknownErr, wrongErr)
	}
}

func TestLoginMintsValidSession(t *testing.T) {
	svc := NewStaffService(newMockStaffRepo(), testSecret)
	registered, err := svc.Register(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	staff, token, err := svc.Login(context.Background(), "ghopper", "compilers4ever")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if staff.ID != registered.ID {
		t.Errorf("login resolved wrong account: %s", staff.ID.Hex())
	}

	claims, err := helpers.ValidateSessionToken([]byte(testSecret), token)
	if err != nil {
		t.Fatalf("minted token does not validate: %v", err)
	}
	if claims.StaffID != registered.ID.Hex() {
		t.Errorf("token carries staff id %q, want %q", claims.StaffID, registered.ID.Hex())
	}
	if claims.StaffName != "Grace Hopper" {
		t.Errorf("token carries staff name %q", claims.StaffName)
	}

	if _, err := helpers.ValidateSessionToken([]byte("other-secret"), token); err == nil {
		t.Error("token validated under the wrong secret")
	}
}
