package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campushub/college-events/internal/helpers"
	"github.com/campushub/college-events/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type StaffService struct {
	staffRepo  models.StaffRepo
	secret     []byte
	sessionTTL time.Duration
}

func NewStaffService(staffRepo models.StaffRepo, secretKey string) *StaffService {
	return &StaffService{
		staffRepo:  staffRepo,
		secret:     []byte(secretKey),
		sessionTTL: helpers.SessionTTL,
	}
}

type SignupInput struct {
	Name       string `form:"name" json:"name"`
	Email      string `form:"email" json:"email"`
	Username   string `form:"username" json:"username"`
	Password   string `form:"password" json:"password"`
	Department string `form:"department" json:"department"`
	Phone      string `form:"phone" json:"phone"`
}

func (in *SignupInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	in.Password = strings.TrimSpace(in.Password)
	in.Department = strings.TrimSpace(in.Department)
	in.Phone = strings.TrimSpace(in.Phone)
}

// Register creates a staff account. Email and username must each be unique;
// the pre-checks give friendly errors and the store's unique indexes make the
// rules hold under concurrent signups. The password is irreversibly hashed
// before storage.
func (ss *StaffService) Register(ctx context.Context, in SignupInput) (*models.Staff, error) {
	in.trim()
	if in.Name == "" || in.Email == "" || in.Username == "" || in.Password == "" ||
		in.Department == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: all fields are required", models.ErrValidation)
	}

	existing, err := ss.staffRepo.GetStaffByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	existing, err = ss.staffRepo.GetStaffByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, models.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.Staff{
		Name:       in.Name,
		Email:      in.Email,
		Username:   in.Username,
		Password:   string(hash),
		Department: in.Department,
		Phone:      in.Phone,
		CreatedAt:  time.Now(),
	}

	if err := models.Validate.Struct(staff); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	return ss.staffRepo.CreateStaff(ctx, staff)
}

// Login verifies the credentials and mints a session token. An unknown
// username and a wrong password produce the same error so callers cannot
// enumerate accounts.
func (ss *StaffService) Login(ctx context.Context, username, password string) (*models.Staff, string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}

	staff, err := ss.staffRepo.GetStaffByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up staff: %w", err)
	}
	if staff == nil {
		return nil, "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := helpers.MintSessionToken(ss.secret, staff.ID.Hex(), staff.Name, ss.sessionTTL)
	if err != nil {
		return nil, "", err
	}

	return staff, token, nil
}

func (ss *StaffService) SessionTTL() time.Duration {
	return ss.sessionTTL
}
