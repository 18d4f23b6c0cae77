package identity

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/platform/auth"
)

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = fmt.Errorf("email already registered")
	// ErrDuplicateUsername is returned when the username is taken.
	ErrDuplicateUsername = fmt.Errorf("username already taken")
	// ErrInvalidCredentials is returned for bad username/password pairs
	// and for inactive accounts, deliberately indistinguishable.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
)

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service provides business logic for doctor accounts.
type Service struct {
	doctors DoctorRepository
	jwtCfg  auth.JWTConfig
}

func NewService(doctors DoctorRepository, jwtCfg auth.JWTConfig) *Service {
	return &Service{doctors: doctors, jwtCfg: jwtCfg}
}

// Register validates and creates a new doctor account.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Doctor, error) {
	if !emailRE.MatchString(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(req.Username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}

	if _, err := s.doctors.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateEmail
	}
	if _, err := s.doctors.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	d := &Doctor{
		Email:          strings.ToLower(req.Email),
		Username:       strings.ToLower(req.Username),
		FullName:       req.FullName,
		Specialization: normalizeSpecialization(req.Specialization),
		HashedPassword: hash,
		IsActive:       true,
	}
	if req.LicenseNumber != "" {
		d.LicenseNumber = &req.LicenseNumber
	}

	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

// Login authenticates by username or email and issues an access token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	d, err := s.doctors.GetByUsername(ctx, req.Username)
	if err != nil {
		d, err = s.doctors.GetByEmail(ctx, req.Username)
	}
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !d.IsActive || !auth.CheckPassword(d.HashedPassword, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.jwtCfg, d.ID.String(), d.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwtCfg.TokenTTL.Seconds()),
		Doctor:      d,
	}, nil
}

// GetDoctor returns the doctor for the given ID.
func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

// normalizeSpecialization lowercases and underscores free-text input so
// equal specialties compare equal. Unrecognized values are kept as typed.
func normalizeSpecialization(s string) string {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	if norm == "" {
		return "general_practice"
	}
	return norm
}
