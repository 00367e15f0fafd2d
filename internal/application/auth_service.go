package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	repo "github.com/cybertrain-io/cybertrain/internal/domain/repository"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// MinPasswordLen is enforced at the boundary and re-checked here so no
// invalid signup ever reaches the store.
const MinPasswordLen = 6

// AuthService is the credential store: signup, login and profile maintenance.
type AuthService struct {
	Repo      repo.UserRepository
	JWT       *helpers.JWTManager
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

type RegisterInput struct {
	Name      string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Location  string
}

// Register validates the signup, hashes the password (bcrypt, per-record
// salt) and persists the new user. Duplicate emails map to ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Name == "" || in.FirstName == "" || in.LastName == "" ||
		in.Email == "" || in.Password == "" || in.Location == "" {
		return nil, ErrMissingFields
	}
	if len(in.Password) < MinPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  hash,
		Name:      in.Name,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Location:  in.Location,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Authenticate validates email/password. Unknown user and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and issues the 1-day session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.Generate(u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name      string
	FirstName string
	LastName  string
	Location  string
	Password  string
}

// UpdateProfile applies non-empty fields. The password hash is recomputed
// only when a new plaintext password is supplied.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.Location != "" {
		u.Location = in.Location
	}
	if err := s.hashIfPasswordChanged(u, in.Password); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// hashIfPasswordChanged is the explicit re-hash step: a no-op unless a new
// plaintext password was provided.
func (s *AuthService) hashIfPasswordChanged(u *entity.User, plaintext string) error {
	if plaintext == "" {
		return nil
	}
	if len(plaintext) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	hash, err := helpers.HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// UploadAvatar stores the image in GCS and records its public URL.
func (s *AuthService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return "", ErrUserNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}
