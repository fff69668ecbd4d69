package services

import (
	"errors"
	"strings"
	"time"

	"github.com/OmarZED/Delivery-System/entity"
	"github.com/OmarZED/Delivery-System/repository"
	"github.com/OmarZED/Delivery-System/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, login, logout and profile handling.
// Credential storage is bcrypt; tokens are HS256 JWTs with a jti claim that
// the logout blacklist keys on.
type AuthService struct {
	UserRepo  *repository.UserRepository
	TokenRepo *repository.TokenRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, tokenRepo *repository.TokenRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: userRepo, TokenRepo: tokenRepo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Name        string        `json:"name" binding:"required"`
	Email       string        `json:"email" binding:"required,email"`
	Password    string        `json:"password" binding:"required"`
	Address     string        `json:"address"`
	PhoneNumber string        `json:"phoneNumber" binding:"required"`
	BirthDate   time.Time     `json:"birthDate" binding:"required"`
	Gender      entity.Gender `json:"gender" binding:"required"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !in.Gender.Valid() {
		return nil, ErrInvalidArgument
	}
	if !utils.PasswordStrong(in.Password) {
		return nil, ErrWeakPassword
	}

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		BirthDate:   in.BirthDate,
		Gender:      in.Gender,
	}
	if err := s.UserRepo.Create(user); err != nil {
		logrus.WithField("email", email).WithError(err).Error("user create failed")
		return nil, err
	}
	return user, nil
}

// Login checks credentials and mints a bearer token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout blacklists the presented token's jti until its natural expiry.
func (s *AuthService) Logout(jti string, expiresAt time.Time) error {
	if jti == "" {
		return ErrInvalidArgument
	}
	return s.TokenRepo.Revoke(jti, expiresAt)
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type UpdateProfileIn struct {
	Name        string        `json:"name" binding:"required"`
	Address     string        `json:"address"`
	PhoneNumber string        `json:"phoneNumber" binding:"required"`
	BirthDate   time.Time     `json:"birthDate" binding:"required"`
	Gender      entity.Gender `json:"gender" binding:"required"`
}

// UpdateProfile rewrites the non-credential profile fields. Email is
// immutable.
func (s *AuthService) UpdateProfile(userID uint, in *UpdateProfileIn) (*entity.User, error) {
	if !in.Gender.Valid() {
		return nil, ErrInvalidArgument
	}
	if _, err := s.Profile(userID); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name":         strings.TrimSpace(in.Name),
		"address":      strings.TrimSpace(in.Address),
		"phone_number": strings.TrimSpace(in.PhoneNumber),
		"birth_date":   in.BirthDate,
		"gender":       in.Gender,
	}
	if err := s.UserRepo.Update(userID, updates); err != nil {
		logrus.WithField("userId", userID).WithError(err).Error("profile update failed")
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}
