package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Password constraints
	minPasswordLength = 8
	maxPasswordLength = 128

	// Hunter name constraints
	minHunterNameLength = 3
	maxHunterNameLength = 32
)

// HunterRepository defines the interface for hunter storage
type HunterRepository interface {
	Create(ctx context.Context, h *model.Hunter) error
	GetByID(ctx context.Context, id string) (*model.Hunter, error)
	GetByEmail(ctx context.Context, email string) (*model.Hunter, error)
	GetByHunterName(ctx context.Context, name string) (*model.Hunter, error)
	Save(ctx context.Context, h *model.Hunter) error
	ListTopByLevel(ctx context.Context, limit int) ([]*model.Hunter, error)
	ListByGuild(ctx context.Context, guildID string) ([]*model.Hunter, error)
}

// TokenSigner issues access tokens for a hunter
type TokenSigner interface {
	Sign(hunterID, hunterName string) (string, error)
}

// AuthService handles registration and login
type AuthService struct {
	hunterRepo HunterRepository
	tokens     TokenSigner
	events     EventRecorder
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	HunterRepo HunterRepository
	Tokens     TokenSigner
	Events     EventRecorder
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		hunterRepo: cfg.HunterRepo,
		tokens:     cfg.Tokens,
		events:     recorderOrNop(cfg.Events),
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email      string
	Password   string
	HunterName string
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResult is returned by both register and login
type AuthResult struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	HunterName string `json:"hunter_name"`
}

// Register creates a new hunter account with email/password
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := normalizeEmail(req.Email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.HunterName)
	if n := utf8.RuneCountInString(name); n < minHunterNameLength || n > maxHunterNameLength {
		return nil, ErrInvalidHunterName
	}

	existing, err := s.hunterRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}
	existing, err = s.hunterRepo.GetByHunterName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrHunterNameTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	h := model.NewHunter(email, name)
	h.Hash = &hash
	if err := s.hunterRepo.Create(ctx, h); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, s.classifyDuplicate(ctx, name)
		}
		return nil, err
	}

	token, err := s.tokens.Sign(h.ID, h.HunterName)
	if err != nil {
		return nil, err
	}

	s.events.HunterRegistered()
	slog.Info("hunter registered", slog.String("hunter_id", h.ID), slog.String("hunter_name", h.HunterName))

	return &AuthResult{Token: token, UserID: h.ID, HunterName: h.HunterName}, nil
}

// Login authenticates a hunter with email/password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email := normalizeEmail(req.Email)

	h, err := s.hunterRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if h == nil || h.Hash == nil || *h.Hash == "" {
		return nil, ErrInvalidCredentials
	}
	if !checkPassword(req.Password, *h.Hash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(h.ID, h.HunterName)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, UserID: h.ID, HunterName: h.HunterName}, nil
}

// classifyDuplicate resolves a unique index race lost after the pre-checks.
func (s *AuthService) classifyDuplicate(ctx context.Context, name string) error {
	if existing, err := s.hunterRepo.GetByHunterName(ctx, name); err == nil && existing != nil {
		return ErrHunterNameTaken
	}
	return ErrEmailAlreadyExists
}

// Helper functions

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func isValidEmail(email string) bool {
	// Basic email validation
	if email == "" {
		return false
	}
	if len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	if dotIndex >= len(email)-1 {
		return false
	}
	return true
}
