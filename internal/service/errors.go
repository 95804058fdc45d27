package service

import (
	"errors"
	"fmt"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrHunterNameTaken    = errors.New("hunter name already taken")
	ErrHunterNotFound     = errors.New("hunter not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidHunterName  = errors.New("hunter name must be 3 to 32 characters")
)

// ===== Hunter Errors =====
var (
	ErrInvalidStat            = errors.New("invalid stat")
	ErrInvalidPoints          = errors.New("points must be at least 1")
	ErrInsufficientStatPoints = errors.New("not enough stat points")
)

// ===== Quest Errors =====
var (
	ErrQuestIDRequired       = errors.New("quest id is required")
	ErrQuestNotFound         = errors.New("quest not found")
	ErrQuestAlreadyCompleted = errors.New("quest already completed")
	ErrQuestExpired          = errors.New("quest expired")
	ErrLevelTooLow           = errors.New("level too low")
)

// ===== Shop Errors =====
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInsufficientGold = errors.New("not enough gold")
)

// ===== Guild Errors =====
var (
	ErrGuildNotFound     = errors.New("guild not found")
	ErrGuildNameRequired = errors.New("guild name is required")
	ErrGuildNameTooShort = errors.New("guild name is too short")
	ErrGuildNameTooLong  = errors.New("guild name exceeds maximum length")
	ErrGuildDescTooLong  = errors.New("guild description exceeds maximum length")
	ErrGuildNameExists   = errors.New("a guild with this name already exists")
	ErrAlreadyInGuild    = errors.New("already a member of a guild")
	ErrNotInGuild        = errors.New("not a member of any guild")
)

// LevelGateError is returned when content requires a higher hunter level.
// It matches ErrLevelTooLow with errors.Is.
type LevelGateError struct {
	Required int
	Current  int
}

func (e *LevelGateError) Error() string {
	return fmt.Sprintf("requires level %d, current level %d", e.Required, e.Current)
}

func (e *LevelGateError) Unwrap() error { return ErrLevelTooLow }

// InsufficientError is returned when a balance (gold, stat points) is below
// the cost of an action. It matches the wrapped sentinel with errors.Is.
type InsufficientError struct {
	Resource string
	Required int
	Current  int
	Err      error
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("%v: %d required, %d available", e.Err, e.Required, e.Current)
}

func (e *InsufficientError) Unwrap() error { return e.Err }
