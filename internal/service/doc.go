// Package service implements the business logic layer for the Ascend API.
//
// The service package contains the progression and reward rules, validation,
// and orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Per-Hunter Serialization
//
// Every state-changing operation takes the hunter's lock in HunterLocks,
// reads a fresh snapshot, computes the new state and persists it before
// releasing the lock. Daily quest completion and guild membership changes
// persist the hunter together with the other record in one transaction.
//
// # Error Handling
//
// Services return domain-specific errors defined in errors.go:
//
//	var (
//	    ErrQuestNotFound         = errors.New("quest not found")
//	    ErrQuestAlreadyCompleted = errors.New("quest already completed")
//	)
//
// LevelGateError and InsufficientError carry numbers for the response and
// match their sentinels with errors.Is.
//
// # Example Usage
//
//	quests := NewQuestService(QuestServiceConfig{
//	    HunterRepo: hunterRepository,
//	    DailyRepo:  dailyQuestRepository,
//	    Locks:      locks,
//	})
//	result, err := quests.Complete(ctx, hunterID, "dungeon_cueva_goblins")
package service
