// Package model defines domain entities and data structures for the Ascend API.
//
// The model package contains the documents persisted in SurrealDB, the quest
// projections returned to clients, and the RFC 9457 error types. Models are
// used across all layers of the application.
//
// # Domain Entities
//
//   - Hunter: one account, holding progression, economy, collections,
//     streak state and pending punishment quests in a single document
//   - DailyQuest: the per-hunter, per-UTC-date training quest
//   - Guild: a named group of hunters with a leader
//
// # Quest Kinds
//
// Every quest carries a QuestKind (daily, dungeon, boss, mission, punishment)
// that selects its completion rules.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
