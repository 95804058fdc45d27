// Package repository implements the SurrealDB data access layer.
//
// Each repository owns one table:
//
//   - HunterRepository: the hunter document (account, progression, collections)
//   - DailyQuestRepository: one daily quest per hunter per UTC date
//   - GuildRepository: guilds and their membership counters
//
// Lookups return nil, nil when the record does not exist. Unique index
// violations surface as database.ErrDuplicate wrapped with a specific error
// (ErrEmailTaken, ErrHunterNameTaken, ErrGuildNameTaken).
//
// HunterRepository.Save never writes guild_id. Membership is only written by
// GuildRepository inside the same transaction as the guild record, so a
// disband that clears members' references cannot be undone by a concurrent
// save of one of those members.
//
//	repo := NewHunterRepository(db)
//	h, err := repo.GetByID(ctx, "hunter:4f1c...")
//	if err != nil {
//	    return err
//	}
//	if h == nil {
//	    // not found
//	}
package repository
