// Package fixtures provides test data factories for the Ascend API.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(tdb.DB)
//
// # Creating Test Data
//
// Factory methods create domain entities through the repositories:
//
//	hunter := f.CreateHunter(t)                     // Level 1 hunter
//	rich := f.CreateHunter(t, fixtures.WithGold(5000))
//	guild := f.CreateGuild(t, hunter)               // Guild led by hunter
//	f.AddMemberToGuild(t, rich, guild)
//
// # Random Data
//
// Emails and hunter names get a random suffix so fixtures never collide on
// the unique indexes.
//
// # Cleanup
//
// Test data is removed when the test database is closed.
package fixtures
