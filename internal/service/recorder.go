package service

// EventRecorder receives domain events for metrics. Implementations must be
// safe for concurrent use.
type EventRecorder interface {
	HunterRegistered()
	QuestCompleted(kind string, levelsGained int)
	QuestFailed(streakProtected bool)
	AchievementsUnlocked(n int)
	ItemPurchased(itemID string)
	GuildChanged(action string)
}

// Guild actions reported to EventRecorder.GuildChanged
const (
	GuildActionCreate  = "create"
	GuildActionJoin    = "join"
	GuildActionLeave   = "leave"
	GuildActionDisband = "disband"
)

type nopRecorder struct{}

func (nopRecorder) HunterRegistered()                           {}
func (nopRecorder) QuestCompleted(kind string, levelsGained int) {}
func (nopRecorder) QuestFailed(streakProtected bool)            {}
func (nopRecorder) AchievementsUnlocked(n int)                  {}
func (nopRecorder) ItemPurchased(itemID string)                 {}
func (nopRecorder) GuildChanged(action string)                  {}

func recorderOrNop(r EventRecorder) EventRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
