package model

import (
	"slices"
	"time"
)

// Guild constraints
const (
	MinGuildNameLength        = 3
	MaxGuildNameLength        = 50
	MaxGuildDescriptionLength = 500
)

// Guild is a named group of hunters with one leader. TotalLevel is kept
// incrementally on join and leave and is not recomputed from members.
type Guild struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderID    string    `json:"leader_id"`
	LeaderName  string    `json:"leader_name"`
	Members     []string  `json:"members"`
	MemberCount int       `json:"member_count"`
	TotalLevel  int       `json:"total_level"`
	CreatedOn   time.Time `json:"created_on"`
}

// HasMember returns true if the hunter is listed as a member
func (g *Guild) HasMember(hunterID string) bool {
	return slices.Contains(g.Members, hunterID)
}

// IsLeader returns true if the hunter leads the guild
func (g *Guild) IsLeader(hunterID string) bool {
	return g.LeaderID == hunterID
}

// GuildMember is the public projection of a member in guild details.
type GuildMember struct {
	ID         string `json:"id"`
	HunterName string `json:"hunter_name"`
	Level      int    `json:"level"`
	Rank       Rank   `json:"rank"`
}

// GuildDetails is a guild together with its members' public info.
type GuildDetails struct {
	Guild
	MembersInfo []GuildMember `json:"members_info"`
}
