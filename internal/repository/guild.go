package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
)

// ErrGuildNameTaken is returned when a guild name is already in use.
var ErrGuildNameTaken = errors.New("guild name already taken")

// GuildRepository handles guild data access. Every membership change is
// written together with the acting hunter in one transaction.
type GuildRepository struct {
	db database.Database
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db database.Database) *GuildRepository {
	return &GuildRepository{db: db}
}

// GetByID retrieves a guild by ID. It returns nil, nil when absent.
func (r *GuildRepository) GetByID(ctx context.Context, id string) (*model.Guild, error) {
	if !strings.HasPrefix(id, "guild:") {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
}

// GetByName retrieves a guild by its unique name
func (r *GuildRepository) GetByName(ctx context.Context, name string) (*model.Guild, error) {
	return r.getOne(ctx, `SELECT * FROM guild WHERE name = $name LIMIT 1`, map[string]interface{}{"name": name})
}

// List returns up to limit guilds in creation order
func (r *GuildRepository) List(ctx context.Context, limit int) ([]*model.Guild, error) {
	query := `SELECT * FROM guild ORDER BY created_on ASC, id ASC LIMIT $limit`
	return r.list(ctx, query, map[string]interface{}{"limit": limit})
}

// ListTopByTotalLevel returns up to limit guilds ordered by total level
func (r *GuildRepository) ListTopByTotalLevel(ctx context.Context, limit int) ([]*model.Guild, error) {
	query := `SELECT * FROM guild ORDER BY total_level DESC, id ASC LIMIT $limit`
	return r.list(ctx, query, map[string]interface{}{"limit": limit})
}

// Create stores the guild and the leader's membership atomically. It sets
// g.ID and leader.GuildID on success.
func (r *GuildRepository) Create(ctx context.Context, g *model.Guild, leader *model.Hunter) error {
	key := newRecordKey()
	id := "guild:" + key
	prevGuild := leader.GuildID
	leader.GuildID = &id

	guildQuery := `CREATE type::thing('guild', $key) SET
		name = $name,
		description = $description,
		leader_id = $leader_id,
		leader_name = $leader_name,
		members = $members,
		member_count = $member_count,
		total_level = $total_level,
		created_on = time::now()`
	guildVars := map[string]interface{}{
		"key":          key,
		"name":         g.Name,
		"description":  g.Description,
		"leader_id":    g.LeaderID,
		"leader_name":  g.LeaderName,
		"members":      stringValues(g.Members),
		"member_count": g.MemberCount,
		"total_level":  g.TotalLevel,
	}
	hunterQuery, hunterVars := saveHunterStatement(leader, true)

	err := database.NewAtomicBatch().
		Add(guildQuery, guildVars).
		Add(hunterQuery, hunterVars).
		Execute(ctx, r.db)
	if err != nil {
		leader.GuildID = prevGuild
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: %w", database.ErrDuplicate, ErrGuildNameTaken)
		}
		return err
	}

	g.ID = id
	return nil
}

// AddMember appends the hunter to the guild, bumps the counters and saves
// the hunter with its new guild reference.
func (r *GuildRepository) AddMember(ctx context.Context, g *model.Guild, h *model.Hunter) error {
	hunterQuery, hunterVars := saveHunterStatement(h, true)

	return database.NewAtomicBatch().
		Add(`UPDATE type::record($gid) SET
			members += $hid,
			member_count += 1,
			total_level += $level`, map[string]interface{}{
			"gid":   g.ID,
			"hid":   h.ID,
			"level": h.Level,
		}).
		Add(hunterQuery, hunterVars).
		Execute(ctx, r.db)
}

// RemoveMember removes a non-leader hunter from the guild and saves the
// hunter with its guild reference cleared.
func (r *GuildRepository) RemoveMember(ctx context.Context, g *model.Guild, h *model.Hunter) error {
	hunterQuery, hunterVars := saveHunterStatement(h, true)

	return database.NewAtomicBatch().
		Add(`UPDATE type::record($gid) SET
			members -= $hid,
			member_count -= 1,
			total_level -= $level`, map[string]interface{}{
			"gid":   g.ID,
			"hid":   h.ID,
			"level": h.Level,
		}).
		Add(hunterQuery, hunterVars).
		Execute(ctx, r.db)
}

// Disband deletes the guild, clears the reference of every member and
// saves the leader.
func (r *GuildRepository) Disband(ctx context.Context, g *model.Guild, leader *model.Hunter) error {
	hunterQuery, hunterVars := saveHunterStatement(leader, true)

	return database.NewAtomicBatch().
		Add(`DELETE type::record($gid)`, map[string]interface{}{"gid": g.ID}).
		Add(`UPDATE hunter SET guild_id = NONE WHERE guild_id = $gid`, map[string]interface{}{"gid": g.ID}).
		Add(hunterQuery, hunterVars).
		Execute(ctx, r.db)
}

func (r *GuildRepository) getOne(ctx context.Context, query string, vars map[string]interface{}) (*model.Guild, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := firstRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseGuild(data)
}

func (r *GuildRepository) list(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Guild, error) {
	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := allRecords(results)
	guilds := make([]*model.Guild, 0, len(records))
	for _, data := range records {
		g, err := parseGuild(data)
		if err != nil {
			return nil, err
		}
		guilds = append(guilds, g)
	}
	return guilds, nil
}

func parseGuild(data map[string]interface{}) (*model.Guild, error) {
	var g model.Guild
	if err := decodeRecord(data, &g); err != nil {
		return nil, err
	}
	if g.Members == nil {
		g.Members = []string{}
	}
	return &g, nil
}
