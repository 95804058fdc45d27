package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
)

// Errors returned by HunterRepository.Create for unique index violations.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrHunterNameTaken = errors.New("hunter name already taken")
)

// HunterRepository handles hunter data access
type HunterRepository struct {
	db database.Database
}

// NewHunterRepository creates a new hunter repository
func NewHunterRepository(db database.Database) *HunterRepository {
	return &HunterRepository{db: db}
}

// Create inserts a new hunter document and fills in its id and timestamps.
func (r *HunterRepository) Create(ctx context.Context, h *model.Hunter) error {
	h.Normalize()
	fields := hunterFields(h)
	if h.Hash != nil {
		fields["hash"] = *h.Hash
	}

	query := fmt.Sprintf(
		"CREATE type::thing('hunter', $key) SET %s",
		setClause(fields, "created_on = time::now()", "updated_on = time::now()"),
	)
	vars := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		vars[k] = v
	}
	vars["key"] = newRecordKey()

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			// Index names come back in the message
			if strings.Contains(err.Error(), "hunter_name_idx") {
				return fmt.Errorf("%w: %w", database.ErrDuplicate, ErrHunterNameTaken)
			}
			return fmt.Errorf("%w: %w", database.ErrDuplicate, ErrEmailTaken)
		}
		return err
	}

	data, err := firstRecord(result)
	if err != nil {
		return err
	}
	h.ID = convertSurrealID(data["id"])
	h.CreatedOn = getTime(data, "created_on")
	h.UpdatedOn = getTime(data, "updated_on")
	return nil
}

// GetByID retrieves a hunter by record id. It returns nil, nil when absent.
func (r *HunterRepository) GetByID(ctx context.Context, id string) (*model.Hunter, error) {
	if !strings.HasPrefix(id, "hunter:") {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
}

// GetByEmail retrieves a hunter by normalized email
func (r *HunterRepository) GetByEmail(ctx context.Context, email string) (*model.Hunter, error) {
	return r.getOne(ctx, `SELECT * FROM hunter WHERE email = $email LIMIT 1`, map[string]interface{}{"email": email})
}

// GetByHunterName retrieves a hunter by display name
func (r *HunterRepository) GetByHunterName(ctx context.Context, name string) (*model.Hunter, error) {
	return r.getOne(ctx, `SELECT * FROM hunter WHERE hunter_name = $name LIMIT 1`, map[string]interface{}{"name": name})
}

// Save overwrites every mutable field of the hunter document. Guild
// membership is not written here; see GuildRepository.
func (r *HunterRepository) Save(ctx context.Context, h *model.Hunter) error {
	query, vars := saveHunterStatement(h, false)
	return r.db.Execute(ctx, query, vars)
}

// ListTopByLevel returns up to limit hunters ordered by level descending.
func (r *HunterRepository) ListTopByLevel(ctx context.Context, limit int) ([]*model.Hunter, error) {
	query := `SELECT * FROM hunter ORDER BY level DESC, id ASC LIMIT $limit`
	return r.list(ctx, query, map[string]interface{}{"limit": limit})
}

// ListByGuild returns the hunters whose guild_id points at the guild.
func (r *HunterRepository) ListByGuild(ctx context.Context, guildID string) ([]*model.Hunter, error) {
	query := `SELECT * FROM hunter WHERE guild_id = $guild_id ORDER BY level DESC, id ASC`
	return r.list(ctx, query, map[string]interface{}{"guild_id": guildID})
}

func (r *HunterRepository) getOne(ctx context.Context, query string, vars map[string]interface{}) (*model.Hunter, error) {
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
	return parseHunter(data)
}

func (r *HunterRepository) list(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Hunter, error) {
	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := allRecords(results)
	hunters := make([]*model.Hunter, 0, len(records))
	for _, data := range records {
		h, err := parseHunter(data)
		if err != nil {
			return nil, err
		}
		hunters = append(hunters, h)
	}
	return hunters, nil
}

// saveHunterStatement builds the UPDATE for a hunter. includeGuild writes
// guild_id as well (NONE when the hunter has no guild).
func saveHunterStatement(h *model.Hunter, includeGuild bool) (string, map[string]interface{}) {
	h.Normalize()
	fields := hunterFields(h)
	literals := []string{"updated_on = time::now()"}
	if includeGuild {
		if h.InGuild() {
			fields["guild_id"] = *h.GuildID
		} else {
			literals = append(literals, "guild_id = NONE")
		}
	}

	query := fmt.Sprintf("UPDATE type::record($id) SET %s", setClause(fields, literals...))
	return query, withID(h.ID, fields)
}

// hunterFields maps every mutable hunter field to its stored value. Nested
// timestamps are stored as RFC 3339 strings.
func hunterFields(h *model.Hunter) map[string]interface{} {
	dungeons := make(map[string]interface{}, len(h.DungeonsCompleted))
	for rank, n := range h.DungeonsCompleted {
		dungeons[string(rank)] = n
	}

	punishments := make([]interface{}, 0, len(h.PunishmentQuests))
	for _, p := range h.PunishmentQuests {
		punishments = append(punishments, map[string]interface{}{
			"id":         p.ID,
			"name":       p.Name,
			"exercises":  exerciseValues(p.Exercises),
			"exp_reward": p.ExpReward,
			"quest_type": string(p.QuestType),
			"created_at": formatTime(p.CreatedAt),
		})
	}

	return map[string]interface{}{
		"email":       h.Email,
		"hunter_name": h.HunterName,
		"level":       h.Level,
		"experience":  h.Experience,
		"rank":        string(h.Rank),
		"gold":        h.Gold,
		"title":       h.Title,
		"stats": map[string]interface{}{
			"strength":  h.Stats.Strength,
			"endurance": h.Stats.Endurance,
			"agility":   h.Stats.Agility,
			"vitality":  h.Stats.Vitality,
		},
		"stat_points":                h.StatPoints,
		"shadows":                    stringValues(h.Shadows),
		"achievements":               stringValues(h.Achievements),
		"quests_completed":           h.QuestsCompleted,
		"total_reps":                 h.TotalReps,
		"dungeons_completed":         dungeons,
		"bosses_defeated":            stringValues(h.BossesDefeated),
		"special_missions_completed": stringValues(h.SpecialMissionsCompleted),
		"streak":                     h.Streak,
		"best_streak":                h.BestStreak,
		"last_quest_date":            h.LastQuestDate,
		"streak_shields":             h.StreakShields,
		"training_start_time":        formatTimePtr(h.TrainingStartTime),
		"punishment_quests":          punishments,
	}
}

func exerciseValues(exercises []model.Exercise) []interface{} {
	out := make([]interface{}, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, map[string]interface{}{
			"name":      e.Name,
			"reps":      e.Reps,
			"unit":      string(e.Unit),
			"stat":      string(e.Stat),
			"completed": e.Completed,
		})
	}
	return out
}

func stringValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func parseHunter(data map[string]interface{}) (*model.Hunter, error) {
	// Extract hash before decoding since Hunter.Hash has json:"-"
	var hash *string
	if h, ok := data["hash"].(string); ok {
		hash = &h
	}

	var h model.Hunter
	if err := decodeRecord(data, &h); err != nil {
		return nil, err
	}
	h.Hash = hash
	h.Normalize()
	return &h, nil
}
