package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
)

// DailyQuestRepository handles daily quest data access. Each hunter has at
// most one daily quest per UTC date, enforced by a unique index.
type DailyQuestRepository struct {
	db database.Database
}

// NewDailyQuestRepository creates a new daily quest repository
func NewDailyQuestRepository(db database.Database) *DailyQuestRepository {
	return &DailyQuestRepository{db: db}
}

// GetForDate returns the hunter's daily quest for a date, or nil, nil.
func (r *DailyQuestRepository) GetForDate(ctx context.Context, userID, date string) (*model.DailyQuest, error) {
	query := `SELECT * FROM daily_quest WHERE user_id = $user_id AND date = $date LIMIT 1`
	vars := map[string]interface{}{
		"user_id": userID,
		"date":    date,
	}
	return r.getOne(ctx, query, vars)
}

// GetByQuestID returns the hunter's daily quest with the given public id,
// or nil, nil.
func (r *DailyQuestRepository) GetByQuestID(ctx context.Context, userID, questID string) (*model.DailyQuest, error) {
	query := `SELECT * FROM daily_quest WHERE quest_id = $quest_id AND user_id = $user_id LIMIT 1`
	vars := map[string]interface{}{
		"quest_id": questID,
		"user_id":  userID,
	}
	return r.getOne(ctx, query, vars)
}

// Create stores a new daily quest. q.ID is the public quest id and must be
// set by the caller. A second quest for the same hunter and date returns
// database.ErrDuplicate.
func (r *DailyQuestRepository) Create(ctx context.Context, q *model.DailyQuest) error {
	fields := dailyQuestFields(q)
	query := fmt.Sprintf("CREATE daily_quest SET %s", setClause(fields, "created_on = time::now()"))

	result, err := r.db.QueryOne(ctx, query, fields)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: daily quest already exists for %s", database.ErrDuplicate, q.Date)
		}
		return err
	}

	data, err := firstRecord(result)
	if err != nil {
		return err
	}
	q.CreatedOn = getTime(data, "created_on")
	return nil
}

// Complete marks the quest completed and saves the hunter in one transaction.
func (r *DailyQuestRepository) Complete(ctx context.Context, q *model.DailyQuest, h *model.Hunter) error {
	hunterQuery, hunterVars := saveHunterStatement(h, false)

	return database.NewAtomicBatch().
		Add(`UPDATE daily_quest SET is_completed = true, exercises = $exercises
			WHERE quest_id = $quest_id AND user_id = $user_id`, map[string]interface{}{
			"exercises": exerciseValues(q.Exercises),
			"quest_id":  q.ID,
			"user_id":   q.UserID,
		}).
		Add(hunterQuery, hunterVars).
		Execute(ctx, r.db)
}

func (r *DailyQuestRepository) getOne(ctx context.Context, query string, vars map[string]interface{}) (*model.DailyQuest, error) {
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
	return parseDailyQuest(data)
}

func dailyQuestFields(q *model.DailyQuest) map[string]interface{} {
	return map[string]interface{}{
		"quest_id":         q.ID,
		"user_id":          q.UserID,
		"date":             q.Date,
		"name":             q.Name,
		"description":      q.Description,
		"quest_type":       string(q.QuestType),
		"exercises":        exerciseValues(q.Exercises),
		"exp_reward":       q.ExpReward,
		"gold_reward":      q.GoldReward,
		"time_limit_hours": q.TimeLimitHours,
		"difficulty":       string(q.Difficulty),
		"is_completed":     q.IsCompleted,
		"deadline":         formatTime(q.Deadline),
	}
}

func parseDailyQuest(data map[string]interface{}) (*model.DailyQuest, error) {
	// The public id is the quest_id field, not the record id
	data["id"] = getString(data, "quest_id")

	var q model.DailyQuest
	if err := decodeRecord(data, &q); err != nil {
		return nil, err
	}
	if q.Exercises == nil {
		q.Exercises = []model.Exercise{}
	}
	return &q, nil
}
