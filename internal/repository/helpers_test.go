package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

type recordingDB struct {
	queries []string
	vars    []map[string]interface{}
	result  interface{}
	err     error
}

func (r *recordingDB) Connect(ctx context.Context) error { return nil }
func (r *recordingDB) Close() error                      { return nil }
func (r *recordingDB) Ping(ctx context.Context) error    { return nil }

func (r *recordingDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	r.queries = append(r.queries, query)
	r.vars = append(r.vars, vars)
	if r.err != nil {
		return nil, r.err
	}
	return []interface{}{map[string]interface{}{"status": "OK", "result": []interface{}{r.result}}}, nil
}

func (r *recordingDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	if _, err := r.Query(ctx, query, vars); err != nil {
		return nil, err
	}
	if r.result == nil {
		return nil, database.ErrNotFound
	}
	return r.result, nil
}

func (r *recordingDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := r.Query(ctx, query, vars)
	return err
}

// varEndingWith returns the value of the namespaced variable whose original
// name is suffix.
func varEndingWith(vars map[string]interface{}, suffix string) (interface{}, bool) {
	for k, v := range vars {
		if strings.HasSuffix(k, "_"+suffix) {
			return v, true
		}
	}
	return nil, false
}

func testHunter() *model.Hunter {
	h := model.NewHunter("sung@example.com", "SungJinwoo")
	h.ID = "hunter:abc123"
	return h
}

// ============================================================================
// setClause
// ============================================================================

func TestSetClause_SortedWithLiterals(t *testing.T) {
	t.Parallel()

	got := setClause(map[string]interface{}{"gold": 1, "level": 2, "email": "x"}, "updated_on = time::now()")
	want := "email = $email, gold = $gold, level = $level, updated_on = time::now()"

	if got != want {
		t.Errorf("setClause() = %q, want %q", got, want)
	}
}

// ============================================================================
// Record decoding
// ============================================================================

func TestConvertSurrealID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "hunter:abc", "hunter:abc"},
		{"record id", models.RecordID{Table: "guild", ID: "xyz"}, "guild:xyz"},
		{"record id pointer", &models.RecordID{Table: "guild", ID: "xyz"}, "guild:xyz"},
		{"map", map[string]interface{}{"tb": "hunter", "id": "k1"}, "hunter:k1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertSurrealID(tt.in); got != tt.want {
				t.Errorf("convertSurrealID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstRecord_EmptyResultIsNotFound(t *testing.T) {
	t.Parallel()

	_, err := firstRecord([]interface{}{map[string]interface{}{"status": "OK", "result": []interface{}{}}})
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = firstRecord(nil)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expected ErrNotFound for nil, got %v", err)
	}
}

func TestParseHunter_DriverTypes(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	started := created.Add(time.Hour)
	raw := map[interface{}]interface{}{
		"id":          models.RecordID{Table: "hunter", ID: "abc123"},
		"email":       "sung@example.com",
		"hunter_name": "SungJinwoo",
		"hash":        "$2a$12$hash",
		"level":       uint64(7),
		"experience":  uint64(12),
		"rank":        "E",
		"gold":        uint64(340),
		"title":       "Novato",
		"stats": map[interface{}]interface{}{
			"strength": uint64(13), "endurance": uint64(10), "agility": uint64(10), "vitality": uint64(11),
		},
		"dungeons_completed":  map[interface{}]interface{}{"E": uint64(2)},
		"shadows":             []interface{}{"shadow_igris"},
		"training_start_time": started.Format(time.RFC3339Nano),
		"punishment_quests": []interface{}{
			map[interface{}]interface{}{
				"id": "punishment_1a2b3c4d", "name": "Castigo", "exp_reward": uint64(10),
				"quest_type": "punishment", "created_at": created.Format(time.RFC3339Nano),
				"exercises": []interface{}{},
			},
		},
		"guild_id":   "guild:g1",
		"created_on": models.CustomDateTime{Time: created},
	}

	data, err := firstRecord(raw)
	if err != nil {
		t.Fatalf("firstRecord() error = %v", err)
	}
	h, err := parseHunter(data)
	if err != nil {
		t.Fatalf("parseHunter() error = %v", err)
	}

	if h.ID != "hunter:abc123" {
		t.Errorf("expected id hunter:abc123, got %q", h.ID)
	}
	if h.Hash == nil || *h.Hash != "$2a$12$hash" {
		t.Error("expected hash to be extracted")
	}
	if h.Level != 7 || h.Gold != 340 || h.Stats.Strength != 13 {
		t.Errorf("unexpected numeric fields: %+v", h)
	}
	if h.DungeonsCompleted[model.RankE] != 2 || h.DungeonsCompleted[model.RankS] != 0 {
		t.Errorf("unexpected dungeon counters: %v", h.DungeonsCompleted)
	}
	if len(h.Achievements) != 0 || h.Achievements == nil {
		t.Error("expected normalized empty achievements")
	}
	if h.TrainingStartTime == nil || !h.TrainingStartTime.Equal(started) {
		t.Errorf("unexpected training start %v", h.TrainingStartTime)
	}
	if len(h.PunishmentQuests) != 1 || h.PunishmentQuests[0].ID != "punishment_1a2b3c4d" {
		t.Errorf("unexpected punishments: %+v", h.PunishmentQuests)
	}
	if !h.InGuild() || *h.GuildID != "guild:g1" {
		t.Error("expected guild reference")
	}
	if !h.CreatedOn.Equal(created) {
		t.Errorf("expected created_on %v, got %v", created, h.CreatedOn)
	}
}

func TestParseDailyQuest_UsesQuestIDAsPublicID(t *testing.T) {
	t.Parallel()

	q, err := parseDailyQuest(map[string]interface{}{
		"id":       "daily_quest:internal",
		"quest_id": "5f0e6a52-8f59-4c1e-9e1b-1c2d3e4f5a6b",
		"user_id":  "hunter:abc",
		"date":     "2026-03-01",
	})
	if err != nil {
		t.Fatalf("parseDailyQuest() error = %v", err)
	}
	if q.ID != "5f0e6a52-8f59-4c1e-9e1b-1c2d3e4f5a6b" {
		t.Errorf("expected quest_id as id, got %q", q.ID)
	}
	if q.Exercises == nil {
		t.Error("expected non-nil exercises")
	}
}

// ============================================================================
// Hunter writes
// ============================================================================

func TestHunterSave_NeverWritesGuild(t *testing.T) {
	t.Parallel()

	db := &recordingDB{}
	repo := NewHunterRepository(db)
	h := testHunter()
	gid := "guild:g1"
	h.GuildID = &gid

	if err := repo.Save(context.Background(), h); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if strings.Contains(db.queries[0], "guild_id") {
		t.Errorf("save should not touch guild_id: %s", db.queries[0])
	}
	if db.vars[0]["id"] != "hunter:abc123" {
		t.Errorf("expected id var, got %v", db.vars[0]["id"])
	}
}

func TestHunterCreate_DuplicateNameIsClassified(t *testing.T) {
	t.Parallel()

	db := &recordingDB{err: fmt.Errorf("%w: Database index `hunter_name_idx` already contains 'SungJinwoo'", database.ErrDuplicate)}
	repo := NewHunterRepository(db)

	err := repo.Create(context.Background(), model.NewHunter("a@b.co", "SungJinwoo"))

	if !errors.Is(err, ErrHunterNameTaken) || !errors.Is(err, database.ErrDuplicate) {
		t.Errorf("expected hunter name duplicate, got %v", err)
	}
}

func TestHunterCreate_DuplicateEmailIsClassified(t *testing.T) {
	t.Parallel()

	db := &recordingDB{err: fmt.Errorf("%w: Database index `hunter_email_idx` already contains 'a@b.co'", database.ErrDuplicate)}
	repo := NewHunterRepository(db)

	err := repo.Create(context.Background(), model.NewHunter("a@b.co", "SungJinwoo"))

	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected email duplicate, got %v", err)
	}
}

func TestHunterGetByID_RejectsOtherTables(t *testing.T) {
	t.Parallel()

	db := &recordingDB{}
	repo := NewHunterRepository(db)

	h, err := repo.GetByID(context.Background(), "guild:g1")
	if err != nil || h != nil {
		t.Errorf("expected nil, nil; got %v, %v", h, err)
	}
	if len(db.queries) != 0 {
		t.Error("expected no query for a foreign record id")
	}
}

// ============================================================================
// Guild transactions
// ============================================================================

func TestGuildCreate_WritesGuildAndLeaderInOneTransaction(t *testing.T) {
	t.Parallel()

	db := &recordingDB{}
	repo := NewGuildRepository(db)
	leader := testHunter()
	g := &model.Guild{
		Name:        "Ahjin",
		LeaderID:    leader.ID,
		LeaderName:  leader.HunterName,
		Members:     []string{leader.ID},
		MemberCount: 1,
		TotalLevel:  leader.Level,
	}

	if err := repo.Create(context.Background(), g, leader); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(db.queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(db.queries))
	}
	q := db.queries[0]
	if !strings.HasPrefix(q, "BEGIN TRANSACTION;") || !strings.Contains(q, "CREATE type::thing('guild'") {
		t.Errorf("unexpected transaction: %s", q)
	}
	if !strings.HasPrefix(g.ID, "guild:") {
		t.Errorf("expected guild id, got %q", g.ID)
	}
	if v, ok := varEndingWith(db.vars[0], "guild_id"); !ok || v != g.ID {
		t.Errorf("expected leader guild_id %q, got %v", g.ID, v)
	}
	if !leader.InGuild() || *leader.GuildID != g.ID {
		t.Error("expected leader guild reference to be set")
	}
}

func TestGuildCreate_FailureRestoresLeader(t *testing.T) {
	t.Parallel()

	db := &recordingDB{err: fmt.Errorf("%w: Database index `guild_name_idx` already contains 'Ahjin'", database.ErrDuplicate)}
	repo := NewGuildRepository(db)
	leader := testHunter()

	err := repo.Create(context.Background(), &model.Guild{Name: "Ahjin"}, leader)

	if !errors.Is(err, ErrGuildNameTaken) {
		t.Errorf("expected ErrGuildNameTaken, got %v", err)
	}
	if leader.InGuild() {
		t.Error("leader should not keep a guild reference after failure")
	}
}

func TestGuildRemoveMember_ClearsReference(t *testing.T) {
	t.Parallel()

	db := &recordingDB{}
	repo := NewGuildRepository(db)
	h := testHunter()
	h.Level = 12

	err := repo.RemoveMember(context.Background(), &model.Guild{ID: "guild:g1"}, h)
	if err != nil {
		t.Fatalf("RemoveMember() error = %v", err)
	}

	q := db.queries[0]
	if !strings.Contains(q, "members -= $") || !strings.Contains(q, "guild_id = NONE") {
		t.Errorf("unexpected transaction: %s", q)
	}
	if v, ok := varEndingWith(db.vars[0], "level"); !ok || v != 12 {
		t.Errorf("expected level 12, got %v", v)
	}
}

func TestGuildDisband_ClearsEveryMember(t *testing.T) {
	t.Parallel()

	db := &recordingDB{}
	repo := NewGuildRepository(db)

	if err := repo.Disband(context.Background(), &model.Guild{ID: "guild:g1"}, testHunter()); err != nil {
		t.Fatalf("Disband() error = %v", err)
	}

	q := db.queries[0]
	if !strings.Contains(q, "DELETE type::record(") || !strings.Contains(q, "UPDATE hunter SET guild_id = NONE WHERE guild_id = $") {
		t.Errorf("unexpected transaction: %s", q)
	}
}
