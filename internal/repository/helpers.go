package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/forgo/ascend/api/internal/database"
	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// newRecordKey returns a random record key for ids that must be known
// before the record is written (guilds created inside a transaction).
func newRecordKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// isUniqueConstraintError checks if an error is a unique index violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, database.ErrDuplicate) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "already contains") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// setClause renders "a = $a, b = $b" for the given fields in key order and
// appends any literal assignments (e.g. "updated_on = time::now()").
func setClause(fields map[string]interface{}, literals ...string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+len(literals))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s = $%s", k, k))
	}
	parts = append(parts, literals...)
	return strings.Join(parts, ", ")
}

// withID copies fields and adds the record id under "id".
func withID(id string, fields map[string]interface{}) map[string]interface{} {
	vars := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		vars[k] = v
	}
	vars["id"] = id
	return vars
}

// formatTime renders a timestamp for storage inside nested documents.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// formatTimePtr renders an optional timestamp; nil stores NULL.
func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// firstRecord unwraps a QueryOne result or a Query result into the first
// record map. It returns database.ErrNotFound for an empty result.
func firstRecord(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	// Navigate through SurrealDB response structure {status, result}
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			inner := resp["result"]
			if arr, ok := inner.([]interface{}); ok {
				if len(arr) == 0 {
					return nil, database.ErrNotFound
				}
				inner = arr[0]
			}
			result = inner
		}
	}

	data, ok := normalizeValue(result).(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return data, nil
}

// allRecords extracts every record of the first statement of a Query result.
func allRecords(results []interface{}) []map[string]interface{} {
	if len(results) == 0 {
		return nil
	}

	var rows []interface{}
	if resp, ok := results[0].(map[string]interface{}); ok {
		if arr, ok := resp["result"].([]interface{}); ok {
			rows = arr
		}
	}

	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if m, ok := normalizeValue(row).(map[string]interface{}); ok {
			records = append(records, m)
		}
	}
	return records
}

// normalizeValue converts driver types into JSON-friendly values: record ids
// become "table:key" strings, datetimes become time.Time, and CBOR maps with
// interface keys become string-keyed maps.
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case models.RecordID:
		return convertSurrealID(t)
	case *models.RecordID:
		if t == nil {
			return nil
		}
		return convertSurrealID(*t)
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t == nil {
			return nil
		}
		return t.Time
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = normalizeValue(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	}
	return v
}

// decodeRecord converts a normalized record map into a model via JSON.
func decodeRecord(data map[string]interface{}, out interface{}) error {
	if id, ok := data["id"]; ok {
		data["id"] = convertSurrealID(id)
	}
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, out)
}

// convertSurrealID converts a SurrealDB ID (which may be a complex object) to a string
func convertSurrealID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "hunter", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			return fmt.Sprintf("%s:%v", tb, v["id"])
		}
	}
	return fmt.Sprintf("%v", id)
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
