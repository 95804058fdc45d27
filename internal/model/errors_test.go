package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// ProblemDetails
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{Status: http.StatusNotFound, Title: "Not Found", Detail: "quest not found"}

	msg := pd.Error()
	for _, want := range []string{"404", "Not Found", "quest not found"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
}

func TestProblemDetails_WriteJSON_SetsHeadersAndBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBadRequestError("invalid input").WriteJSON(rr)

	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", ct)
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var result ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if result.Detail != "invalid input" {
		t.Errorf("expected detail 'invalid input', got %q", result.Detail)
	}
}

// ============================================================================
// Constructors
// ============================================================================

func TestConstructors_StatusAndCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pd     *ProblemDetails
		status int
		code   ErrorCode
	}{
		{"unauthorized", NewUnauthorizedError("token expired"), http.StatusUnauthorized, ErrCodeUnauthorized},
		{"not found", NewNotFoundError("guild"), http.StatusNotFound, ErrCodeNotFound},
		{"conflict", NewConflictError("hunter name taken"), http.StatusConflict, ErrCodeConflict},
		{"internal", NewInternalError(""), http.StatusInternalServerError, ErrCodeInternal},
		{"bad request", NewBadRequestError("bad json"), http.StatusBadRequest, ErrCodeInvalidInput},
		{"rate limited", NewRateLimitError(30), http.StatusTooManyRequests, ErrCodeRateLimited},
		{"level gate", NewLevelGateError(20, 5), http.StatusUnprocessableEntity, ErrCodeLevelTooLow},
		{"insufficient", NewInsufficientError("gold", 500, 100), http.StatusUnprocessableEntity, ErrCodeLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.pd.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, tt.pd.Status)
			}
			if tt.pd.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, tt.pd.Code)
			}
			if !strings.HasPrefix(tt.pd.Type, "https://ascend-api.forgo.software/errors/") {
				t.Errorf("unexpected type URI %q", tt.pd.Type)
			}
		})
	}
}

func TestNewNotFoundError_FormatsResourceName(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("guild")

	if pd.Detail != "guild not found" {
		t.Errorf("expected detail 'guild not found', got %q", pd.Detail)
	}
}

func TestNewInternalError_EmptyDetail_UsesDefault(t *testing.T) {
	t.Parallel()

	if pd := NewInternalError(""); pd.Detail != "An unexpected error occurred" {
		t.Errorf("expected default detail message, got %q", pd.Detail)
	}
}

func TestNewValidationError_MultipleFields_SummarizesCount(t *testing.T) {
	t.Parallel()

	pd := NewValidationError([]FieldError{
		{Field: "email", Message: "required"},
		{Field: "hunter_name", Message: "too short"},
		{Field: "password", Message: "too short"},
	})

	if len(pd.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d", len(pd.Errors))
	}
	if !strings.HasPrefix(pd.Detail, "email: required") {
		t.Errorf("detail should lead with the first field, got %q", pd.Detail)
	}
	if !strings.Contains(pd.Detail, "2 more errors") {
		t.Errorf("detail should mention count of additional errors, got %q", pd.Detail)
	}
}

func TestNewValidationError_EmptyErrors_ReturnsDefaultMessage(t *testing.T) {
	t.Parallel()

	pd := NewValidationError(nil)

	if pd.Detail != "One or more fields failed validation" {
		t.Errorf("expected default detail message, got %q", pd.Detail)
	}
}

func TestNewLevelGateError_CarriesRequiredLevel(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewLevelGateError(60, 12).WriteJSON(rr)

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["required_level"] != float64(60) {
		t.Errorf("expected required_level 60, got %v", body["required_level"])
	}
	if body["current"] != float64(12) {
		t.Errorf("expected current 12, got %v", body["current"])
	}
}

func TestNewInsufficientError_ReportsAmounts(t *testing.T) {
	t.Parallel()

	pd := NewInsufficientError("gold", 1500, 200)

	if pd.Limit == nil || *pd.Limit != 1500 {
		t.Errorf("expected limit 1500, got %v", pd.Limit)
	}
	if pd.Current == nil || *pd.Current != 200 {
		t.Errorf("expected current 200, got %v", pd.Current)
	}
	if !strings.Contains(pd.Detail, "gold") {
		t.Errorf("detail should name the resource, got %q", pd.Detail)
	}
}

// ============================================================================
// Error Code Constants
// ============================================================================

func TestErrorCodes_CorrectRanges(t *testing.T) {
	t.Parallel()

	ranges := map[int][]ErrorCode{
		1000: {ErrCodeUnauthorized},
		3000: {ErrCodeNotFound, ErrCodeConflict},
		4000: {ErrCodeValidation, ErrCodeInvalidInput, ErrCodeLimitExceeded, ErrCodeLevelTooLow, ErrCodeRateLimited},
		5000: {ErrCodeInternal},
	}

	seen := make(map[ErrorCode]bool)
	for base, codes := range ranges {
		for _, code := range codes {
			if int(code) < base || int(code) >= base+1000 {
				t.Errorf("error code %d should be in the %dxxx range", code, base/1000)
			}
			if seen[code] {
				t.Errorf("duplicate error code %d", code)
			}
			seen[code] = true
		}
	}
}
