// Package helpers provides test utility functions for the Ascend API.
//
// # JWT Helpers
//
// Issue tokens the test server accepts:
//
//	jwtHelper := helpers.NewJWTHelper(t)
//	auth := middleware.Auth(jwtHelper.Service())
//	expired := jwtHelper.GenerateExpiredToken(t, hunter)
//
// # Request Helpers
//
// Build and serve requests against a handler:
//
//	rr := helpers.NewRequest(t, http.MethodPost, "/v1/quests/complete").
//	    WithAuth(jwtHelper, hunter).
//	    WithBody(map[string]string{"quest_id": id}).
//	    Do(router)
//
// # Assertion Helpers
//
// Common test assertions:
//
//	helpers.AssertStatus(t, rr, http.StatusOK)
//	helpers.AssertProblemDetails(t, rr, http.StatusNotFound, model.ErrCodeNotFound)
//	helpers.AssertValidationError(t, rr, "stat_name")
//	helpers.AssertRecordNotExists(t, db, "guild:abc")
package helpers
