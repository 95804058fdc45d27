// Package handler provides HTTP request handlers for the Ascend API.
//
// The handler package contains all HTTP endpoint implementations organized by domain.
// Each handler struct wraps the service that serves one feature area
// (authentication, quests, shop, guilds, rankings).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service it serves
//   - Methods handle specific HTTP endpoints
//   - Request bodies are decoded strictly and checked with go-playground/validator
//   - Service errors are mapped to RFC 9457 Problem Details by MapServiceError
//
// # Response Format
//
// Successful responses are wrapped as {"data": ..., "_links": {...}} by WriteData.
// Errors are written with WriteError as application/problem+json. Unexpected
// errors become a generic 500 and are logged with the request id.
//
// # Authentication
//
// Protected routes sit behind middleware.Auth, which stores the hunter id taken
// from the token subject. Handlers read it with middleware.GetHunterID.
//
// # Example Usage
//
//	quests := handler.NewQuestHandler(questService)
//	mux.Handle("POST /v1/quests/complete", auth(http.HandlerFunc(quests.Complete)))
package handler
