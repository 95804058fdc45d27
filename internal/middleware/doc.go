// Package middleware provides the HTTP middleware of the Ascend API.
//
// The server wraps every request in
//
//	Recovery -> RequestID -> Logger -> metrics -> CORS -> MaxBodySize -> RateLimit
//
// and bearer-protected routes additionally in Auth, which stores the token
// subject (the hunter id) in the request context:
//
//	hunterID := middleware.GetHunterID(r.Context())
//
// RateLimit keys on the hunter id when present and on the client IP
// otherwise. Rejected requests get a 429 problem response with Retry-After.
package middleware
