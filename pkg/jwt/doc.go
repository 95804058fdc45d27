// Package jwt signs and validates the bearer tokens of the API.
//
// Tokens are HS256 with the hunter id as subject and a fixed lifetime
// (24 hours by default):
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:          cfg.JWT.Secret,
//	    Issuer:          "ascend-api",
//	    ExpirationHours: 24,
//	})
//
//	token, err := service.Sign(hunter.ID, hunter.HunterName)
//
//	claims, err := service.Validate(token)
//	if err != nil {
//	    // ErrTokenExpired, ErrInvalidSignature or ErrInvalidToken
//	}
//	hunterID := claims.Subject
package jwt
