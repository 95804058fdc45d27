// Command devtoken signs a bearer token for an existing hunter so protected
// endpoints can be called with curl during development.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgo/ascend/api/pkg/jwt"
)

func main() {
	// .env is optional; flags fall back to its values
	_ = godotenv.Load()

	hunterID := flag.String("hunter", "", "Hunter record id, e.g. hunter:abc123 (required)")
	hunterName := flag.String("name", "Dev Hunter", "Hunter name carried in the token")
	secret := flag.String("secret", envOr("JWT_SECRET", "solo-leveling-secret-key-2024"), "JWT signing secret")
	issuer := flag.String("issuer", envOr("JWT_ISSUER", "ascend.forgo.software"), "JWT issuer")
	expHours := flag.Int("exp", 24, "Token expiration in hours")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if !strings.HasPrefix(*hunterID, "hunter:") {
		fmt.Fprintln(os.Stderr, "Error: -hunter must be a hunter record id (hunter:...)")
		flag.Usage()
		os.Exit(2)
	}

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:          *secret,
		Issuer:          *issuer,
		ExpirationHours: *expHours,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtService.Sign(*hunterID, *hunterName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expHours * 3600,
			"user_id":      *hunterID,
			"hunter_name":  *hunterName,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	expTime := time.Now().Add(time.Duration(*expHours) * time.Hour)
	fmt.Println("Hunter Token Generated")
	fmt.Println("======================")
	fmt.Printf("Hunter:   %s (%s)\n", *hunterID, *hunterName)
	fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/user/profile\n", token[:20]+"...")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
