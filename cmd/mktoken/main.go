// Command mktoken mints an access token for the admin API. Identity
// management lives outside this backend, so operators issue tokens with
// this tool and hand them to the admin frontend or to curl.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sistema-rh/planilla-backend-go/internal/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "admin", "token subject")
	company := flag.String("company", "", "tenant company id (required)")
	expiration := flag.String("expiration", "", "token lifetime, defaults to JWT_ACCESS_EXPIRATION_TIME or 1h")
	flag.Parse()

	if *company == "" {
		fmt.Fprintln(os.Stderr, "mktoken: -company is required")
		os.Exit(1)
	}

	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "mktoken: JWT_SECRET_KEY is not set")
		os.Exit(1)
	}

	lifetime := *expiration
	if lifetime == "" {
		lifetime = os.Getenv("JWT_ACCESS_EXPIRATION_TIME")
	}
	if lifetime == "" {
		lifetime = "1h"
	}

	svc := jwt.NewService(secret, lifetime)
	token, expiresAt, err := svc.GenerateAccessToken(*subject, *company)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mktoken:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
