// Command issuetoken prints a Bearer token for a user, signed with JWT_SECRET.
// It is meant for local development against a server started with auth enabled.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"explorewithme/config"
	"explorewithme/internal/adapters/auth"
)

func main() {
	userID := flag.Int64("user", 0, "user id to put in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID <= 0 {
		log.Fatal("-user must be a positive id")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.AuthEnabled() {
		log.Fatal("JWT_SECRET is not set")
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*userID, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
