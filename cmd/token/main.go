// Command token prints a bearer token accepted by the API when JWT_SECRET_KEY is set.
package main

import (
	"flag"
	"fmt"
	"os"

	"fintrack/pkg/auth"
	"fintrack/pkg/config"
)

func main() {
	subject := flag.String("sub", "dashboard", "token subject")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET_KEY is not set; the API accepts unauthenticated requests")
		os.Exit(1)
	}

	token, err := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration).GenerateToken(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
