// Command token mints a signed bearer token for local development against
// the approvals API. Production tokens come from the identity provider.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"approvals/internal/config"
	"approvals/internal/identity"
	"approvals/internal/uuid"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var subject, email, issuer, secret string
	var ttl time.Duration

	flagSet := pflag.NewFlagSet("token", pflag.ContinueOnError)
	flagSet.StringVar(&subject, "subject", "", "subject id (default: a fresh UUID)")
	flagSet.StringVar(&email, "email", "", "email claim (required)")
	flagSet.StringVar(&issuer, "issuer", "", "iss claim (default: JWT_ISSUER)")
	flagSet.StringVar(&secret, "secret", "", "HS256 signing secret (default: JWT_SECRET)")
	flagSet.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if email == "" {
		return errors.New("--email is required")
	}
	if ttl <= 0 {
		return errors.New("--ttl must be positive")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if secret == "" {
		secret = cfg.JWTSecret
	}
	if issuer == "" {
		issuer = cfg.JWTIssuer
	}
	if subject == "" {
		subject = uuid.New()
	}
	if !uuid.IsValid(subject) {
		return fmt.Errorf("--subject must be a UUID, got %q", subject)
	}

	token, err := identity.Issue(secret, issuer, subject, email, ttl)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Println(token)
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Mint a development bearer token for the approvals API.

The subject's role comes from its row in the profiles table; a subject
without a profile is treated as an ordinary user.

Usage:
  token --email <address> [flags]

Flags:
%s`, flagSet.FlagUsages())
}
