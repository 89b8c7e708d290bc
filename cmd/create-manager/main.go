package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/service"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/config"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/db/postgres"
	"github.com/photosbyzee/studio-portal/pkg/logger"
	"github.com/photosbyzee/studio-portal/pkg/token"
)

// create-manager provisions the studio manager account. Managers are never
// created through the public registration endpoint.
func main() {
	email := flag.String("email", "", "manager email (required)")
	password := flag.String("password", "", "manager password (required, min 6 characters)")
	firstName := flag.String("first-name", "", "manager first name")
	lastName := flag.String("last-name", "", "manager last name")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "password must be at least 6 characters")
		os.Exit(2)
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	tokens, err := token.NewManager(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager init failed")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}

	auth := service.NewAuthService(postgres.NewUserRepository(db), tokens)

	user, err := auth.CreateManager(ctx, *email, *password, *firstName, *lastName)
	if errors.Is(err, domain.ErrEmailTaken) {
		fmt.Printf("a user with email %s already exists\n", *email)
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("create manager failed")
	}

	fmt.Printf("manager account created: %s (%s)\n", user.Email, user.ID)
}
