package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/internal"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/runtime/workers"
	"chat-hub/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the engine lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Collaborators
	key, err := config.InvitationKey()
	if err != nil {
		return err
	}
	encryptor, err := auth.NewAESEncryptor(key)
	if err != nil {
		return fmt.Errorf("invitation encryptor: %w", err)
	}
	hasher := auth.NewArgon2Hasher()

	// 4. Engine wiring
	tm := repositories.NewBadgerTransactionManager(db, log, config.LimitMessages)
	registry := runtime.NewRegistry()
	notifier := runtime.NewNotifier(log, registry, config.NotifyBufferSize, config.SinkTimeout)

	invitations := services.NewInvitationService(encryptor, time.Now)
	sessions := services.NewSessionService(hasher, config.TokenValidity, time.Now)
	userService := services.NewUserService(tm, invitations, sessions, hasher)

	// 5. First-boot seed: sign-up is invitation-only, so an initial account
	// must exist before anyone can be invited. The bootstrap invitation it
	// issues is the only way into an empty instance.
	if config.AdminUsername != "" {
		admin, err := seedAdmin(tm, hasher, config.AdminUsername, config.AdminPassword)
		if err != nil {
			return fmt.Errorf("admin seed failed: %w", err)
		}
		code, err := userService.IssueUserInvitation(admin.ID, config.InvitationTTL)
		if err != nil {
			return fmt.Errorf("bootstrap invitation failed: %w", err)
		}
		log.Info("Admin account ready", "username", config.AdminUsername)
		log.Info("Bootstrap invitation issued", "inviter", config.AdminUsername, "code", code, "valid_for", config.InvitationTTL)
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Supervised notification fanout, plus the store browser when enabled
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(notifier)
	if config.DebugPort > 0 {
		sup.Add(internal.NewDebugServer(db, log, config.DebugHost, config.DebugPort, nil))
	}

	log.Info("Engine started", "at", time.Now().UTC())
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}

// seedAdmin creates the bootstrap account, or loads it when a previous boot
// already seeded it.
func seedAdmin(tm repositories.ITransactionManager, hasher auth.Hasher, username, password string) (domain.User, error) {
	if err := auth.ValidateSignUp(auth.SignUpRequest{Username: username, Password: password}); err != nil {
		return domain.User{}, err
	}
	hashed, err := hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.User{ID: uuid.New(), Username: username, PasswordHash: hashed}
	err = tm.ReadWrite(func(r repositories.Repos) error {
		return r.Users.CreateUser(user)
	})
	if stderrors.Is(err, errors.ErrUserAlreadyExists) {
		err = tm.ReadOnly(func(r repositories.Repos) error {
			var lookupErr error
			user, lookupErr = r.Users.GetUserByUsername(username)
			return lookupErr
		})
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
