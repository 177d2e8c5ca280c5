package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopstack/core/internal/adapters/storage"
	"github.com/shopstack/core/internal/application/services"
	"github.com/shopstack/core/internal/domain/entities"
	"github.com/shopstack/core/internal/infrastructure/config"
	"github.com/shopstack/core/internal/infrastructure/datastore"
	"github.com/shopstack/core/internal/infrastructure/logger"
	"github.com/shopstack/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ShopStack API server",
		Long:  "Start the ShopStack API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory, collection files and upload directory",
		Run: func(cmd *cobra.Command, args []string) {
			runInit()
		},
	}
}

// NewUserCommand creates the user management command
func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
		Long:  "Create and manage users in the flat-file store",
	}

	createUserCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			if username == "" || email == "" || password == "" {
				log.Fatal("Username, email and password are required")
			}

			createUser(username, email, password)
		},
	}

	createUserCmd.Flags().String("username", "", "Username (required)")
	createUserCmd.Flags().String("email", "", "User email (required)")
	createUserCmd.Flags().String("password", "", "User password (required)")

	userCmd.AddCommand(createUserCmd)
	return userCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ShopStack version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ShopStack Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	workspace, err := datastore.New(cfg.Storage)
	if err != nil {
		appLogger.Fatal("Failed to prepare data directory", "error", err)
	}

	srv, err := server.New(cfg, workspace, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting ShopStack API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", "error", err)
	}
}

func runInit() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	workspace, err := datastore.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	for _, path := range []string{workspace.ProductsPath(), workspace.BasketPath(), workspace.UsersPath()} {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("exists  %s\n", path)
			continue
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			log.Fatalf("Failed to create %s: %v", path, err)
		}
		fmt.Printf("created %s\n", path)
	}

	fmt.Printf("upload dir %s\n", workspace.UploadPath())
}

func createUser(username, email, password string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	workspace, err := datastore.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	userRepo := storage.NewUserRepository(workspace.UsersPath(), appLogger)
	accounts := services.NewAccountService(userRepo, appLogger)

	// Same uniqueness rule as the registration endpoint
	if err := accounts.Register(context.Background(), username, email, password); err != nil {
		if errors.Is(err, entities.ErrUserExists) {
			log.Fatalf("User %s already exists", username)
		}
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User %s created\n", username)
}
