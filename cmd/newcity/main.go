package main

import (
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"github.com/newcity-hq/newcity-api/internal/api"
	"github.com/newcity-hq/newcity-api/internal/auth"
	"github.com/newcity-hq/newcity-api/internal/config"
	"github.com/newcity-hq/newcity-api/internal/repository"
	"github.com/newcity-hq/newcity-api/internal/service"
)

// Version will be set during build with ldflags
var Version = "0.3.0"

func main() {
	root := &cobra.Command{
		Use:     "newcity",
		Short:   "newcity social events API",
		Version: Version,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := repository.NewDatabase(cfg)
			if err != nil {
				return err
			}

			var cache *redis.Client
			if cfg.Redis.Addr != "" {
				cache = redis.NewClient(&redis.Options{
					Addr:     cfg.Redis.Addr,
					Password: cfg.Redis.Password,
					DB:       cfg.Redis.DB,
				})
			}

			verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cache, cfg.Auth.SessionTTL)

			users := repository.NewUserRepository(db)
			events := repository.NewEventRepository(db)
			rsvps := repository.NewRSVPRepository(db)

			userHandler := api.NewUserHandler(
				service.NewUserService(users),
				service.NewMatchService(users),
			)
			eventHandler := api.NewEventHandler(service.NewEventService(users, events))
			rsvpHandler := api.NewRSVPHandler(service.NewRSVPService(users, events, rsvps))

			router := api.NewRouter(cfg, verifier, userHandler, eventHandler, rsvpHandler)
			return router.Run(cfg.ListenAddr())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// NewDatabase migrates on connect.
			if _, err := repository.NewDatabase(cfg); err != nil {
				return err
			}

			log.Println("migrations applied")
			return nil
		},
	}
}
