package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pocketledger/backend/internal/config"
	"github.com/pocketledger/backend/internal/controllers/healthz"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/gateway"
	"github.com/pocketledger/backend/internal/kv"
	"github.com/pocketledger/backend/internal/router"
	"github.com/pocketledger/backend/internal/store"
	"github.com/pocketledger/backend/internal/users"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, the environment wins either way
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	ledger, cleanup, err := openLedger(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer cleanup()

	userStore, userCleanup, err := openUserStore(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer userCleanup()

	r, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r, cfg, v1.NewController(ledger), healthz.NewController(ledger), gateway.New(userStore, cfg))

	if !cfg.OAuthConfigured() {
		log.Warn().Msg("Google OAuth is not configured, login is disabled")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// openLedger opens the configured key-value backend for the ledger store.
func openLedger(cfg config.Config) (*store.Store, func(), error) {
	if cfg.DBBackend == config.BackendMemory {
		log.Info().Msg("ledger data is stored in memory and lost on restart")
		return store.New(kv.NewMemory()), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
		return nil, nil, err
	}

	sqlite, err := kv.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("path", cfg.DBPath).Msg("ledger database opened")

	return store.New(sqlite), func() {
		if err := sqlite.Close(); err != nil {
			log.Error().Msg(err.Error())
		}
	}, nil
}

// openUserStore connects the gateway user store. MongoDB is used when a
// URI is configured, the in-memory store otherwise.
func openUserStore(cfg config.Config) (users.Store, func(), error) {
	if cfg.MongoURI == "" {
		log.Info().Msg("user records are stored in memory and lost on restart")
		return users.NewMemory(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongo, err := users.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("database", cfg.MongoDBName).Msg("connected to MongoDB")

	return mongo, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := mongo.Disconnect(ctx); err != nil {
			log.Error().Msg(err.Error())
		}
	}, nil
}
