package app

import (
	"context"
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtdesk/basketref/internal/config"
	"github.com/courtdesk/basketref/internal/domain/user"
	"github.com/courtdesk/basketref/internal/infrastructure/repository/postgres"
	"github.com/courtdesk/basketref/internal/infrastructure/scripts"
	"github.com/courtdesk/basketref/internal/interfaces/web"
	"github.com/courtdesk/basketref/internal/platform/logging"
	"github.com/courtdesk/basketref/internal/usecase"
)

// NewHTTPServer wires the full application and returns the server plus a
// cleanup func that releases the database pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}

	playerRepo := postgres.NewPlayerRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	clubRepo := postgres.NewClubRepository(db)
	teamRepo := postgres.NewNationalTeamRepository(db)
	leagueRepo := postgres.NewLeagueRepository(db)
	championshipRepo := postgres.NewChampionshipRepository(db)

	registry, err := scripts.Load(cfg.ScriptViewsDir, cfg.ScriptReportsDir)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load script registry: %w", err)
	}

	credentials, err := hashCredentials(cfg.Users)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	authSvc := usecase.NewAuthService(credentials)
	playerSvc := usecase.NewPlayerService(playerRepo, clubRepo, teamRepo, statsRepo)
	gameSvc := usecase.NewGameService(gameRepo, clubRepo, teamRepo, leagueRepo, championshipRepo, playerRepo, statsRepo)
	dashboardSvc := usecase.NewDashboardService(playerRepo, clubRepo, leagueRepo, gameRepo, statsRepo, gameSvc)
	consoleSvc := usecase.NewSQLConsoleService(registry, postgres.NewScriptExecutor(db))

	sessions := web.NewSessionManager(cfg.SecretKey, cfg.SessionTTL)
	renderer, err := web.NewRenderer(logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	handler := web.NewHandler(authSvc, playerSvc, gameSvc, dashboardSvc, consoleSvc, sessions, renderer, logger)
	router := web.NewRouter(handler, sessions, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// hashCredentials bcrypt-hashes configured plaintext passwords once at
// startup so login only ever compares hashes.
func hashCredentials(users []config.ConfiguredUser) ([]user.Credential, error) {
	credentials := make([]user.Credential, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		credentials = append(credentials, user.Credential{
			Username:     u.Username,
			Role:         u.Role,
			PasswordHash: hash,
		})
	}

	return credentials, nil
}
