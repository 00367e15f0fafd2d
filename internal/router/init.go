package router

import (
	"github.com/cybertrain-io/cybertrain/internal/application"
	"github.com/cybertrain-io/cybertrain/internal/container"
	pginfra "github.com/cybertrain-io/cybertrain/internal/infrastructure/postgres"
	handlers "github.com/cybertrain-io/cybertrain/internal/interface/http"
	"github.com/cybertrain-io/cybertrain/internal/router/modules"
)

// InitModules wires every feature module from the container singletons and
// registers it on the registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	authSvc := application.NewAuthService(
		pginfra.NewUserRepository(pool),
		jwt,
		logger,
		container.GetGCS(),
		cfg.GCSBucket,
	)
	communitySvc := application.NewCommunityService(
		pginfra.NewCommunityRepository(pool),
		logger,
		container.GetES(),
		cfg.ESPostsIndex,
	)
	trainingSvc := application.NewTrainingService(
		pginfra.NewSessionRepository(pool),
		pginfra.NewProgressRepository(pool),
		container.GetRedis(),
		logger,
	)
	helplineSvc := application.NewHelplineService(pginfra.NewHelplineRepository(pool))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg, container.GetRabbit()), jwt))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(authSvc, logger), jwt))
	r.Add(modules.NewCommunityModule(handlers.NewCommunityHandler(communitySvc, logger), jwt))
	r.Add(modules.NewTrainingModule(handlers.NewTrainingHandler(trainingSvc, logger), jwt))
	r.Add(modules.NewHelplineModule(handlers.NewHelplineHandler(helplineSvc, logger), jwt))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
