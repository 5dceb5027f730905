package router

import (
	"blogspace/internal/application"
	"blogspace/internal/container"
	pginfra "blogspace/internal/infrastructure/postgres"
	handlers "blogspace/internal/interface/http"
	"blogspace/internal/router/modules"
)

// InitModules builds the application services from container singletons and
// registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(container.GetPGPool())
	posts := pginfra.NewPostRepository(container.GetPGPool())

	authSvc := application.NewAuthService(
		users,
		container.GetJWT(),
		container.GetRabbitPub(),
		cfg.AppName,
		cfg.MailSendEnabled,
		logger,
	)
	postSvc := application.NewPostService(posts, container.GetGCS(), cfg.GCSBucket, logger)
	adminSvc := application.NewAdminService(users, posts, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), container.GetJWT()))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, postSvc, logger), container.GetJWT()))
	r.Add(modules.NewHealthModule())
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
