package router

import (
	"github.com/andriwibowo/blognest/internal/application"
	"github.com/andriwibowo/blognest/internal/container"
	mongoinfra "github.com/andriwibowo/blognest/internal/infrastructure/mongodb"
	handlers "github.com/andriwibowo/blognest/internal/interface/http"
	"github.com/andriwibowo/blognest/internal/router/modules"
)

// InitModules constructs repositories, services, and handlers from the
// container singletons and registers every feature module.
// Call once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()

	users := mongoinfra.NewUserRepository(db)
	blogs := mongoinfra.NewBlogRepository(db)
	profiles := mongoinfra.NewProfileRepository(db)

	// A typed nil publisher must not end up inside the interface value.
	var pub application.EmailPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	userSvc := application.NewUserService(users, container.GetTokens(), pub, logger, cfg.AppName)
	blogSvc := application.NewBlogService(blogs, logger)
	profileSvc := application.NewProfileService(profiles, logger)

	r.Add(modules.NewUsersModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewBlogsModule(handlers.NewBlogHandler(blogSvc, logger), users))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), users))
	r.Add(modules.NewHealthModule())
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
