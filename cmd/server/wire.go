//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"nxorax_backend/internal/app"
	"nxorax_backend/internal/auth"
	"nxorax_backend/internal/chat"
	"nxorax_backend/internal/config"
	"nxorax_backend/internal/course"
	"nxorax_backend/internal/dashboard"
	"nxorax_backend/internal/firebase"
	"nxorax_backend/internal/jobs"
	"nxorax_backend/internal/platform/logger"
	"nxorax_backend/internal/replica"
	"nxorax_backend/internal/routing"
	"nxorax_backend/internal/settings"
	"nxorax_backend/internal/user"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		firebase.NewService,
		firebase.NewIdentityClient,
		provideFirestoreClient,
		replica.NewMirror,

		// Auth
		wire.Bind(new(auth.Identity), new(*firebase.IdentityClient)),
		wire.Bind(new(auth.Accounts), new(*firebase.Service)),
		auth.NewService,
		auth.NewHandler,

		// Users
		user.NewFirestoreRepository,
		user.NewService,
		user.NewHandler,

		// Courses
		course.NewFirestoreRepository,
		course.NewService,
		course.NewHandler,

		// Settings
		settings.NewFirestoreRepository,
		settings.NewService,
		settings.NewHandler,

		// Chat
		chat.NewFirestoreRepository,
		provideChatService,
		chat.NewHandler,

		// Dashboard and routing
		dashboard.NewService,
		dashboard.NewHandler,
		routing.NewHandler,

		// Jobs
		jobs.NewChatRetentionJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
