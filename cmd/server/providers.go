package main

import (
	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"nxorax_backend/internal/chat"
	"nxorax_backend/internal/config"
	"nxorax_backend/internal/firebase"
)

// provideFirestoreClient extracts the document store client from the
// Firebase service so repositories depend on the client, not the service.
func provideFirestoreClient(svc *firebase.Service) *firestore.Client {
	return svc.Firestore()
}

// provideChatService wires the history window size from configuration.
func provideChatService(repo chat.Repository, cfg *config.Config, logger *zap.Logger) chat.Service {
	return chat.NewService(repo, cfg.ChatHistoryLimit, logger)
}
