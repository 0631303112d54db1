package routers

import (
	"carelink-agent/internal/app/services/messaging"

	"github.com/go-chi/chi/v5"
)

func attachMessagingRoutes(router chi.Router, messagingController *messaging.MessagingController) {
	router.Get("/users", messagingController.ListUsers)
	router.Get("/conversations", messagingController.ListConversations)
	router.Post("/conversations", messagingController.CreateConversation)
	router.Get("/conversations/{conversationID}", messagingController.GetConversation)
	router.Get("/conversations/{conversationID}/messages", messagingController.ListMessages)
	router.Delete("/conversations/{conversationID}/messages/{messageID}", messagingController.DeleteMessage)
	router.Post("/conversations/{conversationID}/read", messagingController.MarkConversationRead)
	router.Post("/conversations/{conversationID}/join", messagingController.JoinConversation)
	router.Post("/conversations/{conversationID}/leave", messagingController.LeaveConversation)
	router.Post("/messages", messagingController.SendMessage)
	router.Put("/messages/{messageID}", messagingController.UpdateMessage)
}
