package messaging

import (
	"net/http"
	"strconv"

	"carelink-agent/internal/app/services/realtime"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/requests"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MessagingController struct {
	MessagingService MessagingService
	ChannelManager   realtime.ChannelManager
	Log              *zap.Logger
}

func NewMessagingController(
	messagingService MessagingService,
	channelManager realtime.ChannelManager,
	logger *zap.Logger,
) *MessagingController {
	return &MessagingController{
		MessagingService: messagingService,
		ChannelManager:   channelManager,
		Log:              logger,
	}
}

func (ctrl *MessagingController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := ctrl.MessagingService.FetchUsers(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "users", users)
}

func (ctrl *MessagingController) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := ctrl.MessagingService.FetchConversations(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "conversations", conversations)
}

func (ctrl *MessagingController) GetConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	conversation, err := ctrl.MessagingService.FetchConversation(r.Context(), conversationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "conversation", conversation)
}

func (ctrl *MessagingController) CreateConversation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateConversation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	conversation, err := ctrl.MessagingService.CreateConversation(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, "conversation created", conversation)
}

func (ctrl *MessagingController) ListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	messages, err := ctrl.MessagingService.FetchMessages(r.Context(), conversationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "messages", messages)
}

func (ctrl *MessagingController) SendMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	message, err := ctrl.MessagingService.SendMessage(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, "message sent", message)
}

func (ctrl *MessagingController) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathID(r, "messageID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	message, err := ctrl.MessagingService.UpdateMessage(r.Context(), messageID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "message updated", message)
}

func (ctrl *MessagingController) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	messageID, err := pathID(r, "messageID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.MessagingService.DeleteMessage(r.Context(), conversationID, messageID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "message deleted", nil)
}

func (ctrl *MessagingController) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.MessagingService.MarkConversationRead(r.Context(), conversationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "conversation marked read", nil)
}

// JoinConversation announces the join on the live channel, dialing it
// first when this is the first joined conversation.
func (ctrl *MessagingController) JoinConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.ChannelManager.JoinConversation(r.Context(), conversationID)
	if err != nil && exceptions.KindOf(err) == exceptions.KindNetworkUnavailable {
		if err = ctrl.ChannelManager.Connect(r.Context()); err == nil {
			err = ctrl.ChannelManager.JoinConversation(r.Context(), conversationID)
		}
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "joined conversation", nil)
}

func (ctrl *MessagingController) LeaveConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, err := pathID(r, "conversationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.ChannelManager.LeaveConversation(r.Context(), conversationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "left conversation", nil)
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}
	return id, nil
}
