package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Althaj-p/Ecom-Backend/pkg/resp"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type ChatController struct {
	Svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

// GET /chat/rooms/
func (h *ChatController) Rooms(c *gin.Context) {
	rooms, err := h.Svc.Rooms(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rooms)
}

// GET /chat/messages/:room_id
func (h *ChatController) Messages(c *gin.Context) {
	messages, err := h.Svc.Messages(c.Param("room_id"))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, messages)
}
