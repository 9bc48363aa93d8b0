package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

func (mc *MessageController) ListMine(c *gin.Context) {
	uid := c.GetUint("userID")

	msgs, err := mc.Messages.ListMine(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, msgs)
}

// Send always writes with role "user" regardless of what the body claims.
func (mc *MessageController) Send(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Text      string `json:"text"`
		ClientTag string `json:"client_tag"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := mc.Messages.Send(uid, body.Text, models.MessageRoleUser, body.ClientTag)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, msg)
}
