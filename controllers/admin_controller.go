package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the support console. Routes sit behind
// middlewares.AdminRequired, so the caller's role is already verified.
type AdminController struct {
	Messages *services.MessageService
}

func NewAdminController(messages *services.MessageService) *AdminController {
	return &AdminController{Messages: messages}
}

func (ac *AdminController) Check(c *gin.Context) {
	utils.OK(c, http.StatusOK, gin.H{"role": c.GetString("role")})
}

func (ac *AdminController) ListChatUsers(c *gin.Context) {
	users, err := ac.Messages.ListUsersWithLatest()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, users)
}

func (ac *AdminController) GetThread(c *gin.Context) {
	uid, ok := paramID(c, "id")
	if !ok {
		return
	}

	thread, err := ac.Messages.GetThread(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, thread)
}

// SendToUser posts an admin reply onto the target user's thread with role
// "assistant".
func (ac *AdminController) SendToUser(c *gin.Context) {
	uid, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Text      string `json:"text"`
		ClientTag string `json:"client_tag"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := ac.Messages.Send(uid, body.Text, models.MessageRoleAssistant, body.ClientTag)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, msg)
}
