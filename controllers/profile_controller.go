package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// GetMe returns 404 before the first profile save — fetching never creates.
func (pc *ProfileController) GetMe(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := pc.Profiles.Get(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, services.ProfileView(profile))
}

func (pc *ProfileController) UpdateMe(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := pc.Profiles.Upsert(uid, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, services.ProfileView(profile))
}
