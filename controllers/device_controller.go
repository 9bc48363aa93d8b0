package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DeviceController struct {
	Push *services.PushService
	DB   *gorm.DB
}

func NewDeviceController(push *services.PushService, db *gorm.DB) *DeviceController {
	return &DeviceController{Push: push, DB: db}
}

func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.GetUint("userID")

	if dc.Push == nil {
		utils.Fail(c, http.StatusServiceUnavailable, "push notifications not configured")
		return
	}

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	dev, err := dc.Push.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.OK(c, http.StatusOK, gin.H{"endpoint_arn": dev.EndpointARN})
}

func (dc *DeviceController) ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid body")
		return
	}

	if err := dc.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		respondError(c, err)
		return
	}

	utils.OK(c, http.StatusOK, gin.H{"enabled": req.Enabled})
}
