package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type TrackingController struct {
	Tracking *services.TrackingService
}

func NewTrackingController(tracking *services.TrackingService) *TrackingController {
	return &TrackingController{Tracking: tracking}
}

func (tc *TrackingController) AddWater(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date string  `json:"date"`
		ML   float64 `json:"ml"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	log, err := tc.Tracking.AddWater(uid, body.Date, body.ML)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, log)
}

func (tc *TrackingController) ListWater(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := tc.Tracking.ListWater(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, logs)
}

func (tc *TrackingController) AddWeight(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date string  `json:"date"`
		KG   float64 `json:"kg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	log, err := tc.Tracking.AddWeight(uid, body.Date, body.KG)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, log)
}

func (tc *TrackingController) ListWeight(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := tc.Tracking.ListWeight(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, logs)
}
