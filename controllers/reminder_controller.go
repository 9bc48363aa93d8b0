package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: reminders}
}

func (rc *ReminderController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	meal, water, err := rc.Reminders.Get(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"meal_times": meal, "water_times": water})
}

func (rc *ReminderController) Upsert(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		MealTimes  []string `json:"meal_times"`
		WaterTimes []string `json:"water_times"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	meal, water, err := rc.Reminders.Upsert(uid, body.MealTimes, body.WaterTimes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"meal_times": meal, "water_times": water})
}
