package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{Plans: plans}
}

func (pc *PlanController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	plans, err := pc.Plans.ListVisible(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, plans)
}

func (pc *PlanController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := pc.Plans.Create(uid, input)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.InvalidateUserCache(uid)
	utils.OK(c, http.StatusCreated, plan)
}

func (pc *PlanController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	plan, err := pc.Plans.GetWithDays(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, plan)
}

func (pc *PlanController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.PlanUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := pc.Plans.Update(uid, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.InvalidateUserCache(uid)
	utils.OK(c, http.StatusOK, plan)
}

func (pc *PlanController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := pc.Plans.Delete(uid, id); err != nil {
		respondError(c, err)
		return
	}

	middlewares.InvalidateUserCache(uid)
	utils.OK(c, http.StatusOK, gin.H{"deleted": true})
}

type planDaysBulkInput struct {
	PlanID uint                    `json:"plan_id" binding:"required"`
	Days   []services.PlanDayInput `json:"days" binding:"required"`
}

// ReplaceDays is the bulk upsert behind POST /api/plan-days.
func (pc *PlanController) ReplaceDays(c *gin.Context) {
	uid := c.GetUint("userID")

	var input planDaysBulkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	days, err := pc.Plans.ReplaceDays(uid, input.PlanID, input.Days)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.InvalidateUserCache(uid)
	utils.OK(c, http.StatusCreated, days)
}
