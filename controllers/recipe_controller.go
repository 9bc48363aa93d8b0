package controllers

import (
	"net/http"
	"strconv"

	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Recipes  *services.RecipeService
	Profiles *services.ProfileService
}

func NewRecipeController(recipes *services.RecipeService, profiles *services.ProfileService) *RecipeController {
	return &RecipeController{Recipes: recipes, Profiles: profiles}
}

func (rc *RecipeController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	filters := services.RecipeFilters{Search: c.Query("search")}
	if v := c.Query("min_protein"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinProtein = &f
		}
	}
	if v := c.Query("max_calories"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxCalories = &f
		}
	}

	recipes, err := rc.Recipes.List(uid, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, recipes)
}

func (rc *RecipeController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	recipe, err := rc.Recipes.Get(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OK(c, http.StatusOK, recipe)
}

func (rc *RecipeController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	recipe, err := rc.Recipes.Create(uid, input)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.InvalidateUserCache(uid)
	utils.OK(c, http.StatusCreated, recipe)
}

func (rc *RecipeController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.RecipeUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	recipe, err := rc.Recipes.Update(uid, rc.Profiles.IsAdmin(uid), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.InvalidateUserCache(uid)
	utils.OK(c, http.StatusOK, recipe)
}

func (rc *RecipeController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rc.Recipes.Delete(uid, rc.Profiles.IsAdmin(uid), id); err != nil {
		respondError(c, err)
		return
	}

	middlewares.InvalidateUserCache(uid)
	utils.OK(c, http.StatusOK, gin.H{"deleted": true})
}
