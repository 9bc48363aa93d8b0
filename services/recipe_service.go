package services

import (
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	Calories    *float64            `json:"calories"`
	Protein     *float64            `json:"protein"`
	Carbs       *float64            `json:"carbs"`
	Fat         *float64            `json:"fat"`
	ImageURL    string              `json:"image_url"`
	IsPublic    *bool               `json:"is_public"`
}

type RecipeUpdate struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	Calories    *float64            `json:"calories"`
	Protein     *float64            `json:"protein"`
	Carbs       *float64            `json:"carbs"`
	Fat         *float64            `json:"fat"`
	ImageURL    *string             `json:"image_url"`
	IsPublic    *bool               `json:"is_public"`
}

type RecipeFilters struct {
	Search      string
	MinProtein  *float64
	MaxCalories *float64
}

func checkMacros(vals ...*float64) error {
	for _, v := range vals {
		if v != nil && *v < 0 {
			return invalid("macro values must be non-negative")
		}
	}
	return nil
}

// List returns recipes that are public or owned by the caller, newest first.
func (s *RecipeService) List(userID uint, f RecipeFilters) ([]models.Recipe, error) {
	q := s.db.Where("is_public = ? OR user_id = ?", true, userID)

	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+f.Search+"%")
	}
	if f.MinProtein != nil {
		q = q.Where("protein >= ?", *f.MinProtein)
	}
	if f.MaxCalories != nil {
		q = q.Where("calories <= ?", *f.MaxCalories)
	}

	var recipes []models.Recipe
	err := q.Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

// Get applies the same visibility rule as List; an invisible recipe is
// indistinguishable from a missing one.
func (s *RecipeService) Get(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Where("id = ? AND (is_public = ? OR user_id = ?)", recipeID, true, userID).
		First(&recipe).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Create(userID uint, input RecipeInput) (*models.Recipe, error) {
	if input.Title == "" {
		return nil, invalid("title is required")
	}
	if len(input.Ingredients) == 0 {
		return nil, invalid("at least one ingredient is required")
	}
	if len(input.Steps) == 0 {
		return nil, invalid("at least one step is required")
	}
	if err := checkMacros(input.Calories, input.Protein, input.Carbs, input.Fat); err != nil {
		return nil, err
	}
	if input.ImageURL != "" && !utils.ValidHTTPURL(input.ImageURL) {
		return nil, invalid("image_url must be a valid URL")
	}

	recipe := models.Recipe{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Ingredients: input.Ingredients,
		Steps:       input.Steps,
		ImageURL:    input.ImageURL,
	}
	if input.Calories != nil {
		recipe.Calories = *input.Calories
	}
	if input.Protein != nil {
		recipe.Protein = *input.Protein
	}
	if input.Carbs != nil {
		recipe.Carbs = *input.Carbs
	}
	if input.Fat != nil {
		recipe.Fat = *input.Fat
	}
	if input.IsPublic != nil {
		recipe.IsPublic = *input.IsPublic
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// mutable loads a recipe for update/delete: invisible rows read as missing,
// visible rows owned by someone else are forbidden unless the caller is admin.
func (s *RecipeService) mutable(userID uint, isAdmin bool, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if recipe.UserID != userID && !isAdmin {
		if !recipe.IsPublic {
			return nil, ErrNotFound
		}
		return nil, ErrForbidden
	}
	return &recipe, nil
}

func (s *RecipeService) Update(userID uint, isAdmin bool, recipeID uint, input RecipeUpdate) (*models.Recipe, error) {
	recipe, err := s.mutable(userID, isAdmin, recipeID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, invalid("title is required")
		}
		recipe.Title = *input.Title
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Ingredients != nil {
		if len(input.Ingredients) == 0 {
			return nil, invalid("at least one ingredient is required")
		}
		recipe.Ingredients = input.Ingredients
	}
	if input.Steps != nil {
		if len(input.Steps) == 0 {
			return nil, invalid("at least one step is required")
		}
		recipe.Steps = input.Steps
	}
	if err := checkMacros(input.Calories, input.Protein, input.Carbs, input.Fat); err != nil {
		return nil, err
	}
	if input.Calories != nil {
		recipe.Calories = *input.Calories
	}
	if input.Protein != nil {
		recipe.Protein = *input.Protein
	}
	if input.Carbs != nil {
		recipe.Carbs = *input.Carbs
	}
	if input.Fat != nil {
		recipe.Fat = *input.Fat
	}
	if input.ImageURL != nil {
		if *input.ImageURL != "" && !utils.ValidHTTPURL(*input.ImageURL) {
			return nil, invalid("image_url must be a valid URL")
		}
		recipe.ImageURL = *input.ImageURL
	}
	if input.IsPublic != nil {
		recipe.IsPublic = *input.IsPublic
	}

	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) Delete(userID uint, isAdmin bool, recipeID uint) error {
	recipe, err := s.mutable(userID, isAdmin, recipeID)
	if err != nil {
		return err
	}
	return s.db.Delete(recipe).Error
}
