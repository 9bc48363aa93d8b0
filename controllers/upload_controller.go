package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Moderation *services.ModerationService // optional; nil skips screening
}

func NewUploadController(moderation *services.ModerationService) *UploadController {
	return &UploadController{Moderation: moderation}
}

type uploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Folder      string `json:"folder"` // "avatars" | "recipes"
}

// UploadImage accepts a base64 data URL, screens it, stores it on S3 and
// returns the public URL for use as avatar_url or image_url.
func (uc *UploadController) UploadImage(c *gin.Context) {
	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	folder := req.Folder
	switch folder {
	case "avatars", "recipes":
	case "":
		folder = "uploads"
	default:
		utils.Fail(c, http.StatusBadRequest, "unknown folder")
		return
	}

	data, contentType, err := utils.DecodeDataURL(req.ImageBase64)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if uc.Moderation != nil {
		if err := uc.Moderation.CheckImage(data); err != nil {
			respondError(c, err)
			return
		}
	}

	url, err := utils.UploadImageToS3(data, contentType, folder)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OK(c, http.StatusOK, gin.H{"url": url})
}
