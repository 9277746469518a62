package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/utils"
)

type AvatarUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadAvatar stores a new avatar image and returns its public URL. The
// external login flow owns the session record, so the URL is returned
// rather than written into the fitnessUser slot.
func UploadAvatar(c *gin.Context) {
	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadAvatarToS3(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
