package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"scholarship-portal-api/config"
	"scholarship-portal-api/models"

	"github.com/gin-gonic/gin"
)

// SignDocumentURL generates a short-lived signed link for one stored
// document. The path must belong to an existing application; documents are
// never addressable by raw path.
func SignDocumentURL(c *gin.Context) {
	objectPath := c.Query("path")
	if objectPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required"})
		return
	}

	var application models.ScholarshipApplication
	if err := config.DB.Where(
		"transcript_path = ? OR application_letter_path = ? OR nomination_letter_path = ? OR supporting_docs_path = ?",
		objectPath, objectPath, objectPath, objectPath,
	).First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	storage := newStorageService()
	token, expiresAt, err := storage.SignObjectToken(objectPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign document URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":        "/api/v1/documents/fetch?token=" + token,
		"expires_at": expiresAt,
	})
}

// FetchDocument serves a stored document in exchange for a valid signed
// token. This is the only read path for uploaded files.
func FetchDocument(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token query parameter is required"})
		return
	}

	storage := newStorageService()
	objectPath, err := storage.VerifyObjectToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired document link"})
		return
	}

	fullPath, err := storage.AbsolutePath(objectPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document path"})
		return
	}

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename=\""+filepath.Base(fullPath)+"\"")
	c.Header("Content-Type", "application/octet-stream")

	c.File(fullPath)
}
