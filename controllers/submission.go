package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"scholarship-portal-api/config"
	"scholarship-portal-api/models"
	"scholarship-portal-api/services"
	"scholarship-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// Seams for tests.
var (
	newRateLimitService           = func() *services.RateLimitService { return services.NewRateLimitService(config.DB) }
	newStorageService             = services.NewStorageService
	sendSubmissionConfirmationFor = sendSubmissionConfirmation
)

type requiredDocument struct {
	field   string
	folder  string
	missing string
}

// The order here is the validation and upload order. Missing-required-file
// checks run for all three before any per-file size/type check.
var requiredDocuments = []requiredDocument{
	{"transcript", services.FolderTranscripts, "Academic transcript is required"},
	{"applicationLetter", services.FolderApplicationLetters, "Application letter is required"},
	{"nominationLetter", services.FolderNominationLetters, "Nomination letter is required"},
}

// SubmitApplication handles the public scholarship submission form. The flow
// is strictly sequential: rate-limit check, field validation, file checks,
// uploads, record insert, rate-limit count. Any failure aborts the whole
// submission; nothing uploaded so far is removed (the client resubmits from
// scratch).
func SubmitApplication(c *gin.Context) {
	clientIP := services.ClientIdentifier(c)
	log.Printf("Submission attempt from IP: %s", clientIP)

	limiter := newRateLimitService()
	decision, err := limiter.Check(clientIP)
	if err != nil {
		log.Printf("Rate limit lookup failed for IP %s: %v", clientIP, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	if !decision.Allowed {
		log.Printf("Rate limit exceeded for IP: %s", clientIP)
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":      "Too many submissions. Please wait before trying again.",
			"retryAfter": decision.RetryAfterMinutes,
		})
		return
	}

	input := utils.ApplicationInput{
		FullName:      c.PostForm("fullName"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		CommunityName: c.PostForm("communityName"),
		University:    c.PostForm("university"),
		Course:        c.PostForm("course"),
		YearOfStudy:   c.PostForm("yearOfStudy"),
		CGPA:          c.PostForm("cgpa"),
		Reason:        c.PostForm("reason"),
	}

	if ok, message := utils.ValidateApplicationInput(input); !ok {
		log.Printf("Input validation failed: %s", message)
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	// Collect files. The three required documents are checked for presence
	// first so a missing transcript is reported as missing even when another
	// attached file would fail validation.
	files := make(map[string]*multipart.FileHeader, 4)
	for _, doc := range requiredDocuments {
		file, err := c.FormFile(doc.field)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": doc.missing})
			return
		}
		files[doc.field] = file
	}

	supportingDocs, err := c.FormFile("supportingDocs")
	if err == nil {
		files["supportingDocs"] = supportingDocs
	}

	for _, doc := range requiredDocuments {
		if ok, message := utils.ValidateUploadFile(files[doc.field]); !ok {
			log.Printf("File validation failed for %s: %s", doc.field, message)
			c.JSON(http.StatusBadRequest, gin.H{"error": message})
			return
		}
	}
	if supportingDocs != nil {
		if ok, message := utils.ValidateUploadFile(supportingDocs); !ok {
			log.Printf("File validation failed for supportingDocs: %s", message)
			c.JSON(http.StatusBadRequest, gin.H{"error": message})
			return
		}
	}

	// Upload in fixed order. A failed upload aborts the submission; earlier
	// uploads are not cleaned up.
	storage := newStorageService()
	paths := make(map[string]string, 4)
	for _, doc := range requiredDocuments {
		path, err := storage.Save(files[doc.field], doc.folder)
		if err != nil {
			log.Printf("Upload error for %s: %v", doc.folder, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to upload %s", doc.folder)})
			return
		}
		paths[doc.field] = path
	}

	var supportingDocsPath *string
	if supportingDocs != nil {
		path, err := storage.Save(supportingDocs, services.FolderSupportingDocs)
		if err != nil {
			log.Printf("Upload error for %s: %v", services.FolderSupportingDocs, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to upload %s", services.FolderSupportingDocs)})
			return
		}
		supportingDocsPath = &path
	}

	application := models.ScholarshipApplication{
		FullName:              strings.TrimSpace(input.FullName),
		Email:                 strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:                 strings.TrimSpace(input.Phone),
		CommunityName:         strings.TrimSpace(input.CommunityName),
		University:            strings.TrimSpace(input.University),
		Course:                strings.TrimSpace(input.Course),
		YearOfStudy:           input.YearOfStudy,
		CGPA:                  strings.TrimSpace(input.CGPA),
		Reason:                strings.TrimSpace(input.Reason),
		TranscriptPath:        paths["transcript"],
		ApplicationLetterPath: paths["applicationLetter"],
		NominationLetterPath:  paths["nominationLetter"],
		SupportingDocsPath:    supportingDocsPath,
		Status:                models.StatusPending,
		CreateAt:              time.Now(),
	}

	if err := config.DB.Create(&application).Error; err != nil {
		log.Printf("Insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
		return
	}

	if err := limiter.Record(decision.Current, clientIP); err != nil {
		log.Printf("Rate limit update failed for IP %s: %v", clientIP, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record submission"})
		return
	}

	// Confirmation mail is best effort and never fails the submission.
	if err := sendSubmissionConfirmationFor(application); err != nil {
		log.Printf("Confirmation email failed for %s: %v", application.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application submitted successfully",
	})
}

func sendSubmissionConfirmation(application models.ScholarshipApplication) error {
	subject := "Scholarship application received"
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>We received your scholarship application and will review it shortly. You will be contacted at this address once a decision is made.</p>",
		application.FullName,
	)
	return config.SendMail([]string{application.Email}, subject, body)
}
