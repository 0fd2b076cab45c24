// utils/validator.go - Input validation
package utils

import (
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxFileSize is the per-document upload limit.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// allowedFileTypes are matched against the declared Content-Type of the
// uploaded part. File bytes are not sniffed.
var allowedFileTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}

	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

// ApplicationInput holds the nine text fields of a scholarship submission,
// keyed by the multipart form field names.
type ApplicationInput struct {
	FullName      string
	Email         string
	Phone         string
	CommunityName string
	University    string
	Course        string
	YearOfStudy   string
	CGPA          string
	Reason        string
}

// ValidateApplicationInput checks presence, email shape and field lengths.
// The first violation found is returned; errors are never aggregated.
func ValidateApplicationInput(in ApplicationInput) (bool, string) {
	required := []struct {
		field string
		value string
	}{
		{"fullName", in.FullName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"communityName", in.CommunityName},
		{"university", in.University},
		{"course", in.Course},
		{"yearOfStudy", in.YearOfStudy},
		{"cgpa", in.CGPA},
		{"reason", in.Reason},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return false, fmt.Sprintf("%s is required", f.field)
		}
	}

	if !ValidateEmail(in.Email) {
		return false, "Invalid email format"
	}

	limits := []struct {
		message string
		value   string
		max     int
	}{
		{"Full name too long", in.FullName, 200},
		{"Email too long", in.Email, 255},
		{"Phone number too long", in.Phone, 20},
		{"Community name too long", in.CommunityName, 100},
		{"University name too long", in.University, 200},
		{"Course name too long", in.Course, 200},
		{"Reason too long", in.Reason, 5000},
	}

	// Limits count characters, not bytes, so multibyte names are not
	// penalized.
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return false, l.message
		}
	}

	return true, ""
}

// ValidateUploadFile checks the size and declared content type of one
// uploaded document.
func ValidateUploadFile(file *multipart.FileHeader) (bool, string) {
	if file.Size > MaxFileSize {
		return false, fmt.Sprintf("File %s exceeds 10MB limit", file.Filename)
	}

	contentType := file.Header.Get("Content-Type")
	for _, allowed := range allowedFileTypes {
		if contentType == allowed {
			return true, ""
		}
	}

	return false, fmt.Sprintf("File %s has invalid type. Allowed: PDF, Word, JPEG, PNG", file.Filename)
}
