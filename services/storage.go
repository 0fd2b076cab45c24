package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Storage folders, one per document kind.
const (
	FolderTranscripts        = "transcripts"
	FolderApplicationLetters = "application-letters"
	FolderNominationLetters  = "nomination-letters"
	FolderSupportingDocs     = "supporting-docs"
)

// SignedURLTTL is how long a generated document link stays valid.
const SignedURLTTL = time.Hour

// StorageService persists uploaded documents under a private base directory
// and issues short-lived signed tokens for reading them back. Stored files
// are never addressable by raw path from outside.
type StorageService struct {
	basePath   string
	signingKey []byte
}

// NewStorageService builds a service from UPLOAD_PATH and JWT_SECRET.
func NewStorageService() *StorageService {
	basePath := os.Getenv("UPLOAD_PATH")
	if basePath == "" {
		basePath = "./uploads"
	}

	return &StorageService{
		basePath:   basePath,
		signingKey: []byte(os.Getenv("JWT_SECRET")),
	}
}

// BuildObjectPath composes the storage path for one document: the kind
// folder plus a collision-resistant suffix (upload time and a short random
// token) plus the original file extension.
func BuildObjectPath(folder, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	token := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), token, ext)
}

// Save persists one uploaded file and returns its storage path. It either
// fully succeeds or returns an error; it never leaves a partial file behind
// for the returned path.
func (s *StorageService) Save(file *multipart.FileHeader, folder string) (string, error) {
	objectPath := BuildObjectPath(folder, file.Filename)
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(objectPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("create folder for %s: %w", folder, err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload for %s: %w", folder, err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file for %s: %w", folder, err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write file for %s: %w", folder, err)
	}

	return objectPath, nil
}

// AbsolutePath resolves a stored object path below the base directory.
// Paths that escape the base directory are rejected.
func (s *StorageService) AbsolutePath(objectPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(objectPath))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid object path %q", objectPath)
	}
	return filepath.Join(s.basePath, cleaned), nil
}

type signedURLClaims struct {
	Path string `json:"path"`
	jwt.RegisteredClaims
}

// SignObjectToken issues a token granting read access to exactly one stored
// object for SignedURLTTL.
func (s *StorageService) SignObjectToken(objectPath string) (string, time.Time, error) {
	expiresAt := time.Now().Add(SignedURLTTL)

	claims := signedURLClaims{
		Path: objectPath,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// VerifyObjectToken validates a signed token and returns the object path it
// grants access to.
func (s *StorageService) VerifyObjectToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &signedURLClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired document token")
	}

	claims, ok := token.Claims.(*signedURLClaims)
	if !ok || claims.Path == "" {
		return "", fmt.Errorf("invalid document token claims")
	}

	return claims.Path, nil
}
