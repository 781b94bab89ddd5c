// internal/common/uploads/service.go
// Media storage behind a single interface: S3 in production, local disk
// in development. Returned URLs are what clients store as img/profile_pic.

package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Validation errors are the caller's fault; anything else is a storage
// failure.
var (
	ErrFileTooLarge       = errors.New("file size exceeds maximum of 10MB")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

// Service stores uploaded media and serves back public URLs
type Service interface {
	UploadFile(file multipart.File, header *multipart.FileHeader, folder string) (string, error)
	DeleteFile(fileURL string) error
}

type Config struct {
	UseS3          bool
	S3Bucket       string
	AWSRegion      string
	LocalUploadDir string
	BaseURL        string
}

type service struct {
	s3Client   *s3.S3
	bucketName string
	baseURL    string
	uploadDir  string // For local storage
	useS3      bool
}

func NewService(config Config) Service {
	s := &service{
		bucketName: config.S3Bucket,
		baseURL:    config.BaseURL,
		uploadDir:  config.LocalUploadDir,
		useS3:      config.UseS3,
	}

	if config.UseS3 {
		sess := session.Must(session.NewSession(&aws.Config{
			Region: aws.String(config.AWSRegion),
		}))
		s.s3Client = s3.New(sess)
	} else {
		// Create upload directory if it doesn't exist
		if err := os.MkdirAll(config.LocalUploadDir, 0755); err != nil {
			panic("Failed to create upload directory: " + err.Error())
		}
	}

	return s
}

func (s *service) UploadFile(file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	if err := s.validateFile(header); err != nil {
		return "", err
	}

	filename := s.generateFilename(header.Filename)

	if s.useS3 {
		return s.uploadToS3(file, filename, header, folder)
	}

	return s.uploadToLocal(file, filename, folder)
}

func (s *service) uploadToS3(file multipart.File, filename string, header *multipart.FileHeader, folder string) (string, error) {
	buffer := bytes.NewBuffer(nil)
	if _, err := io.Copy(buffer, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s", folder, time.Now().Format("2006/01/02"), filename)

	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:             aws.String(s.bucketName),
		Key:                aws.String(key),
		Body:               bytes.NewReader(buffer.Bytes()),
		ContentType:        aws.String(header.Header.Get("Content-Type")),
		ContentDisposition: aws.String("inline"),
		ACL:                aws.String("public-read"),
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucketName, key), nil
}

func (s *service) uploadToLocal(file multipart.File, filename string, folder string) (string, error) {
	dateDir := time.Now().Format("2006/01/02")
	fullDir := filepath.Join(s.uploadDir, folder, dateDir)

	if err := os.MkdirAll(fullDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	destPath := filepath.Join(fullDir, filename)
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, file); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	urlPath := fmt.Sprintf("/uploads/%s/%s/%s", folder, dateDir, filename)
	return s.baseURL + urlPath, nil
}

func (s *service) validateFile(header *multipart.FileHeader) error {
	// Check file size (max 10MB)
	maxSize := int64(10 << 20)
	if header.Size > maxSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowedExts := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}

	if !allowedExts[ext] {
		return ErrFileTypeNotAllowed
	}

	return nil
}

func (s *service) generateFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	name := uuid.New().String()
	timestamp := time.Now().Unix()
	return fmt.Sprintf("%s_%d%s", name, timestamp, ext)
}

func (s *service) DeleteFile(fileURL string) error {
	if s.useS3 {
		return s.deleteFromS3(fileURL)
	}
	return s.deleteFromLocal(fileURL)
}

func (s *service) deleteFromS3(fileURL string) error {
	key := strings.TrimPrefix(fileURL, fmt.Sprintf("https://%s.s3.amazonaws.com/", s.bucketName))

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	return err
}

func (s *service) deleteFromLocal(fileURL string) error {
	urlPath := strings.TrimPrefix(fileURL, s.baseURL)
	localPath := filepath.Join(s.uploadDir, strings.TrimPrefix(urlPath, "/uploads/"))

	return os.Remove(localPath)
}
