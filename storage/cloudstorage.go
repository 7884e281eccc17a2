package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/shellasitanaya/backend-cv-analyzer/config"
)

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.CVBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadCVFromBytes stores an uploaded resume under the job it was
// submitted to and returns its public URL.
func (c *CloudStorageClient) UploadCVFromBytes(ctx context.Context, jobID string, content []byte, filename string) (string, error) {
	objectName := objectNameFor(jobID, filename)

	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = getContentType(filepath.Ext(filename))

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return c.objectURL(objectName), nil
}

// DeleteCV deletes a resume from Cloud Storage by its public URL.
func (c *CloudStorageClient) DeleteCV(ctx context.Context, cvURL string) error {
	objectName, err := c.objectNameFromURL(cvURL)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete CV: %w", err)
	}
	return nil
}

// GetSignedURL generates a signed URL granting temporary access to the
// resume behind its public URL.
func (c *CloudStorageClient) GetSignedURL(cvURL string, expiration time.Duration) (string, error) {
	objectName, err := c.objectNameFromURL(cvURL)
	if err != nil {
		return "", err
	}

	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}

	return url, nil
}

// DownloadCV downloads resume content by its public URL.
func (c *CloudStorageClient) DownloadCV(ctx context.Context, cvURL string) ([]byte, error) {
	objectName, err := c.objectNameFromURL(cvURL)
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV: %w", err)
	}

	return data, nil
}

func (c *CloudStorageClient) objectURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
}

func (c *CloudStorageClient) objectNameFromURL(cvURL string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(cvURL, prefix) {
		return "", fmt.Errorf("invalid CV URL format")
	}
	return strings.TrimPrefix(cvURL, prefix), nil
}

// objectNameFor builds the per-job object path. The filename is
// sanitized so path separators cannot escape the job's prefix.
func objectNameFor(jobID, filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("cvs/%s/%d_%s", jobID, time.Now().UnixNano(), base)
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
