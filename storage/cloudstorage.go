package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/profileranker/backend/config"
)

// CloudStorageClient mirrors uploaded PDFs to a Google Cloud Storage bucket
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
		bucketName: cfg.PDFBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

var unsafeObjectChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ObjectName builds the object path for a PDF of the given kind
// ("job-descriptions" or "consultant-profiles")
func ObjectName(kind, name string, at time.Time) string {
	sanitized := strings.Trim(unsafeObjectChars.ReplaceAllString(name, "_"), "_")
	if sanitized == "" {
		sanitized = "document"
	}
	return fmt.Sprintf("%s/%d_%s.pdf", kind, at.Unix(), sanitized)
}

// UploadPDF writes a PDF and returns its public URL
func (c *CloudStorageClient) UploadPDF(ctx context.Context, kind, name string, content []byte) (string, error) {
	objectName := ObjectName(kind, name, time.Now())

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = "application/pdf"

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return c.objectURL(objectName), nil
}

// DownloadPDF reads back a PDF previously returned by UploadPDF
func (c *CloudStorageClient) DownloadPDF(ctx context.Context, pdfURL string) ([]byte, error) {
	objectName, err := c.objectNameFromURL(pdfURL)
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
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	return data, nil
}

// DeletePDF removes a mirrored PDF
func (c *CloudStorageClient) DeletePDF(ctx context.Context, pdfURL string) error {
	objectName, err := c.objectNameFromURL(pdfURL)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete PDF: %w", err)
	}

	return nil
}

func (c *CloudStorageClient) objectURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
}

func (c *CloudStorageClient) objectNameFromURL(pdfURL string) (string, error) {
	prefix := c.objectURL("")
	if !strings.HasPrefix(pdfURL, prefix) {
		return "", fmt.Errorf("invalid PDF URL format")
	}
	return strings.TrimPrefix(pdfURL, prefix), nil
}
