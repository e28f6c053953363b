// Package publish uploads generated reports to S3 compatible storage.
package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultKeyPrefix = "reports"

// Input describes one upload.
type Input struct {
	File      string
	Bucket    string
	Region    string
	Endpoint  string
	ObjectKey string
	KeyPrefix string
	PathStyle bool
}

// ObjectKey returns the destination key of the upload. A custom key must end
// with the file name; otherwise the key is <prefix>/<file name>.
func ObjectKey(input *Input) (string, error) {
	filename := filepath.Base(input.File)
	if input.ObjectKey != "" {
		if !strings.HasSuffix(input.ObjectKey, filename) {
			return "", fmt.Errorf("object key must end with the report name %q", filename)
		}
		return input.ObjectKey, nil
	}
	prefix := strings.Trim(input.KeyPrefix, "/")
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return fmt.Sprintf("%s/%s", prefix, filename), nil
}

// ContentType returns the upload content type of a report file.
func ContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

func validate(input *Input) error {
	if input.File == "" {
		return fmt.Errorf("missing report file")
	}
	if input.Bucket == "" {
		return fmt.Errorf("missing bucket name")
	}
	if input.Region == "" {
		return fmt.Errorf("missing bucket region")
	}
	return nil
}

// createS3Client creates an S3 client and uploader with the specified region.
func createS3Client(input *Input) (*s3.S3, *s3manager.Uploader, error) {
	cfg := &aws.Config{
		Region:           aws.String(input.Region),
		S3ForcePathStyle: aws.Bool(input.PathStyle),
	}
	if input.Endpoint != "" {
		cfg.Endpoint = aws.String(input.Endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, nil, err
	}
	return s3.New(sess), s3manager.NewUploader(sess), nil
}

// checkBucketExists checks if the bucket exists in the S3 storage.
func checkBucketExists(svc *s3.S3, bucket string) error {
	_, err := svc.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %v", err)
	}
	return nil
}

// Publish uploads the report file and returns its s3:// location.
func Publish(input *Input) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}
	objectKey, err := ObjectKey(input)
	if err != nil {
		return "", err
	}

	file, err := os.Open(input.File)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", input.File, err)
	}
	defer file.Close()

	svc, uploader, err := createS3Client(input)
	if err != nil {
		return "", errors.Wrap(err, "unable to create S3 client")
	}
	if err := checkBucketExists(svc, input.Bucket); err != nil {
		return "", err
	}

	log.Infof("Publishing %s to bucket %s...", input.File, input.Bucket)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(input.Bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(ContentType(input.File)),
		Body:        file,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload file %s to bucket %s", input.File, input.Bucket)
	}

	location := fmt.Sprintf("s3://%s/%s", input.Bucket, objectKey)
	log.Infof("Report published successfully to %s", location)
	return location, nil
}
