package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	appConfig "rankcast/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// AuditLogger collects the lines of one rotation run in a temp file so the
// full trail can be shipped to the bucket afterwards.
type AuditLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
}

// CreateLogger creates an audit logger backed by a fresh temporary file.
func CreateLogger() (*AuditLogger, error) {
	f, err := os.CreateTemp("", "audit-*.log")
	if err != nil {
		return nil, err
	}

	return &AuditLogger{
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// Infof records an info line.
func (l *AuditLogger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Errorf records an error line.
func (l *AuditLogger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// EmptyLine separates sections of the trail.
func (l *AuditLogger) EmptyLine() {
	l.logFile.WriteString("\n")
}

func (l *AuditLogger) write(level string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	l.logFile.WriteString(fmt.Sprintf("%-8s %s %s\n", level, timestamp, fmt.Sprintf(format, args...)))
}

// CleanFile resets the trail so the file can back the next run.
func (l *AuditLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// UploadToS3Bucket ships the collected trail to the log bucket under the
// given key, then resets the file.
func (l *AuditLogger) UploadToS3Bucket(objectKey string) error {
	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	cfg := aws.Config{
		Region: appConfig.Bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				appConfig.Bucket.AccessKey,
				appConfig.Bucket.AccessSecret,
				"",
			),
		),
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(appConfig.Bucket.Endpoint)
	})

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(appConfig.Bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	l.CleanFile()

	return nil
}
