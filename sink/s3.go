package sink

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Sink uploads each document to <SINK_S3_PREFIX><key>, e.g. to serve a static dashboard page
type S3Sink struct {
	*queue
	uploader *s3manager.Uploader
	bucket   string
	prefix   string
}

// NewS3 ...
func NewS3() (*S3Sink, error) {
	bucket := os.Getenv("SINK_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("[sink/s3] Missing SINK_S3_BUCKET")
	}

	prefix := os.Getenv("SINK_S3_PREFIX")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("[sink/s3] %s", err)
	}

	s := &S3Sink{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		prefix:   prefix,
	}
	s.queue = newQueue("s3", 1, s.write)
	return s, nil
}

func (s *S3Sink) write(_ int, data Data) error {
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + data.key),
		ContentType: aws.String(contentType(data.key)),
		Body:        bytes.NewReader(data.value),
	})
	return err
}
