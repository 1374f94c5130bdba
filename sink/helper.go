package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var sinkTypes = "stdout, file, http, slack, redis, kafka, nsq, amqp, syslog, mongodb, sqs, sns, s3, eventbridge or consul"

// GetSink builds the sink named by SINK_TYPE, stdout when unset
func GetSink() (Sink, error) {
	sinkType := os.Getenv("SINK_TYPE")
	if sinkType == "" {
		sinkType = "stdout"
	}

	switch sinkType {
	case "stdout":
		return NewStdout(), nil
	case "file":
		return NewFile()
	case "http":
		return NewHttp()
	case "slack":
		return NewSlack()
	case "redis":
		return NewRedis()
	case "kafka":
		return NewKafka()
	case "nsq":
		return NewNSQ()
	case "amqp":
		fallthrough
	case "rabbitmq":
		return NewAmqp()
	case "syslog":
		return NewSyslog()
	case "mongodb":
		return NewMongodb()
	case "sqs":
		return NewSQS()
	case "sns":
		return NewSNS()
	case "s3":
		return NewS3()
	case "eventbridge":
		return NewEventBus()
	case "consul":
		return NewConsul()
	default:
		return nil, fmt.Errorf("Invalid SINK_TYPE '%s': %s", sinkType, sinkTypes)
	}
}

// workerCount reads a worker count from the environment, defaulting to 1
func workerCount(env string) (int, error) {
	v := os.Getenv(env)
	if v == "" {
		return 1, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("Invalid %s, must be a positive integer", env)
	}

	return n, nil
}

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
}

// contentType guesses the media type of a document from its key
func contentType(key string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(key))]; ok {
		return ct
	}
	return "application/octet-stream"
}
