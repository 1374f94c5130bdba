package sink

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// SQSSink sends each document as one message, keyed by a message attribute
type SQSSink struct {
	*queue
	sqs      *sqs.SQS
	queueURL string
	groupId  string
}

// NewSQS ...
func NewSQS() (*SQSSink, error) {
	queueURL := os.Getenv("SINK_SQS_QUEUE_URL")
	if queueURL == "" {
		return nil, fmt.Errorf("[sink/sqs] Missing SINK_SQS_QUEUE_URL")
	}

	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("[sink/sqs] %s", err)
	}

	s := &SQSSink{
		sqs:      sqs.New(sess),
		queueURL: queueURL,
		groupId:  os.Getenv("SINK_SQS_GROUP_ID"),
	}
	s.queue = newQueue("sqs", 1, s.write)
	return s, nil
}

func (s *SQSSink) write(_ int, data Data) error {
	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(data.value)),
		MessageAttributes: map[string]*sqs.MessageAttributeValue{
			"key": {
				DataType:    aws.String("String"),
				StringValue: aws.String(data.key),
			},
		},
	}

	// FIFO queues
	if s.groupId != "" {
		input.MessageGroupId = aws.String(s.groupId)
		input.MessageDeduplicationId = aws.String(data.key + "-" + strconv.FormatInt(time.Now().UnixNano(), 10))
	}

	_, err := s.sqs.SendMessage(input)
	return err
}
