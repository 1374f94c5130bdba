package sink

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	log "github.com/sirupsen/logrus"
)

// SNSSink ...
type SNSSink struct {
	*queue
	sns      *sns.SNS
	topicArn string
}

// NewSNS ...
func NewSNS() (*SNSSink, error) {
	topicArn := os.Getenv("SINK_SNS_TOPIC_ARN")
	if topicArn == "" {
		return nil, fmt.Errorf("[sink/sns] Missing SINK_SNS_TOPIC_ARN")
	}

	workers, err := workerCount("SINK_SNS_WORKERS")
	if err != nil {
		return nil, err
	}

	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("[sink/sns] %s", err)
	}

	s := &SNSSink{
		sns:      sns.New(sess),
		topicArn: topicArn,
	}
	s.queue = newQueue("sns", workers, s.write)
	return s, nil
}

func (s *SNSSink) write(id int, data Data) error {
	out, err := s.sns.Publish(&sns.PublishInput{
		TopicArn: aws.String(s.topicArn),
		Message:  aws.String(string(data.value)),
		MessageAttributes: map[string]*sns.MessageAttributeValue{
			"key": {
				DataType:    aws.String("String"),
				StringValue: aws.String(data.key),
			},
		},
	})
	if err != nil {
		return err
	}

	log.Debugf("[sink/sns/%d] message id %s", id, aws.StringValue(out.MessageId))
	return nil
}
