package sink

import (
	"fmt"
	"os"

	"github.com/nsqio/go-nsq"
	log "github.com/sirupsen/logrus"
)

type NSQSink struct {
	*queue
	producer  *nsq.Producer
	topicName string
}

func NewNSQ() (*NSQSink, error) {
	addrNSQ := os.Getenv("SINK_NSQ_ADDR")
	if addrNSQ == "" {
		return nil, fmt.Errorf("[sink/nsq] Missing SINK_NSQ_ADDR (example: 127.0.0.1:4150)")
	}
	log.Infof("[sink/nsq] SINK_NSQ_ADDR=%s", addrNSQ)

	topicName := os.Getenv("SINK_NSQ_TOPIC_NAME")
	if topicName == "" {
		return nil, fmt.Errorf("[sink/nsq] Missing SINK_NSQ_TOPIC_NAME (example: nomad-alloc-table)")
	}
	log.Infof("[sink/nsq] SINK_NSQ_TOPIC_NAME=%s", topicName)

	producer, err := nsq.NewProducer(addrNSQ, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("[sink/nsq] Failed to connect to NSQ: %v", err)
	}

	s := &NSQSink{
		producer:  producer,
		topicName: topicName,
	}
	s.queue = newQueue("nsq", 1, s.write)
	return s, nil
}

func (s *NSQSink) Stop() error {
	err := s.queue.Stop()
	s.producer.Stop()

	return err
}

func (s *NSQSink) write(_ int, data Data) error {
	return s.producer.Publish(s.topicName, data.value)
}
