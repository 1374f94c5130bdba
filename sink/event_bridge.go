package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/eventbridge"
)

type eventDetail struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Document    string `json:"document"`
}

// EBSink puts one event per document on an EventBridge bus
type EBSink struct {
	*queue
	eventbridge *eventbridge.EventBridge
	busName     string
	detailType  string
	source      string
}

// NewEventBus ...
func NewEventBus() (*EBSink, error) {
	busName := os.Getenv("SINK_EVENT_BUS_NAME")
	if busName == "" {
		return nil, fmt.Errorf("[sink/eventbridge] Missing SINK_EVENT_BUS_NAME")
	}

	detailType := os.Getenv("SINK_EVENT_BUS_DETAIL_TYPE")
	if detailType == "" {
		detailType = "Nomad Allocation Table"
	}

	ebSource := os.Getenv("SINK_EVENT_BUS_SOURCE")
	if ebSource == "" {
		ebSource = "nomad-alloc-table"
	}

	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("[sink/eventbridge] %s", err)
	}
	svc := eventbridge.New(sess)

	_, err = svc.DescribeEventBus(&eventbridge.DescribeEventBusInput{
		Name: aws.String(busName),
	})
	if err != nil {
		return nil, fmt.Errorf("[sink/eventbridge] Failed to find Event Bus: %s", err)
	}

	s := &EBSink{
		eventbridge: svc,
		busName:     busName,
		detailType:  detailType,
		source:      ebSource,
	}
	s.queue = newQueue("eventbridge", 1, s.write)
	return s, nil
}

func (s *EBSink) write(_ int, data Data) error {
	detail, err := json.Marshal(eventDetail{
		Key:         data.key,
		ContentType: contentType(data.key),
		Document:    string(data.value),
	})
	if err != nil {
		return err
	}

	out, err := s.eventbridge.PutEvents(&eventbridge.PutEventsInput{
		Entries: []*eventbridge.PutEventsRequestEntry{{
			EventBusName: aws.String(s.busName),
			DetailType:   aws.String(s.detailType),
			Source:       aws.String(s.source),
			Detail:       aws.String(string(detail)),
		}},
	})
	if err != nil {
		return err
	}

	if aws.Int64Value(out.FailedEntryCount) > 0 {
		return fmt.Errorf("event rejected: %s", aws.StringValue(out.Entries[0].ErrorMessage))
	}

	return nil
}
