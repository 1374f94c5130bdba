package sink

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/Shopify/sarama"
	log "github.com/sirupsen/logrus"
)

// KafkaSink ...
type KafkaSink struct {
	*queue
	// Kafka brokers to send documents to
	Brokers []string
	// Kafka topic
	Topic string

	producer sarama.SyncProducer
}

func createTlsConfiguration() (*tls.Config, error) {
	caFile := os.Getenv("SINK_KAFKA_CA_CERT_PATH")
	if caFile == "" {
		return nil, nil
	}

	caCert, err := ioutil.ReadFile(caFile)
	if err != nil {
		return nil, err
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("no certificates found in %s", caFile)
	}

	return &tls.Config{RootCAs: caCertPool}, nil
}

// NewKafka ...
func NewKafka() (*KafkaSink, error) {
	brokers := os.Getenv("SINK_KAFKA_BROKERS")
	if brokers == "" {
		return nil, fmt.Errorf("[sink/kafka] Missing SINK_KAFKA_BROKERS")
	}

	brokerList := strings.Split(brokers, ",")
	log.Debugf("[sink/kafka] Kafka brokers: %s", strings.Join(brokerList, ", "))

	topic := os.Getenv("SINK_KAFKA_TOPIC")
	if topic == "" {
		return nil, fmt.Errorf("[sink/kafka] Missing SINK_KAFKA_TOPIC")
	}
	log.Debugf("[sink/kafka] Kafka topic: %s", topic)

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.MaxMessageBytes = 10 * 1024 * 1024

	tlsConfig, err := createTlsConfiguration()
	if err != nil {
		return nil, fmt.Errorf("[sink/kafka] %s", err)
	}
	if tlsConfig != nil {
		config.Net.TLS.Config = tlsConfig
		config.Net.TLS.Enable = true
	}

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, fmt.Errorf("[sink/kafka] %s", err)
	}

	s := &KafkaSink{
		Brokers:  brokerList,
		Topic:    topic,
		producer: producer,
	}
	s.queue = newQueue("kafka", 1, s.write)
	return s, nil
}

// Stop ...
func (s *KafkaSink) Stop() error {
	err := s.queue.Stop()

	if err := s.producer.Close(); err != nil {
		log.Errorf("[sink/kafka] %s", err)
	}

	return err
}

func (s *KafkaSink) write(_ int, data Data) error {
	message := &sarama.ProducerMessage{
		Topic: s.Topic,
		Key:   sarama.StringEncoder(data.key),
		Value: sarama.ByteEncoder(data.value),
	}

	partition, offset, err := s.producer.SendMessage(message)
	if err != nil {
		return err
	}

	log.Debugf("[sink/kafka] topic=%s\tpartition=%d\toffset=%d", s.Topic, partition, offset)
	return nil
}
