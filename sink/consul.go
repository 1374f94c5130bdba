package sink

import (
	"fmt"
	"os"
	"strings"

	consul "github.com/hashicorp/consul/api"
)

// ConsulSink stores documents in the Consul KV store
type ConsulSink struct {
	*queue
	kv     *consul.KV
	prefix string
}

// NewConsul uses the standard CONSUL_HTTP_* environment for the client
func NewConsul() (*ConsulSink, error) {
	client, err := consul.NewClient(consul.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("[sink/consul] %s", err)
	}

	prefix, ok := os.LookupEnv("SINK_CONSUL_PREFIX")
	if !ok {
		prefix = "nomad-alloc-table/"
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	s := &ConsulSink{
		kv:     client.KV(),
		prefix: prefix,
	}
	s.queue = newQueue("consul", 1, s.write)
	return s, nil
}

func (s *ConsulSink) write(_ int, data Data) error {
	_, err := s.kv.Put(&consul.KVPair{
		Key:   s.prefix + data.key,
		Value: data.value,
	}, nil)
	return err
}
