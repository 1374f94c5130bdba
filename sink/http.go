package sink

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"

	cleanhttp "github.com/hashicorp/go-cleanhttp"
)

// HttpSink POSTs documents to an address
type HttpSink struct {
	*queue
	address string
	client  *http.Client
}

// NewHttp ...
func NewHttp() (*HttpSink, error) {
	address := os.Getenv("SINK_HTTP_ADDRESS")
	if address == "" {
		return nil, fmt.Errorf("[sink/http] Missing SINK_HTTP_ADDRESS (example: http://miau.com:8080/biau)")
	}

	workers, err := workerCount("SINK_WORKER_COUNT")
	if err != nil {
		return nil, err
	}

	return newHttp(address, workers), nil
}

func newHttp(address string, workers int) *HttpSink {
	s := &HttpSink{
		address: address,
		client:  cleanhttp.DefaultClient(),
	}
	s.queue = newQueue("http", workers, s.send)
	return s
}

func (s *HttpSink) send(_ int, data Data) error {
	req, err := http.NewRequest(http.MethodPost, s.address, bytes.NewReader(data.value))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType(data.key))
	req.Header.Set("X-Document-Key", data.key)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(ioutil.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected response status %s", resp.Status)
	}

	return nil
}
