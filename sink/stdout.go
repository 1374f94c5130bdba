package sink

import (
	"io"
	"os"
)

// StdoutSink writes documents to standard output
type StdoutSink struct {
	*queue
	out io.Writer
}

// NewStdout ...
func NewStdout() *StdoutSink {
	s := &StdoutSink{out: os.Stdout}
	s.queue = newQueue("stdout", 1, s.write)
	return s
}

func (s *StdoutSink) write(_ int, data Data) error {
	_, err := s.out.Write(data.value)
	return err
}
