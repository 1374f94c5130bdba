//go:build !windows
// +build !windows

package sink

import (
	"fmt"
	"log/syslog"
	"os"

	log "github.com/sirupsen/logrus"
)

type SyslogSink struct {
	*queue
	writer *syslog.Writer
}

// NewSyslog ...
func NewSyslog() (*SyslogSink, error) {
	syslogProto := os.Getenv("SINK_SYSLOG_PROTO")
	// Without a network protocol syslog.Dial talks to the local socket and
	// leaves the hostname out of messages.
	if syslogProto == "" {
		log.Info("[sink/syslog] SINK_SYSLOG_PROTO not set - ignoring this and SINK_SYSLOG_ADDR, as syslog package will default to unixgram and an autodiscovered socket")
	}
	syslogAddr := os.Getenv("SINK_SYSLOG_ADDR")
	if syslogAddr == "" && syslogProto != "" {
		return nil, fmt.Errorf("[sink/syslog] Missing SINK_SYSLOG_ADDR (examples: 192.168.1.100:514")
	}
	syslogTag := os.Getenv("SINK_SYSLOG_TAG")
	if syslogTag == "" {
		log.Info("[sink/syslog] Missing SINK_SYSLOG_TAG - setting to default 'nomad-alloc-table'")
		syslogTag = "nomad-alloc-table"
	}

	log.Infof("[sink/syslog] Connecting - %s://%s - tag: %s", syslogProto, syslogAddr, syslogTag)
	writer, err := syslog.Dial(syslogProto, syslogAddr, syslog.LOG_INFO, syslogTag)
	if err != nil {
		return nil, fmt.Errorf("[sink/syslog] ERROR initializing syslog writer: %s", err)
	}

	s := &SyslogSink{writer: writer}
	s.queue = newQueue("syslog", 1, s.write)
	return s, nil
}

// Stop ...
func (s *SyslogSink) Stop() error {
	err := s.queue.Stop()
	s.writer.Close()

	return err
}

func (s *SyslogSink) write(_ int, data Data) error {
	_, err := s.writer.Write(data.value)
	return err
}
