//go:build windows
// +build windows

package sink

import (
	"fmt"
)

type SyslogSink struct {
	*queue
}

// NewSyslog ...
func NewSyslog() (*SyslogSink, error) {
	return nil, fmt.Errorf("[sink/syslog] ERROR - not supported on Windows :(")
}
