package sink

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

// FileSink writes each document to a file named after its key
type FileSink struct {
	*queue
	dir string
}

// NewFile ...
func NewFile() (*FileSink, error) {
	dir := os.Getenv("SINK_FILE_DIR")
	if dir == "" {
		return nil, fmt.Errorf("[sink/file] Missing SINK_FILE_DIR (example: /var/www/nomad)")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("[sink/file] Could not create %s: %s", dir, err)
	}

	s := &FileSink{dir: dir}
	s.queue = newQueue("file", 1, s.write)
	return s, nil
}

func (s *FileSink) write(_ int, data Data) error {
	name := filepath.Base(data.key)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid file name")
	}

	// write then rename so readers never see a partial document
	tmp := filepath.Join(s.dir, "."+name+".tmp")
	if err := ioutil.WriteFile(tmp, data.value, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(s.dir, name))
}
