package allocations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	multierror "github.com/hashicorp/go-multierror"
	nomad "github.com/hashicorp/nomad/api"
	"github.com/seatgeek/nomad-alloc-table/displaytime"
	"github.com/seatgeek/nomad-alloc-table/link"
	"github.com/seatgeek/nomad-alloc-table/sink"
	"github.com/seatgeek/nomad-alloc-table/structs"
	"github.com/seatgeek/nomad-alloc-table/table"
	log "github.com/sirupsen/logrus"
)

// stdinPath reads the input from standard input
const stdinPath = "-"

var extensions = map[string]string{
	table.FormatHTML: "html",
	table.FormatText: "txt",
	table.FormatJSON: "json",
}

// Config ...
type Config struct {
	// AllocationsPath holds the output of Nomad's /v1/allocations endpoint
	AllocationsPath string
	// NodesPath holds the output of Nomad's /v1/nodes endpoint, optional
	NodesPath string
	Format    string
	// Key names the document in the sink, defaults to allocations.<ext>
	Key        string
	LinkPrefix string
	Dump       bool
}

// Renderer turns exported allocation and node lists into a table document
type Renderer struct {
	config    Config
	formatter *table.Formatter
	sink      sink.Sink
	stdin     io.Reader
}

// NewRenderer ...
func NewRenderer(config Config) (*Renderer, error) {
	s, err := sink.GetSink()
	if err != nil {
		return nil, err
	}

	return newRenderer(config, s, os.Stdin)
}

func newRenderer(config Config, s sink.Sink, stdin io.Reader) (*Renderer, error) {
	ext, ok := extensions[config.Format]
	if !ok {
		return nil, fmt.Errorf("Unknown format '%s', must be one of %v", config.Format, table.Formats)
	}

	if config.AllocationsPath == "" {
		return nil, fmt.Errorf("Missing allocations input, use '-' to read from stdin")
	}

	if config.AllocationsPath == stdinPath && config.NodesPath == stdinPath {
		return nil, fmt.Errorf("Only one of allocations and nodes can be read from stdin")
	}

	if config.Key == "" {
		config.Key = "allocations." + ext
	}

	return &Renderer{
		config:    config,
		formatter: table.New(link.NewResolver(config.LinkPrefix), displaytime.New()),
		sink:      s,
		stdin:     stdin,
	}, nil
}

// Run renders the inputs once and publishes the document to the sink
func (r *Renderer) Run() error {
	doc, err := r.Render()
	if err != nil {
		return err
	}

	if err := r.sink.Start(); err != nil {
		return err
	}

	log.Infof("Publishing %s (%d bytes)", r.config.Key, len(doc))

	var result *multierror.Error
	if err := r.sink.Put(r.config.Key, doc); err != nil {
		result = multierror.Append(result, err)
	}

	// delivery happens in the background, failures surface once the sink drains
	if err := r.sink.Stop(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("[allocations] Could not publish %s: %s", r.config.Key, err)
	}

	return nil
}

// Render reads, validates and renders the inputs
func (r *Renderer) Render() ([]byte, error) {
	var stubs []*nomad.AllocationListStub
	if err := r.decode(r.config.AllocationsPath, &stubs); err != nil {
		return nil, fmt.Errorf("[allocations] Could not read allocations: %s", err)
	}

	var nodeStubs []*nomad.NodeListStub
	if r.config.NodesPath != "" {
		if err := r.decode(r.config.NodesPath, &nodeStubs); err != nil {
			return nil, fmt.Errorf("[allocations] Could not read nodes: %s", err)
		}
	}

	allocations := structs.NewAllocations(stubs)
	nodes := structs.NewNodeList(nodeStubs)
	log.Debugf("Read %d allocations and %d nodes", len(allocations), len(nodes))

	if r.config.Dump {
		log.Debug(spew.Sdump(allocations, nodes))
	}

	if err := structs.ValidateAllocations(allocations); err != nil {
		return nil, fmt.Errorf("[allocations] Invalid input: %s", err)
	}

	var buf bytes.Buffer
	if err := table.Write(&buf, r.config.Format, r.formatter.Render(allocations, nodes)); err != nil {
		return nil, fmt.Errorf("[allocations] Could not render %s: %s", r.config.Format, err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) decode(path string, v interface{}) error {
	var in io.Reader = r.stdin
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return json.NewDecoder(in).Decode(v)
}
