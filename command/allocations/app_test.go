package allocations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/seatgeek/nomad-alloc-table/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	mu      sync.Mutex
	started bool
	stopped bool
	docs    map[string][]byte
}

func (s *memorySink) Start() error {
	s.started = true
	return nil
}

func (s *memorySink) Stop() error {
	s.stopped = true
	return nil
}

func (s *memorySink) Put(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.docs == nil {
		s.docs = map[string][]byte{}
	}
	s.docs[key] = data
	return nil
}

func TestRunPublishesHTML(t *testing.T) {
	s := &memorySink{}
	r, err := newRenderer(Config{
		AllocationsPath: "testdata/allocations.json",
		NodesPath:       "testdata/nodes.json",
		Format:          table.FormatHTML,
		LinkPrefix:      "/ui/nomad/global",
	}, s, nil)
	require.NoError(t, err)

	require.NoError(t, r.Run())
	assert.True(t, s.started)
	assert.True(t, s.stopped)

	doc := string(s.docs["allocations.html"])
	require.NotEmpty(t, doc)
	assert.Contains(t, doc, `<a href="/ui/nomad/global/allocations/5456bd7a-9fc0-c0dd-6131-cbee77f57577">5456bd7a</a>`)
	assert.Contains(t, doc, `nomad-client-1`)
	assert.Contains(t, doc, `glyphicon-cog`)
	assert.Contains(t, doc, `data-for="tooltip-c9c8b3a2-4d7e-11e8-9c2d-fa7ae01bbebc"`)
	assert.Contains(t, doc, `alloc was rescheduled because it failed`)
	assert.Less(t, strings.Index(doc, "5456bd7a"), strings.Index(doc, "c9c8b3a2"))
}

func TestRenderJSONFromStdin(t *testing.T) {
	stdin := strings.NewReader(`[{"ID":"a1","JobID":"j1","TaskGroup":"web","ClientStatus":"lost","DesiredStatus":"stop"}]`)

	r, err := newRenderer(Config{AllocationsPath: "-", Format: table.FormatJSON}, &memorySink{}, stdin)
	require.NoError(t, err)
	assert.Equal(t, "allocations.json", r.config.Key)

	doc, err := r.Render()
	require.NoError(t, err)

	var tbl table.Table
	require.NoError(t, json.Unmarshal(doc, &tbl))
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "a1", tbl.Rows[0].Key)
	assert.Equal(t, table.ClientStatusCell{Text: "lost", Color: "text-danger", Icon: "remove"}, tbl.Rows[0].ClientStatus)
	assert.Equal(t, "-", tbl.Rows[0].Node.Label)
}

func TestRenderEmptyList(t *testing.T) {
	r, err := newRenderer(Config{AllocationsPath: "-", Format: table.FormatText, Key: "custom"}, &memorySink{}, strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Equal(t, "custom", r.config.Key)

	doc, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(doc), "\n"))
	assert.True(t, strings.HasPrefix(string(doc), "ID"))
}

func TestRenderRejectsMissingIDs(t *testing.T) {
	s := &memorySink{}
	r, err := newRenderer(Config{AllocationsPath: "testdata/missing_id.json", Format: table.FormatHTML}, s, nil)
	require.NoError(t, err)

	err = r.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#1")
	assert.False(t, s.started)
	assert.Empty(t, s.docs)
}

func TestRenderBadInput(t *testing.T) {
	r, err := newRenderer(Config{AllocationsPath: "testdata/does-not-exist.json", Format: table.FormatHTML}, &memorySink{}, nil)
	require.NoError(t, err)
	_, err = r.Render()
	assert.Error(t, err)

	r, err = newRenderer(Config{AllocationsPath: "-", Format: table.FormatHTML}, &memorySink{}, strings.NewReader("{not json"))
	require.NoError(t, err)
	_, err = r.Render()
	assert.Error(t, err)
}

func TestNewRendererValidatesConfig(t *testing.T) {
	_, err := newRenderer(Config{AllocationsPath: "-", Format: "xml"}, &memorySink{}, nil)
	assert.Error(t, err)

	_, err = newRenderer(Config{Format: table.FormatHTML}, &memorySink{}, nil)
	assert.Error(t, err)

	_, err = newRenderer(Config{AllocationsPath: "-", NodesPath: "-", Format: table.FormatHTML}, &memorySink{}, nil)
	assert.Error(t, err)
}

func TestRunReportsDeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	os.Setenv("SINK_TYPE", "http")
	os.Setenv("SINK_HTTP_ADDRESS", srv.URL)
	defer os.Unsetenv("SINK_TYPE")
	defer os.Unsetenv("SINK_HTTP_ADDRESS")

	r, err := NewRenderer(Config{
		AllocationsPath: "testdata/allocations.json",
		NodesPath:       "testdata/nodes.json",
		Format:          table.FormatHTML,
	})
	require.NoError(t, err)

	err = r.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocations.html")
	assert.Contains(t, err.Error(), "500")
}

func TestRunDeliversToHttp(t *testing.T) {
	received := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Get("X-Document-Key")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	os.Setenv("SINK_TYPE", "http")
	os.Setenv("SINK_HTTP_ADDRESS", srv.URL)
	defer os.Unsetenv("SINK_TYPE")
	defer os.Unsetenv("SINK_HTTP_ADDRESS")

	r, err := NewRenderer(Config{AllocationsPath: "testdata/allocations.json", Format: table.FormatJSON})
	require.NoError(t, err)

	require.NoError(t, r.Run())
	assert.Equal(t, "allocations.json", <-received)
}
