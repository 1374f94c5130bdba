package sink

import (
	"fmt"
	"sync"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

var drainInterval = 1 * time.Second

type handleFunc func(workerID int, data Data) error

// queue buffers documents and hands them to a fixed number of workers
type queue struct {
	name    string
	workers int
	handle  handleFunc
	putCh   chan Data
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
	stopped bool

	errMu  sync.Mutex
	errors *multierror.Error
}

func newQueue(name string, workers int, handle handleFunc) *queue {
	if workers < 1 {
		workers = 1
	}

	return &queue{
		name:    name,
		workers: workers,
		handle:  handle,
		putCh:   make(chan Data, 1000),
		stopCh:  make(chan struct{}),
	}
}

// Start ...
func (q *queue) Start() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started {
		return fmt.Errorf("[sink/%s] already started", q.name)
	}
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work(i)
	}

	return nil
}

// Stop waits for the queue to drain and the workers to finish.
// It returns every publish failure seen since Start.
func (q *queue) Stop() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return q.err()
	}
	q.stopped = true

	if q.started {
		log.Infof("[sink/%s] ensure writer queue is empty (%d messages left)", q.name, len(q.putCh))

		for len(q.putCh) > 0 {
			log.Infof("[sink/%s] Waiting for queue to drain - (%d messages left)", q.name, len(q.putCh))
			time.Sleep(drainInterval)
		}
	}

	close(q.stopCh)
	q.wg.Wait()

	return q.err()
}

// Put ..
func (q *queue) Put(key string, value []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return fmt.Errorf("[sink/%s] stopped, dropping '%s'", q.name, key)
	}

	q.putCh <- Data{key: key, value: value}
	return nil
}

func (q *queue) fail(err error) {
	q.errMu.Lock()
	defer q.errMu.Unlock()

	q.errors = multierror.Append(q.errors, err)
}

func (q *queue) err() error {
	q.errMu.Lock()
	defer q.errMu.Unlock()

	return q.errors.ErrorOrNil()
}

func (q *queue) work(id int) {
	defer q.wg.Done()

	logger := log.WithField("sink", q.name).WithField("worker", id)
	logger.Infof("[sink/%s/%d] Starting writer", q.name, id)

	for {
		select {
		case data := <-q.putCh:
			if err := q.handle(id, data); err != nil {
				logger.Errorf("[sink/%s/%d] %s: %s", q.name, id, data.key, err)
				q.fail(fmt.Errorf("[sink/%s] %s: %s", q.name, data.key, err))
				continue
			}
			logger.Debugf("[sink/%s/%d] published '%s' (%d bytes)", q.name, id, data.key, len(data.value))

		case <-q.stopCh:
			return
		}
	}
}
