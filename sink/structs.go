package sink

// Sink receives rendered documents
type Sink interface {
	Start() error
	Stop() error
	Put(key string, data []byte) error
}

// Data is a queued document
type Data struct {
	key   string
	value []byte
}
