package handler

// Handler defines the interface for record handlers
type Handler interface {
	// Handle formats and emits one raw record
	Handle(record []byte) error

	// Close closes the handler and releases resources
	Close() error
}
