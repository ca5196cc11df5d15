package model

// Event is anything publishable to the broker, keyed by its id.
type Event interface {
	GetId() string
}
