package outbox

import "time"

const (
	StatusPending   = "pending"
	StatusPublished = "published"
)

// Message is an outbox row written in the same store operation as the state
// change it describes. The relay reads pending rows and publishes them.
type Message struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}
