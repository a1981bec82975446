package consumer

import (
	"bytes"
	"context"
	"encoding/json"
)

// DebeziumUserRecord represents a row from the users table in a Debezium CDC event.
// Only the columns that decide graph membership are decoded.
type DebeziumUserRecord struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	DeletedAt json.RawMessage `json:"deleted_at"` // string or epoch micros depending on the connector
}

// IsDeleted reports whether the row carries a soft-delete timestamp.
func (r *DebeziumUserRecord) IsDeleted() bool {
	v := bytes.TrimSpace(r.DeletedAt)
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}

// DebeziumPayload is the payload field of a Debezium CDC message.
type DebeziumPayload struct {
	Before *DebeziumUserRecord `json:"before"`
	After  *DebeziumUserRecord `json:"after"`
	Op     string              `json:"op"` // "c"=create, "u"=update, "d"=delete, "r"=snapshot
	TsMs   int64               `json:"ts_ms"`
}

// DebeziumMessage is the top-level Debezium CDC message envelope.
type DebeziumMessage struct {
	Payload DebeziumPayload `json:"payload"`
}

// CDCEventHandler processes a decoded Debezium CDC message.
type CDCEventHandler interface {
	HandleCDCEvent(ctx context.Context, event *DebeziumMessage) error
}

// CDCEventConsumer manages the Kafka consumer lifecycle.
type CDCEventConsumer interface {
	Start(ctx context.Context) error
	Close() error
}
