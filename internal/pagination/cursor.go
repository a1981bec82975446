package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// ErrInvalidCursor is returned when a client supplied cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is the position of the last item on a page.
// Every listing orders by (Time DESC, ID DESC); rankings prepend Score.
type Cursor struct {
	Score int64
	Time  time.Time
	ID    string
}

type wireCursor struct {
	S int64  `json:"s,omitempty"`
	T int64  `json:"t"`
	I string `json:"i"`
}

// Encode returns the opaque token for c.
func Encode(c Cursor) string {
	data, _ := json.Marshal(wireCursor{S: c.Score, T: c.Time.UnixNano(), I: c.ID})
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode parses a token produced by Encode. An empty token yields a nil cursor.
func Decode(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	var w wireCursor
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, ErrInvalidCursor
	}
	if w.I == "" || w.T <= 0 {
		return nil, ErrInvalidCursor
	}
	return &Cursor{Score: w.S, Time: time.Unix(0, w.T).UTC(), ID: w.I}, nil
}

// UintID parses the cursor id as an auto-increment key.
func (c *Cursor) UintID() (uint, error) {
	n, err := strconv.ParseUint(c.ID, 10, 64)
	if err != nil {
		return 0, ErrInvalidCursor
	}
	return uint(n), nil
}

// FromUint builds a cursor id from an auto-increment key.
func FromUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
