package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orgball2608/crypto-blog/pkg/formatter"
)

// PostID is an opaque backend identifier. The backend may send it as a JSON
// number or a JSON string.
type PostID string

func (id *PostID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PostID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("post id must be a number or a string: %w", err)
	}
	*id = PostID(n.String())
	return nil
}

type Post struct {
	ID        PostID `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	Timestamp int64  `json:"timestamp"` // nanoseconds since the Unix epoch
}

// Time returns the creation time derived from the nanosecond timestamp.
func (p Post) Time() time.Time {
	return formatter.PostTime(p.Timestamp)
}
