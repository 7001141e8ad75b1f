package threds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Display limits mirrored from the backend.
const (
	MaxThredsPerBoard = 10
	MaxPostsPerThread = 100
)

// BoardID identifies one of the fixed boards.
type BoardID string

const (
	BoardWork   BoardID = "w"
	BoardRandom BoardID = "r"
	BoardTravel BoardID = "t"
)

// Board describes a board in the catalogue.
type Board struct {
	ID          BoardID
	Label       string
	Description string
}

// Boards is the closed board catalogue in display order.
var Boards = []Board{
	{ID: BoardWork, Label: "Work", Description: "Professional discussions and office banter."},
	{ID: BoardRandom, Label: "Random", Description: "Chaos, memes, and everything in between."},
	{ID: BoardTravel, Label: "Travel", Description: "Outside world and adventures."},
}

// BoardIDs returns the catalogue ids in display order.
func BoardIDs() []BoardID {
	ids := make([]BoardID, len(Boards))
	for i, b := range Boards {
		ids[i] = b.ID
	}
	return ids
}

// LookupBoard returns the catalogue entry for id.
func LookupBoard(id BoardID) (Board, bool) {
	for _, b := range Boards {
		if b.ID == id {
			return b, true
		}
	}
	return Board{}, false
}

// BoardLabel returns the board's label, or its raw id when unknown.
func BoardLabel(id BoardID) string {
	if b, ok := LookupBoard(id); ok {
		return b.Label
	}
	return string(id)
}

// ID is an opaque identifier assigned by the backend. Numbers and strings are
// both accepted on the wire and kept verbatim.
type ID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Short returns the last six characters, used for post references.
func (id ID) Short() string {
	s := string(id)
	if len(s) <= 6 {
		return s
	}
	return s[len(s)-6:]
}

// Timestamp is a point in time sent either as epoch milliseconds or as an
// RFC 3339 string.
type Timestamp struct {
	time.Time
}

const railsTimestampLayout = "2006-01-02 15:04:05 MST"

// UnmarshalJSON accepts epoch milliseconds, a timestamp string or null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.Time = parseTime(s)
		return nil
	}
	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = time.UnixMilli(int64(ms))
	return nil
}

// MarshalJSON writes epoch milliseconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(ms)
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, railsTimestampLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Post is a single message within a thread.
type Post struct {
	ID        ID        `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	ReplyToID ID        `json:"replyToId,omitempty"`
}

// AuthorName returns the post author, defaulting to Anonymous.
func (p Post) AuthorName() string {
	if name := strings.TrimSpace(p.Author); name != "" {
		return name
	}
	return "Anonymous"
}

// Thread is a titled conversation; the first post is the opener.
type Thread struct {
	ID        ID        `json:"id"`
	BoardID   BoardID   `json:"boardId"`
	Subject   string    `json:"subject"`
	Timestamp Timestamp `json:"timestamp"`
	Posts     []Post    `json:"posts"`
}

// Opener returns the first post, if any.
func (t Thread) Opener() (Post, bool) {
	if len(t.Posts) == 0 {
		return Post{}, false
	}
	return t.Posts[0], true
}

// LastPost returns the most recent post, if any.
func (t Thread) LastPost() (Post, bool) {
	if len(t.Posts) == 0 {
		return Post{}, false
	}
	return t.Posts[len(t.Posts)-1], true
}

// ReplyCount is the number of posts after the opener.
func (t Thread) ReplyCount() int {
	if len(t.Posts) == 0 {
		return 0
	}
	return len(t.Posts) - 1
}

// RepliesTo returns the posts that reference postID, in thread order.
func (t Thread) RepliesTo(postID ID) []Post {
	var out []Post
	for _, p := range t.Posts {
		if p.ReplyToID != "" && p.ReplyToID == postID {
			out = append(out, p)
		}
	}
	return out
}

// PostIndex returns the position of postID in the thread, or -1.
func (t Thread) PostIndex(postID ID) int {
	for i, p := range t.Posts {
		if p.ID == postID {
			return i
		}
	}
	return -1
}

// NewThread is the payload for creating a thread.
type NewThread struct {
	Subject  string `json:"subject"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// NewPost is the payload for replying to a thread.
type NewPost struct {
	Content   string `json:"content"`
	ReplyToID ID     `json:"replyToId,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// UploadResponse mirrors the /upload payload.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
