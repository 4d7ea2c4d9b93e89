package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DataRecord is one element of a search result. It is a Comment, a
// Submission or an Opaque string.
type DataRecord interface {
	isDataRecord()
}

// Comment represents an archived Reddit comment
// swagger:model Comment
type Comment struct {
	// Comment author's username
	Author string `json:"author"`
	// Comment body text
	Body string `json:"body"`
	// Creation time as a unix timestamp
	CreatedUTC int64 `json:"created_utc"`
	// Comment ID
	ID string `json:"id"`
	// Fullname of the submission the comment belongs to
	LinkID string `json:"link_id"`
	// Comment score
	Score int `json:"score"`
	// Subreddit where the comment was posted
	Subreddit string `json:"subreddit"`
}

// Submission represents an archived Reddit submission
// swagger:model Submission
type Submission struct {
	// Submission author's username
	Author string `json:"author"`
	// Submission title
	Title string `json:"title"`
	// Self post body
	Selftext string `json:"selftext"`
	// Creation time as a unix timestamp
	CreatedUTC int64 `json:"created_utc"`
	// Submission ID
	ID string `json:"id"`
	// Submission score
	Score int `json:"score"`
	// Number of comments on the submission
	NumComments int `json:"num_comments"`
	// Subreddit where the submission was posted
	Subreddit string `json:"subreddit"`
}

// Opaque is a data element that is a bare string, such as a comment ID.
type Opaque string

func (Comment) isDataRecord()    {}
func (Submission) isDataRecord() {}
func (Opaque) isDataRecord()     {}

// SearchResult is the envelope returned by the search endpoints
// swagger:model APIResponse
type SearchResult struct {
	// Matching records, in the order the API returned them
	Data []DataRecord `json:"data"`
	// Free-form metadata about the query
	Metadata map[string]interface{} `json:"metadata"`
}

// MarshalJSON writes a nil Data as [] and a nil Metadata as {}.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	type plain SearchResult
	p := plain(r)
	if p.Data == nil {
		p.Data = []DataRecord{}
	}
	if p.Metadata == nil {
		p.Metadata = map[string]interface{}{}
	}
	return json.Marshal(p)
}

// UnmarshalJSON decodes data elements into their variant: strings become
// Opaque, objects with a body or link_id become Comment, other objects
// become Submission.
func (r *SearchResult) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data     []json.RawMessage      `json:"data"`
		Metadata map[string]interface{} `json:"metadata"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	records := make([]DataRecord, 0, len(raw.Data))
	for i, elem := range raw.Data {
		rec, err := decodeRecord(elem)
		if err != nil {
			return fmt.Errorf("data[%d]: %w", i, err)
		}
		records = append(records, rec)
	}

	r.Data = records
	r.Metadata = raw.Metadata
	return nil
}

func decodeRecord(elem json.RawMessage) (DataRecord, error) {
	elem = bytes.TrimSpace(elem)
	if len(elem) == 0 {
		return nil, fmt.Errorf("empty element")
	}

	switch elem[0] {
	case '"':
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			return nil, err
		}
		return Opaque(s), nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil {
			return nil, err
		}
		_, hasBody := fields["body"]
		_, hasLink := fields["link_id"]
		if hasBody || hasLink {
			var c Comment
			if err := json.Unmarshal(elem, &c); err != nil {
				return nil, err
			}
			return c, nil
		}
		var s Submission
		if err := json.Unmarshal(elem, &s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported element %s", elem)
	}
}
