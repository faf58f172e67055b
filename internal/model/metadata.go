package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/gookit/slog"
)

// Metadata is the nested document stored in the posts.metadata JSON column.
type Metadata struct {
	Tags     []Tag         `json:"tags"`
	Seo      *SeoMetadata  `json:"seo"`
	Settings *PostSettings `json:"settings"`
}

type Tag struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type SeoMetadata struct {
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
	Keywords        []string `json:"keywords"`
}

type PostSettings struct {
	AllowComments      bool `json:"allow_comments"`
	Featured           bool `json:"featured"`
	ReadingTimeMinutes *int `json:"reading_time_minutes"`
}

// NewMetadata returns the empty document: no tags, no seo, no settings.
func NewMetadata() Metadata {
	return Metadata{Tags: []Tag{}}
}

// Value serializes the document for the JSON column.
func (m Metadata) Value() (driver.Value, error) {
	if m.Tags == nil {
		m.Tags = []Tag{}
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal post metadata failed: %w", err)
	}
	return payload, nil
}

// Scan deserializes a stored document. A row holding JSON that no longer
// matches the schema scans as the empty document instead of failing the read.
func (m *Metadata) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*m = NewMetadata()
		return nil
	default:
		slog.Warnf("unexpected metadata column type %T, using empty document", src)
		*m = NewMetadata()
		return nil
	}

	var decoded Metadata
	if err := json.Unmarshal(raw, &decoded); err != nil {
		slog.Warnf("decode stored metadata failed, using empty document: %v", err)
		*m = NewMetadata()
		return nil
	}
	if decoded.Tags == nil {
		decoded.Tags = []Tag{}
	}
	*m = decoded
	return nil
}
