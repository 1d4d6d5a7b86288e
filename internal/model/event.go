package model

import "encoding/json"

type Event struct {
	ID       string          `db:"id"       yaml:"id"       json:"id"`
	Type     string          `db:"type"     yaml:"type"     json:"type"`
	Provider string          `db:"provider" yaml:"provider" json:"provider"`
	Payload  json.RawMessage `db:"payload"  yaml:"-"        json:"payload,omitempty"` // opaque JSON, nullable
}
