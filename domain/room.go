package domain

import (
	"maps"
	"time"
)

type Room struct {
	ID        string            `json:"id"`
	Name      string            `json:"name,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func (r Room) Clone() Room {
	r.Metadata = maps.Clone(r.Metadata)
	return r
}
