package domain

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Entity is anything a store can index by identifier.
type Entity interface {
	EntityID() int64
}

// Record is an identified JSON object whose remaining fields are carried
// through untouched. Stores only ever look at the id.
type Record struct {
	ID     int64
	Fields map[string]json.RawMessage
}

// EntityID implements Entity
func (r Record) EntityID() int64 {
	return r.ID
}

// Text returns a string field, or "" if it is absent or not a string
func (r Record) Text(key string) string {
	raw, ok := r.Fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Set encodes value and stores it under key. The "id" key is reserved.
func (r *Record) Set(key string, value any) error {
	if key == "id" {
		return fmt.Errorf("%w: id is not a payload field", ErrInvalidRequest)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if r.Fields == nil {
		r.Fields = make(map[string]json.RawMessage)
	}
	r.Fields[key] = raw
	return nil
}

// Clone returns a copy that shares no map with r
func (r Record) Clone() Record {
	return Record{ID: r.ID, Fields: maps.Clone(r.Fields)}
}

// MarshalJSON writes the id back alongside the pass-through fields
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.Fields)+1)
	maps.Copy(out, r.Fields)

	id, err := json.Marshal(r.ID)
	if err != nil {
		return nil, err
	}
	out["id"] = id

	return json.Marshal(out)
}

// UnmarshalJSON requires an integer id and keeps every other field verbatim
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("%w: expected a JSON object", ErrInvalidRequest)
	}

	idRaw, ok := raw["id"]
	if !ok {
		return fmt.Errorf("%w: record has no id", ErrInvalidRequest)
	}
	var id int64
	if err := json.Unmarshal(idRaw, &id); err != nil {
		return fmt.Errorf("%w: id must be an integer: %v", ErrInvalidRequest, err)
	}
	delete(raw, "id")

	r.ID = id
	r.Fields = raw
	return nil
}
