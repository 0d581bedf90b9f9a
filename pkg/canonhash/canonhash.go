package canonhash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// EventContent holds the semantic fields of an event that participate
// in the integrity hash.
type EventContent struct {
	ID          uint64
	EventType   string
	EntityType  string
	EntityID    uint64
	Description string
	Timestamp   time.Time
	Severity    string
	Location    string
	Metadata    map[string]interface{}
	ActorID     *uint64
}

// Compute returns the SHA-256 hex digest over the canonical
// serialization of the content. The serialization is JSON with
// lexicographically sorted keys, timestamps in UTC RFC3339Nano at
// microsecond precision (the precision DATETIME(6) columns preserve),
// and explicit null for absent optional fields, so the digest is
// stable across processes, languages and a datastore round trip.
func Compute(content EventContent) (string, error) {
	data, err := canonicalBytes(content)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalBytes(content EventContent) ([]byte, error) {
	var actorID interface{}
	if content.ActorID != nil {
		actorID = *content.ActorID
	}
	var location interface{}
	if content.Location != "" {
		location = content.Location
	}
	var metadata interface{}
	if len(content.Metadata) > 0 {
		metadata = content.Metadata
	}

	// encoding/json marshals map keys in sorted order, including for
	// nested maps inside metadata.
	fields := map[string]interface{}{
		"id":          content.ID,
		"event_type":  content.EventType,
		"entity_type": content.EntityType,
		"entity_id":   content.EntityID,
		"description": content.Description,
		"timestamp":   content.Timestamp.UTC().Truncate(time.Microsecond).Format(time.RFC3339Nano),
		"severity":    content.Severity,
		"location":    location,
		"metadata":    metadata,
		"actor_id":    actorID,
	}
	return json.Marshal(fields)
}
