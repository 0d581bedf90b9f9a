package canonhash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newContent() EventContent {
	return EventContent{
		ID:          101,
		EventType:   "recalled",
		EntityType:  "batch",
		EntityID:    55,
		Description: "Batch recalled",
		Timestamp:   newTime("2024-03-05T08:30:00Z"),
		Severity:    "critical",
	}
}

func TestCompute__Deterministic(t *testing.T) {
	h1, err := Compute(newContent())
	assert.Equal(t, nil, err)

	h2, err := Compute(newContent())
	assert.Equal(t, nil, err)

	assert.Equal(t, h1, h2)
	assert.Equal(t, 64, len(h1))
}

func TestCompute__Golden_Value(t *testing.T) {
	canonical := `{"actor_id":null,"description":"Batch recalled",` +
		`"entity_id":55,"entity_type":"batch","event_type":"recalled",` +
		`"id":101,"location":null,"metadata":null,"severity":"critical",` +
		`"timestamp":"2024-03-05T08:30:00Z"}`
	sum := sha256.Sum256([]byte(canonical))

	h, err := Compute(newContent())
	assert.Equal(t, nil, err)
	assert.Equal(t, hex.EncodeToString(sum[:]), h)
}

func TestCompute__Metadata_Key_Order_Independent(t *testing.T) {
	c1 := newContent()
	c1.Metadata = map[string]interface{}{
		"temperature": "8.5",
		"unit":        "celsius",
		"sensor":      "S-204",
	}

	c2 := newContent()
	c2.Metadata = map[string]interface{}{}
	c2.Metadata["sensor"] = "S-204"
	c2.Metadata["unit"] = "celsius"
	c2.Metadata["temperature"] = "8.5"

	h1, err := Compute(c1)
	assert.Equal(t, nil, err)

	h2, err := Compute(c2)
	assert.Equal(t, nil, err)

	assert.Equal(t, h1, h2)
}

func TestCompute__Absent_Optional_Fields_Encode_As_Null(t *testing.T) {
	c1 := newContent()
	c1.Metadata = nil
	c1.ActorID = nil
	c1.Location = ""

	c2 := newContent()
	c2.Metadata = map[string]interface{}{}

	h1, err := Compute(c1)
	assert.Equal(t, nil, err)

	// empty metadata and nil metadata are the same absence
	h2, err := Compute(c2)
	assert.Equal(t, nil, err)
	assert.Equal(t, h1, h2)

	actor := uint64(7)
	c3 := newContent()
	c3.ActorID = &actor

	h3, err := Compute(c3)
	assert.Equal(t, nil, err)
	assert.NotEqual(t, h1, h3)
}

func TestCompute__Field_Change_Changes_Digest(t *testing.T) {
	base, err := Compute(newContent())
	assert.Equal(t, nil, err)

	changed := newContent()
	changed.Description = "Batch recalled by QA"

	h, err := Compute(changed)
	assert.Equal(t, nil, err)
	assert.NotEqual(t, base, h)

	shifted := newContent()
	shifted.Timestamp = newTime("2024-03-05T08:30:01Z")

	h, err = Compute(shifted)
	assert.Equal(t, nil, err)
	assert.NotEqual(t, base, h)
}

func TestCompute__Timestamp_Truncated_To_Microseconds(t *testing.T) {
	c1 := newContent()
	c1.Timestamp = time.Date(2024, 3, 5, 8, 30, 0, 123456789, time.UTC)

	// what comes back from a DATETIME(6) column
	c2 := newContent()
	c2.Timestamp = time.Date(2024, 3, 5, 8, 30, 0, 123456000, time.UTC)

	h1, err := Compute(c1)
	assert.Equal(t, nil, err)

	h2, err := Compute(c2)
	assert.Equal(t, nil, err)
	assert.Equal(t, h1, h2)

	// microsecond differences still count
	c3 := newContent()
	c3.Timestamp = time.Date(2024, 3, 5, 8, 30, 0, 123457000, time.UTC)

	h3, err := Compute(c3)
	assert.Equal(t, nil, err)
	assert.NotEqual(t, h1, h3)
}

func TestCompute__Timestamp_Normalized_To_UTC(t *testing.T) {
	c1 := newContent()

	c2 := newContent()
	c2.Timestamp = c2.Timestamp.In(time.FixedZone("ICT", 7*3600))

	h1, err := Compute(c1)
	assert.Equal(t, nil, err)

	h2, err := Compute(c2)
	assert.Equal(t, nil, err)
	assert.Equal(t, h1, h2)
}
