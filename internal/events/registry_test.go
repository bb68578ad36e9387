package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Unmarshal(t *testing.T) {
	registry := DefaultRegistry()

	raw := RawEvent{
		EventType: EventItemConsumed,
		Payload:   `{"type":"item.consumed","entity_type":"Chapter","entity_id":3,"user_id":1,"occurred_at":"2024-01-01T00:00:00Z","kind":"Chapter","title":"Landing"}`,
	}

	event, err := registry.Unmarshal(raw)
	require.NoError(t, err)

	consumed, ok := event.(*ItemConsumed)
	require.True(t, ok)
	assert.Equal(t, "Landing", consumed.Title)
	assert.Equal(t, int64(3), consumed.EntityID())
	assert.Equal(t, int64(1), consumed.UserID)
}

func TestRegistry_UnmarshalUnknownType(t *testing.T) {
	_, err := NewRegistry().Unmarshal(RawEvent{EventType: "unknown.event", Payload: `{}`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type")
}

func TestRegistry_UnmarshalInvalidJSON(t *testing.T) {
	_, err := DefaultRegistry().Unmarshal(RawEvent{EventType: EventReportWritten, Payload: `{invalid json`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal event payload")
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()
	for _, eventType := range []string{EventItemConsumed, EventSeriesCompleted, EventReportWritten} {
		_, ok := registry.factories[eventType]
		assert.True(t, ok, "missing factory for %s", eventType)
	}
}
