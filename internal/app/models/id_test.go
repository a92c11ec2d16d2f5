package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	t.Run("Numeric identifier keeps its JSON kind", func(t *testing.T) {
		var doctor Doctor
		require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "name": "Dr. House"}`), &doctor))

		assert.Equal(t, IntID(42), doctor.ID)
		assert.True(t, doctor.ID.IsNumeric())
		assert.Equal(t, "42", doctor.ID.String())

		out, err := json.Marshal(doctor.ID)
		require.NoError(t, err)
		assert.Equal(t, `42`, string(out))
	})

	t.Run("String identifier keeps its JSON kind", func(t *testing.T) {
		var doctor Doctor
		require.NoError(t, json.Unmarshal([]byte(`{"id": "CRM-1234", "name": "Dr. House"}`), &doctor))

		assert.Equal(t, StringID("CRM-1234"), doctor.ID)

		out, err := json.Marshal(doctor.ID)
		require.NoError(t, err)
		assert.Equal(t, `"CRM-1234"`, string(out))
	})

	t.Run("Null identifier is zero", func(t *testing.T) {
		var slot ScheduleSlot
		require.NoError(t, json.Unmarshal([]byte(`{"start_time":"09:00","end_time":"09:30","appointment_id":null}`), &slot))

		assert.False(t, slot.IsBooked())
	})

	t.Run("Boolean identifier is rejected", func(t *testing.T) {
		var doctor Doctor
		assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &doctor))
	})

	t.Run("ParseID", func(t *testing.T) {
		assert.Equal(t, IntID(42), ParseID("42"))
		assert.Equal(t, StringID("007"), ParseID("007"))
		assert.Equal(t, StringID("abc-1"), ParseID("abc-1"))
		assert.True(t, ParseID("").IsZero())
	})
}
