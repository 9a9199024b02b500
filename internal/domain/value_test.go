package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSON(t *testing.T) {
	t.Run("absent marshals to null", func(t *testing.T) {
		b, err := json.Marshal(Absent())
		require.NoError(t, err)
		assert.Equal(t, "null", string(b))
	})

	t.Run("number round-trips", func(t *testing.T) {
		b, err := json.Marshal(Number(2.6))
		require.NoError(t, err)
		assert.Equal(t, "2.6", string(b))

		var v Value
		require.NoError(t, json.Unmarshal(b, &v))
		assert.Equal(t, Number(2.6), v)
	})

	t.Run("null unmarshals to absent", func(t *testing.T) {
		v := Number(1)
		require.NoError(t, json.Unmarshal([]byte("null"), &v))
		assert.False(t, v.Valid)
	})

	t.Run("non-numeric input is an error", func(t *testing.T) {
		var v Value
		assert.Error(t, json.Unmarshal([]byte(`"2,6"`), &v))
	})
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "absent", Absent().String())
	assert.Equal(t, "2.6", Number(2.6).String())
}
