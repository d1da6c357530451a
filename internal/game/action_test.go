package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected Action
	}{
		{"r", Roll},
		{"roll", Roll},
		{" R \n", Roll},
		{"ROLL", Roll},
		{"h", Hold},
		{"Hold", Hold},
		{"", Invalid},
		{"x", Invalid},
		{"rh", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAction(tt.input))
		})
	}
}

func TestParsePlayerType(t *testing.T) {
	pt, err := ParsePlayerType("Computer")
	require.NoError(t, err)
	assert.Equal(t, Computer, pt)

	pt, err = ParsePlayerType(" human ")
	require.NoError(t, err)
	assert.Equal(t, Human, pt)

	_, err = ParsePlayerType("robot")
	require.ErrorIs(t, err, ErrInvalidPlayerType)
	assert.Contains(t, err.Error(), `"robot"`)
}

func TestPlayerType_MarshalText(t *testing.T) {
	data, err := json.Marshal(PlayerState{Name: "Ann", Type: Computer})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"computer"`)
}
