package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpeaker(t *testing.T) {
	t.Parallel()

	s, err := NewSpeaker("John Doe", "Tech Expert", "C# Modern Features")
	require.NoError(t, err)
	assert.Equal(t, Speaker{Name: "John Doe", Bio: "Tech Expert", Topic: "C# Modern Features"}, s)

	_, err = NewSpeaker("", "bio", "topic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
