package info

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceID(t *testing.T) {
	parsed, err := uuid.Parse(InstanceID)
	require.NoError(t, err)
	assert.Equal(t, InstanceID, parsed.String())
}

func TestDefaults(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, GitRev)
}
