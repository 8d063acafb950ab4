//go:build unit

package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id := NewID()

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-uuid")
	assert.Error(t, err)
}

func TestParseUserID(t *testing.T) {
	t.Parallel()

	userID := NewUserID()

	parsed, err := ParseUserID(userID.String())
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)

	_, err = ParseUserID("")
	assert.Error(t, err)
}

func TestNewIDsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, NewID(), NewID())
}
