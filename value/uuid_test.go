package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/value"
)

func TestParseIDValid(t *testing.T) {
	u := value.NewUUID()
	id := value.ID{Raw: u.String()}
	parsed, ok := value.ParseID(id)
	require.True(t, ok)
	require.NotNil(t, parsed.Parsed)
	assert.Equal(t, u.String(), parsed.Parsed.String())
}

func TestParseIDNotUUIDShaped(t *testing.T) {
	id := value.ID{Raw: "not-a-uuid"}
	parsed, ok := value.ParseID(id)
	assert.False(t, ok)
	assert.Nil(t, parsed.Parsed)
	assert.Equal(t, "not-a-uuid", parsed.Raw)
}

func TestNewUUIDIsUnique(t *testing.T) {
	a := value.NewUUID()
	b := value.NewUUID()
	assert.NotEqual(t, a.String(), b.String())
}
