package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_EmptyQuery(t *testing.T) {
	c := Default()
	got := c.Search("")
	require.Len(t, got, len(c))
	assert.Equal(t, c.Names(), Catalog(got).Names())
}

func TestSearch_RanksMatches(t *testing.T) {
	got := Default().Search("ip")
	require.NotEmpty(t, got)
	assert.Equal(t, "ipv4", got[0].Intent)

	got = Default().Search("phn")
	require.Len(t, got, 1)
	assert.Equal(t, "us-phone", got[0].Intent)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Default().Search("zzz"))
}
