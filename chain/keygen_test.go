package chain

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"
)

func TestNewCampaignID(t *testing.T) {
	id := NewCampaignID()
	require.NotEmpty(t, id)
	require.True(t, ValidAddress(id))
}

func TestNewCampaignIDsDistinct(t *testing.T) {
	ids := mapset.NewSet[string]()
	for i := 0; i < 100; i++ {
		ids.Add(NewCampaignID())
	}
	require.Equal(t, 100, ids.Cardinality())
}

func TestValidAddress(t *testing.T) {
	require.False(t, ValidAddress(""))
	require.False(t, ValidAddress("not-base58-0OIl"))
	require.True(t, ValidAddress("11111111111111111111111111111111"))
}
