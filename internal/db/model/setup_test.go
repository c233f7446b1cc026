package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// Registration relies on pending proxy provisionings being unique per owner
// so two racing registrations collide at the database instead of both
// instantiating a proxy. Issuer pendings carry no owner and are exempt.
func TestProvisioningOwnerIndexUniquePerProxyOwner(t *testing.T) {
	idxs := collections[ProvisioningCollection]
	require.Len(t, idxs, 1)

	idx := idxs[0]
	require.Equal(t, map[string]int{"owner": 1}, idx.Indexes)
	require.True(t, idx.Unique)
	require.Equal(t, bson.M{"kind": ProxyProvisioning}, idx.Filter)
}
