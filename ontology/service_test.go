package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlet-db/owlet/graphstore"
	"github.com/owlet-db/owlet/graphstore/testutil"
)

// newTestService builds a service over a fresh in-memory graph store with
// the root class initialized. The store is returned for tests that need to
// mutate the graph below the creation API.
func newTestService(t *testing.T) (*Service, graphstore.Store) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := graphstore.NewSQLStore(db, nil)
	svc := NewService(store, nil)
	require.NoError(t, svc.Init())
	return svc, store
}

func TestInitCreatesRoot(t *testing.T) {
	svc, store := newTestService(t)

	require.True(t, store.NodeExists(RootClassID))

	root, err := svc.Class(RootClassID)
	require.NoError(t, err)
	require.Equal(t, "Thing", root.Label)
	require.Empty(t, root.ParentClasses, "root has zero parents")
}

func TestInitIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Init())
	require.NoError(t, svc.Init())

	classes, err := svc.AllClasses()
	require.NoError(t, err)
	require.Len(t, classes, 1)
}

func TestClassRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateClass(Class{
		ID:          "demo:Person",
		Label:       "Person",
		Description: "A human being",
	})
	require.NoError(t, err)

	got, err := svc.Class("demo:Person")
	require.NoError(t, err)
	require.Equal(t, "Person", got.Label)
	require.Equal(t, "A human being", got.Description)
	// default-parent substitution: no explicit parents means exactly {root}
	require.Equal(t, []string{RootClassID}, got.ParentClasses)
}

func TestClassDetailMergesProperties(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateClass(Class{ID: "demo:Animal", Label: "Animal"})
	require.NoError(t, err)
	_, err = svc.CreateClass(Class{ID: "demo:Dog", Label: "Dog", ParentClasses: []string{"demo:Animal"}})
	require.NoError(t, err)

	_, err = svc.CreateProperty(Property{
		ID: "demo:name", Label: "name", Kind: DataProperty,
		Domain: []string{"demo:Animal"}, Range: []string{XSDString},
	})
	require.NoError(t, err)
	_, err = svc.CreateProperty(Property{
		ID: "demo:breed", Label: "breed", Kind: DataProperty,
		Domain: []string{"demo:Dog"}, Range: []string{XSDString},
	})
	require.NoError(t, err)

	detail, err := svc.ClassDetail("demo:Dog")
	require.NoError(t, err)
	require.Len(t, detail.DirectProperties, 1)
	require.Equal(t, "demo:breed", detail.DirectProperties[0].ID)
	require.Len(t, detail.InheritedProperties, 1)
	require.Equal(t, "demo:name", detail.InheritedProperties[0].ID)
	require.Len(t, detail.AllProperties, 2)
}

func TestSeedDemo(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.SeedDemo())

	stats, err := svc.Statistics()
	require.NoError(t, err)
	require.Equal(t, 5, stats.TotalClasses, "root + 4 demo classes")
	require.Equal(t, 4, stats.TotalProperties)
	require.Equal(t, 2, stats.TotalInstances)

	// seeding twice is a no-op
	require.NoError(t, svc.SeedDemo())
	stats, err = svc.Statistics()
	require.NoError(t, err)
	require.Equal(t, 5, stats.TotalClasses)
}
