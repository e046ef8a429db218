package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/owlet-db/owlet/errors"
)

func TestCreatePropertyDuplicate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProperty(Property{ID: "demo:knows"})
	require.NoError(t, err)

	_, err = svc.CreateProperty(Property{ID: "demo:knows"})
	require.True(t, errors.IsValidation(err), "duplicate id should be a validation error, got %v", err)
}

func TestCreatePropertyDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProperty(Property{ID: "demo:knows"})
	require.NoError(t, err)
	require.Equal(t, "demo:knows", created.Label)
	require.Equal(t, ObjectProperty, created.Kind)
}

func TestPropertyDomainSkipsMissingClass(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateClass(Class{ID: "demo:Person", Label: "Person"})
	require.NoError(t, err)

	_, err = svc.CreateProperty(Property{
		ID:     "demo:name",
		Kind:   DataProperty,
		Domain: []string{"demo:Person", "demo:NoSuchClass"},
		Range:  []string{XSDString},
	})
	require.NoError(t, err)

	got, err := svc.Property("demo:name")
	require.NoError(t, err)
	// the missing domain class got no edge and is silently dropped
	require.Equal(t, []string{"demo:Person"}, got.Domain)
}

func TestPropertyDatatypeRangeRoundTrips(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProperty(Property{
		ID:    "demo:age",
		Kind:  DataProperty,
		Range: []string{XSDInteger},
	})
	require.NoError(t, err)

	got, err := svc.Property("demo:age")
	require.NoError(t, err)
	// xsd:integer is not a node yet the range edge is materialized
	require.Equal(t, []string{XSDInteger}, got.Range)
}

func TestPropertyCharacteristicsRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProperty(Property{
		ID:              "demo:ancestorOf",
		Characteristics: []Characteristic{Transitive, Irreflexive},
	})
	require.NoError(t, err)

	got, err := svc.Property("demo:ancestorOf")
	require.NoError(t, err)
	require.Equal(t, []Characteristic{Transitive, Irreflexive}, got.Characteristics)
}

func TestGetPropertyWrongKind(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateClass(Class{ID: "demo:Person", Label: "Person"})
	require.NoError(t, err)

	_, err = svc.Property("demo:Person")
	require.True(t, errors.IsValidation(err))
}

func TestGetPropertyMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Property("demo:nope")
	require.True(t, errors.IsNotFound(err))
}

func TestDirectProperties(t *testing.T) {
	svc, _ := newTestService(t)
	buildChain(t, svc)

	_, err := svc.CreateProperty(Property{
		ID: "demo:name", Label: "name", Kind: DataProperty,
		Domain:      []string{"demo:Animal"},
		Range:       []string{XSDString},
		Annotations: map[string]string{AnnotationRequired: "true"},
	})
	require.NoError(t, err)

	direct, err := svc.Properties.Direct("demo:Animal")
	require.NoError(t, err)
	require.Len(t, direct, 1)
	require.Equal(t, "demo:name", direct[0].ID)
	require.Equal(t, SourceDirect, direct[0].Source)
	require.True(t, direct[0].Required)

	none, err := svc.Properties.Direct("demo:Dog")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestInheritedPropertiesPath(t *testing.T) {
	svc, _ := newTestService(t)
	buildChain(t, svc)

	_, err := svc.CreateProperty(Property{
		ID: "demo:name", Label: "name", Kind: DataProperty,
		Domain: []string{"demo:Animal"}, Range: []string{XSDString},
	})
	require.NoError(t, err)

	inherited, err := svc.Properties.Inherited("demo:Dog")
	require.NoError(t, err)
	require.Len(t, inherited, 1)

	prop := inherited[0]
	require.Equal(t, "demo:name", prop.ID)
	require.Equal(t, "Animal", prop.Source, "source is the defining ancestor's label")
	// nearest ancestor first: Dog walks through Mammal to reach Animal
	require.Equal(t, []string{"Mammal", "Animal"}, prop.InheritancePath)
}

func TestInheritedPropertiesDiamondDuplicates(t *testing.T) {
	svc, _ := newTestService(t)

	for _, c := range []Class{
		{ID: "d:Top", Label: "Top"},
		{ID: "d:Left", Label: "Left", ParentClasses: []string{"d:Top"}},
		{ID: "d:Right", Label: "Right", ParentClasses: []string{"d:Top"}},
		{ID: "d:Bottom", Label: "Bottom", ParentClasses: []string{"d:Left", "d:Right"}},
	} {
		_, err := svc.CreateClass(c)
		require.NoError(t, err)
	}
	_, err := svc.CreateProperty(Property{
		ID: "d:shared", Label: "shared", Kind: DataProperty,
		Domain: []string{"d:Top"}, Range: []string{XSDString},
	})
	require.NoError(t, err)

	inherited, err := svc.Properties.Inherited("d:Bottom")
	require.NoError(t, err)
	// one entry per inheritance path, not deduplicated
	require.Len(t, inherited, 2)
	paths := [][]string{inherited[0].InheritancePath, inherited[1].InheritancePath}
	require.ElementsMatch(t, [][]string{
		{"Left", "Top"},
		{"Right", "Top"},
	}, paths)
}

func TestAllPropertiesCombinesDirectAndInherited(t *testing.T) {
	svc, _ := newTestService(t)
	buildChain(t, svc)

	_, err := svc.CreateProperty(Property{
		ID: "demo:name", Label: "name", Kind: DataProperty,
		Domain: []string{"demo:Animal"}, Range: []string{XSDString},
	})
	require.NoError(t, err)
	_, err = svc.CreateProperty(Property{
		ID: "demo:breed", Label: "breed", Kind: DataProperty,
		Domain: []string{"demo:Dog"}, Range: []string{XSDString},
	})
	require.NoError(t, err)

	all, err := svc.Properties.All("demo:Dog")
	require.NoError(t, err)
	require.Len(t, all, 2)
	// direct entries come first
	require.Equal(t, "demo:breed", all[0].ID)
	require.Equal(t, SourceDirect, all[0].Source)
	require.Equal(t, "demo:name", all[1].ID)
}
