package types

import (
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overload-resolver/primitive"
)

func testUniverse(t *testing.T) *Universe {
	t.Helper()

	u := NewUniverse()
	require.NoError(t, u.Add(ClassInfo{ID: "p.Shape", IsInterface: true}))
	require.NoError(t, u.Add(ClassInfo{ID: "p.Base", Interfaces: []string{"p.Shape"}}))
	require.NoError(t, u.Add(ClassInfo{ID: "p.Circle", Super: "p.Base"}))
	require.NoError(t, u.Add(ClassInfo{ID: "p.Square", Super: "p.Base", Interfaces: []string{"Serializable"}}))

	frozen, err := u.Freeze()
	require.NoError(t, err)

	return frozen
}

func TestUniverseSubclass(t *testing.T) {
	u := testUniverse(t)

	assert.True(t, u.IsSubclass("p.Circle", "p.Base"))
	assert.True(t, u.IsSubclass("p.Circle", "p.Shape"))
	assert.True(t, u.IsSubclass("p.Circle", ObjectID))
	assert.True(t, u.IsSubclass("Integer", "Number"))
	assert.True(t, u.IsSubclass("java.lang.Integer", "Comparable"))
	assert.False(t, u.IsSubclass("p.Base", "p.Circle"))
	assert.False(t, u.IsSubclass("Integer", "Long"))

	assert.Equal(t, []string{"p.Circle", "p.Base", "p.Shape", ObjectID}, u.Supertypes("p.Circle"))
}

func TestUniverseFreezeRejectsBrokenHierarchies(t *testing.T) {
	u := NewUniverse()
	require.NoError(t, u.Add(ClassInfo{ID: "p.A", Super: "p.Missing"}))
	_, err := u.Freeze()
	assert.ErrorContains(t, err, "unknown class")

	u = NewUniverse()
	require.NoError(t, u.Add(ClassInfo{ID: "p.A", Super: "p.B"}))
	require.NoError(t, u.Add(ClassInfo{ID: "p.B", Super: "p.A"}))
	_, err = u.Freeze()
	assert.ErrorContains(t, err, "cyclic")

	u = NewUniverse()
	require.NoError(t, u.Add(ClassInfo{ID: "p.A", Interfaces: []string{"Number"}}))
	_, err = u.Freeze()
	assert.ErrorContains(t, err, "non-interface")

	u = NewUniverse()
	assert.ErrorContains(t, u.Add(ClassInfo{ID: "Integer"}), "duplicate")

	frozen := u.MustFreeze()
	assert.ErrorIs(t, frozen.Add(ClassInfo{ID: "p.Late"}), ErrFrozen)
}

func TestUniverseIsSubtype(t *testing.T) {
	u := testUniverse(t)

	tests := []struct {
		name string
		t, s Type
		want bool
	}{
		{"null to class", Null(), Class("p.Base"), true},
		{"null to array", Null(), ArrayOf(Prim(primitive.KindInt)), true},
		{"null to primitive", Null(), Prim(primitive.KindInt), false},
		{"wrapper to Number", Wrapper(primitive.KindByte), Class(NumberID), true},
		{"Integer to Long", Wrapper(primitive.KindInt), Wrapper(primitive.KindLong), false},
		{"covariant arrays", ArrayOf(Class("p.Circle")), ArrayOf(Class("p.Shape")), true},
		{"primitive arrays are invariant", ArrayOf(Prim(primitive.KindInt)), ArrayOf(Prim(primitive.KindLong)), false},
		{"array to Cloneable", ArrayOf(Prim(primitive.KindInt)), Class(CloneableID), true},
		{"array to Number", ArrayOf(Prim(primitive.KindInt)), Class(NumberID), false},
		{"int to long is not subtyping", Prim(primitive.KindInt), Prim(primitive.KindLong), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.IsSubtype(tt.t, tt.s))
		})
	}
}

func TestUniverseLub(t *testing.T) {
	u := testUniverse(t)

	tests := []struct {
		name string
		a, b Type
		want Type
	}{
		{"Integer and Short meet at Number", Class("Integer"), Class("Short"), Class(NumberID)},
		{"Boolean and Double meet at Object", Class("Boolean"), Class("Double"), Class(ObjectID)},
		{"siblings meet at base", Class("p.Circle"), Class("p.Square"), Class("p.Base")},
		{"subclass and base", Class("p.Circle"), Class("p.Base"), Class("p.Base")},
		{"null yields the other", Null(), Class("p.Circle"), Class("p.Circle")},
		{"reference arrays", ArrayOf(Class("p.Circle")), ArrayOf(Class("p.Square")), ArrayOf(Class("p.Base"))},
		{"primitive arrays", ArrayOf(Prim(primitive.KindInt)), ArrayOf(Prim(primitive.KindLong)), Class(ObjectID)},
		{"unknown class meets at Object", Class("p.Unknown"), Class("Integer"), Class(ObjectID)},
		{"unknown and declared class", Class("p.Unknown"), Class("p.Circle"), Class(ObjectID)},
		{"unknown with itself", Class("p.Unknown"), Class("p.Unknown"), Class("p.Unknown")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := u.Lub(tt.a, tt.b)
			require.True(t, ok)
			assert.Equal(t, tt.want, got, spew.Sdump(got))

			swapped, ok := u.Lub(tt.b, tt.a)
			require.True(t, ok)
			assert.Equal(t, got, swapped, "lub must be symmetric")
		})
	}

	_, ok := u.Lub(Prim(primitive.KindInt), Class("Integer"))
	assert.False(t, ok)

	for _, other := range []Type{Class("Integer"), Class("p.Circle"), Null()} {
		lub, ok := u.Lub(Class("p.Unknown"), other)
		require.True(t, ok)
		assert.True(t, u.IsSubtype(Class("p.Unknown"), lub), "%s", lub)
		assert.True(t, u.IsSubtype(other, lub), "%s", lub)
	}
}

func TestUniverseConcurrentReaders(t *testing.T) {
	u := testUniverse(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				_, _ = u.Lub(Class("p.Circle"), Class("Integer"))
				_ = u.IsSubtype(Class("p.Square"), Class("Serializable"))
			}
		}()
	}

	wg.Wait()
}
