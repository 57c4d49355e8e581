package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overload-resolver/primitive"
)

func TestBoxingTableIsBijective(t *testing.T) {
	t.Parallel()

	seen := map[primitive.Wrapper]primitive.KindEnum{}

	for _, kind := range primitive.Kinds() {
		w, ok := primitive.Box(kind)
		require.True(t, ok, kind.String())

		_, dup := seen[w]
		assert.False(t, dup, "wrapper %s boxed twice", w)
		seen[w] = kind

		back, ok := primitive.Unbox(w)
		require.True(t, ok)
		assert.Equal(t, kind, back)
	}

	assert.Len(t, seen, 8)
}

func TestBoxRejectsInvalidKinds(t *testing.T) {
	t.Parallel()

	_, ok := primitive.Box(primitive.KindEnum(0))
	assert.False(t, ok)

	_, ok = primitive.Unbox(primitive.Wrapper(42))
	assert.False(t, ok)

	assert.Equal(t, primitive.Wrapper(0), primitive.WrapperByClass("java.lang.Number"))
	assert.Equal(t, primitive.WrapperInteger, primitive.WrapperByClass("Integer"))
}
