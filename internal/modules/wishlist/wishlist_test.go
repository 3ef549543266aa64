package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlist_Toggle(t *testing.T) {
	w := New()

	added := w.Toggle("1")
	assert.True(t, added)
	assert.True(t, w.Has("1"))
	assert.Equal(t, 1, w.Len())

	added = w.Toggle("1")
	assert.False(t, added)
	assert.False(t, w.Has("1"))
	assert.Equal(t, 0, w.Len())
}

func TestWishlist_DoubleToggleRestoresMembership(t *testing.T) {
	w := New()
	w.Toggle("1")
	w.Toggle("2")

	before := w.Len()
	w.Toggle("3")
	w.Toggle("3")

	assert.Equal(t, before, w.Len())
	assert.True(t, w.Has("1"))
	assert.True(t, w.Has("2"))
	assert.False(t, w.Has("3"))
}

func TestWishlist_IDs(t *testing.T) {
	w := New()
	w.Toggle("2")
	w.Toggle("5")

	assert.ElementsMatch(t, []string{"2", "5"}, w.IDs())
}
