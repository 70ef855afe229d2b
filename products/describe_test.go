package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAmbiguousTitle(t *testing.T) {
	assert.False(t, isAmbiguousTitle("Ceramic Mug", "home"))

	// Generic terms make the title ambiguous regardless of case.
	assert.True(t, isAmbiguousTitle("Useful Thing", "home"))
	assert.True(t, isAmbiguousTitle("gadget device", "electronics"))

	// Too short, or no category.
	assert.True(t, isAmbiguousTitle("XY", "home"))
	assert.True(t, isAmbiguousTitle("Ceramic Mug", ""))
}

func TestDescribeProduct(t *testing.T) {
	// Unambiguous: generic blurb mentioning title and category.
	got := describeProduct("Ceramic Mug", "home")
	assert.Equal(t, "High-quality Ceramic Mug in the home category. Perfect for everyday use with excellent durability and performance.", got)

	// Ambiguous with a known category: per-category template.
	got = describeProduct("Smart Device", "electronics")
	assert.Contains(t, got, "Experience cutting-edge technology with the Smart Device.")
	assert.Contains(t, got, "premium electronics device")

	// Ambiguous with an unknown category: default fallback.
	got = describeProduct("Mystery Item", "gardening")
	assert.Contains(t, got, "Discover the exceptional quality of Mystery Item.")
	assert.Contains(t, got, "premium gardening product")
}
