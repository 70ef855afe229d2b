package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadNormalizeLegacyImageField(t *testing.T) {
	p := productPayload{Name: "Mug", Price: 199, ImageURLLegacy: "/static/uploads/product/a.jpg"}
	p.normalize()
	assert.Equal(t, "/static/uploads/product/a.jpg", p.ImageURL)
	assert.Empty(t, p.ImageURLLegacy)

	// Canonical spelling wins when both are present.
	p = productPayload{Name: "Mug", ImageURL: "/new.jpg", ImageURLLegacy: "/old.jpg"}
	p.normalize()
	assert.Equal(t, "/new.jpg", p.ImageURL)
}

func TestPayloadValidate(t *testing.T) {
	assert.Error(t, (&productPayload{Price: 10}).validate())            // missing name
	assert.Error(t, (&productPayload{Name: "x", Price: -1}).validate()) // negative price
	assert.Error(t, (&productPayload{Name: "x", Stock: -5}).validate()) // negative stock
	assert.NoError(t, (&productPayload{Name: "x", Price: 0, Stock: 0}).validate())
}
