package settings

import (
	"testing"

	"nextshop/models"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	ok := models.Settings{
		Tax:      models.TaxConfig{Rate: 5, Enabled: true},
		Shipping: models.ShippingConfig{FreeShippingThreshold: 2000, StandardRate: 99, ExpressRate: 199},
	}
	assert.NoError(t, Validate(ok))

	bad := ok
	bad.Tax.Rate = 101
	assert.Error(t, Validate(bad))

	bad = ok
	bad.Tax.Rate = -1
	assert.Error(t, Validate(bad))

	bad = ok
	bad.Shipping.FreeShippingThreshold = -1
	assert.Error(t, Validate(bad))

	bad = ok
	bad.Shipping.ExpressRate = -50
	assert.Error(t, Validate(bad))
}

func TestSaveGuard(t *testing.T) {
	// First-time save: upsert allowed, filter pinned to revision 0.
	first := saveGuard(0)
	assert.True(t, first.Upsert)
	assert.Equal(t, int64(1), first.Next)
	assert.Equal(t, "main", first.Filter["_id"])
	assert.Equal(t, int64(0), first.Filter["revision"])

	// Later saves must match the stored revision exactly, no upsert.
	later := saveGuard(7)
	assert.False(t, later.Upsert)
	assert.Equal(t, int64(8), later.Next)
	assert.Equal(t, int64(7), later.Filter["revision"])
}

func TestStaleWrite(t *testing.T) {
	// Nothing matched and nothing upserted: the caller's revision is
	// stale and the write must be rejected.
	assert.True(t, staleWrite(0, 0))

	// A matched document or a fresh upsert is a successful write.
	assert.False(t, staleWrite(1, 0))
	assert.False(t, staleWrite(0, 1))
}

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	assert.False(t, s.Tax.Enabled)
	assert.Zero(t, s.Tax.Rate)
	assert.Zero(t, s.Shipping.StandardRate)
	assert.Zero(t, s.Revision)
}
