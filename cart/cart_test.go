package cart

import (
	"testing"

	"nextshop/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateItem(t *testing.T) {
	ok := models.CartItem{ProductID: "p1", Name: "Mug", Quantity: 2, Price: 199}
	assert.True(t, validateItem(ok))

	missingID := ok
	missingID.ProductID = ""
	assert.False(t, validateItem(missingID))

	zeroQty := ok
	zeroQty.Quantity = 0
	assert.False(t, validateItem(zeroQty))

	negativePrice := ok
	negativePrice.Price = -1
	assert.False(t, validateItem(negativePrice))

	freeItem := ok
	freeItem.Price = 0
	assert.True(t, validateItem(freeItem))
}
