package banners

import (
	"testing"

	"nextshop/models"

	"github.com/stretchr/testify/assert"
)

func TestValidPosition(t *testing.T) {
	assert.True(t, validPosition(models.BannerHero))
	assert.True(t, validPosition(models.BannerSidebar))
	assert.True(t, validPosition(models.BannerFooter))
	assert.False(t, validPosition(""))
	assert.False(t, validPosition("popup"))
}

func TestBannerPayloadValidate(t *testing.T) {
	good := bannerPayload{Title: "Summer Sale", Position: models.BannerHero}
	assert.NoError(t, good.validate())

	noTitle := bannerPayload{Position: models.BannerHero}
	assert.ErrorIs(t, noTitle.validate(), errTitleRequired)

	badPosition := bannerPayload{Title: "Summer Sale", Position: "modal"}
	assert.ErrorIs(t, badPosition.validate(), errBadPosition)
}
