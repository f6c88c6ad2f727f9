//go:build unit

package promotion_test

import (
	"testing"

	"fieldbook/internal/domain/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackages(t *testing.T) {
	pkgs := promotion.Packages()
	require.Len(t, pkgs, 5)

	pro, err := promotion.Find("3days-pro")
	require.NoError(t, err)
	assert.True(t, pro.IsPro)
	assert.Equal(t, 3, pro.Days)

	_, err = promotion.Find("forever")
	assert.ErrorIs(t, err, promotion.ErrUnknownPackage)

	pkgs[0].Price = 1
	again, _ := promotion.Find(pkgs[0].ID)
	assert.NotEqual(t, int64(1), again.Price)
}
