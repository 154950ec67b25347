package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Takahiruma/lejapong/internal/domain"
)

func TestPlaceHasName(t *testing.T) {
	assert.True(t, domain.Place{Name: "Café Central"}.HasName())
	assert.True(t, domain.Place{Name: " Café Central "}.HasName())
	assert.False(t, domain.Place{Name: ""}.HasName())
	assert.False(t, domain.Place{Name: "   "}.HasName())
	assert.False(t, domain.Place{Name: "-"}.HasName())
	assert.False(t, domain.Place{Name: " - "}.HasName())
}
