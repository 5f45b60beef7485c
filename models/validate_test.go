package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidPrice(t *testing.T) {
	accepted := []string{"89.99", "10", "0.5", "0.01", "99999.99", "72.50"}
	for _, s := range accepted {
		assert.True(t, ValidPrice(s), "expected %q to be accepted", s)
	}

	rejected := []string{
		"", "0", "-1", "abc", "12abc",
		"1e3", "1E3", "1e300000000",
		"0.001", "1.500",
		"100000", "1234567890123",
	}
	for _, s := range rejected {
		assert.False(t, ValidPrice(s), "expected %q to be rejected", s)
	}
}

func TestDisplayPrice(t *testing.T) {
	item := MenuItem{Price: decimal.RequireFromString("72.5")}
	assert.Equal(t, "R72.50", item.DisplayPrice())
}
