package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(1234.567)
	assert.Equal(t, "1234.57", m.Round().String())

	d := decimal.NewFromInt(42)
	assert.True(t, NewMoneyFromDecimal(d).Equal(d))

	parsed, err := NewMoneyFromString("99.95")
	require.NoError(t, err)
	assert.Equal(t, "99.95", parsed.String())

	_, err = NewMoneyFromString("not-money")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(100.50)
	b := NewMoney(49.50)

	assert.Equal(t, "150.00", a.Add(b).String())
	assert.Equal(t, "51.00", a.Sub(b).String())

	monthly := NewMoney(1000)
	assert.Equal(t, "12000.00", monthly.Annual().String())
	assert.Equal(t, "1000.00", monthly.Annual().Monthly().String())
}

func TestMoneyMinMaxZero(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, Min(a, b).Equal(a.Decimal))
	assert.True(t, Max(a, b).Equal(b.Decimal))
	assert.True(t, Zero().IsZero())
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "$1500.00", NewMoney(1500).Format())
	assert.Equal(t, "-$250.75", NewMoney(-250.75).Format())
}
