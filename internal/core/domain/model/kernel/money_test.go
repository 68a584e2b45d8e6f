package kernel_test

import (
	"testing"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from valid decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("8.00"))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "8.00", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("should reject sub-cent precision", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("1.999"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "decimal places")
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse valid string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("17.50")

		require.NoError(t, err)
		assert.Equal(t, "17.50", m.String())
	})

	t.Run("should treat different scales as equal amounts", func(t *testing.T) {
		a, err := kernel.MoneyFromString("1.5")
		require.NoError(t, err)
		b, err := kernel.MoneyFromString("1.50")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("eight dollars")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("11.00")
		b, _ := kernel.MoneyFromString("6.50")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "17.50", sum.String())
	})

	t.Run("sub", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("17.50")
		b, _ := kernel.MoneyFromString("6.50")

		diff, err := a.Sub(b)

		require.NoError(t, err)
		assert.Equal(t, "11.00", diff.String())
	})

	t.Run("sub rejects negative result", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("1.00")
		b, _ := kernel.MoneyFromString("2.00")

		_, err := a.Sub(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("multiply", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("1.50")

		total, err := price.Multiply(2)

		require.NoError(t, err)
		assert.Equal(t, "3.00", total.String())
	})

	t.Run("multiply rejects negative factor", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("1.50")

		_, err := price.Multiply(-1)

		require.Error(t, err)
	})

	t.Run("exact decimal arithmetic has no float drift", func(t *testing.T) {
		// 0.1 + 0.2 == 0.3 exactly, which float64 cannot do.
		a, _ := kernel.MoneyFromString("0.10")
		b, _ := kernel.MoneyFromString("0.20")
		expected, _ := kernel.MoneyFromString("0.30")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("operations on zero value fail validation", func(t *testing.T) {
		var zero kernel.Money
		valid := kernel.ZeroMoney()

		_, err := zero.Add(valid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = valid.Add(zero)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = zero.Multiply(2)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("constructed money is valid", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Money must be created")
	})
}
