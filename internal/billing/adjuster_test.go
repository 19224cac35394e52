package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotelledger/internal/billing"
	"github.com/avstrong/hotelledger/internal/ledger"
)

func TestTaxApply(t *testing.T) {
	bill := &ledger.Bill{Subtotal: 300}

	require.NoError(t, billing.Tax{Rate: 0.15}.Apply(bill))

	assert.InDelta(t, 0.15, bill.TaxRate, 1e-9)
	assert.InDelta(t, 45.0, bill.Tax, 1e-9)
}

func TestDiscountApply(t *testing.T) {
	bill := &ledger.Bill{Subtotal: 300}

	require.NoError(t, billing.Discount{Rate: 0.20}.Apply(bill))

	assert.InDelta(t, 0.20, bill.DiscountRate, 1e-9)
	assert.InDelta(t, 60.0, bill.DiscountAmount, 1e-9)
}

func TestNegativeRatesRejected(t *testing.T) {
	bill := &ledger.Bill{Subtotal: 300}

	err := billing.Tax{Rate: -0.1}.Apply(bill)
	require.ErrorIs(t, err, billing.ErrNegativeRate)

	err = billing.Discount{Rate: -0.1}.Apply(bill)
	require.ErrorIs(t, err, billing.ErrNegativeRate)
}
