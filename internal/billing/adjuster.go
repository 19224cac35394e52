// Package billing holds the charge adjusters applied to a bill once its
// subtotal is known.
package billing

import (
	"errors"
	"fmt"

	"github.com/avstrong/hotelledger/internal/ledger"
)

var ErrNegativeRate = errors.New("rate must not be negative")

type Tax struct {
	Rate float64
}

func (t Tax) Apply(bill *ledger.Bill) error {
	if t.Rate < 0 {
		return fmt.Errorf("tax rate %v: %w", t.Rate, ErrNegativeRate)
	}

	bill.TaxRate = t.Rate
	bill.Tax = bill.Subtotal * t.Rate

	return nil
}

type Discount struct {
	Rate float64
}

func (d Discount) Apply(bill *ledger.Bill) error {
	if d.Rate < 0 {
		return fmt.Errorf("discount rate %v: %w", d.Rate, ErrNegativeRate)
	}

	bill.DiscountRate = d.Rate
	bill.DiscountAmount = bill.Subtotal * d.Rate

	return nil
}
