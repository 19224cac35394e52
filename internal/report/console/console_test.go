package console_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avstrong/hotelledger/internal/ledger"
	"github.com/avstrong/hotelledger/internal/report/console"
)

func TestBillRendering(t *testing.T) {
	var buf bytes.Buffer

	console.New(&buf, "$").Bill(&ledger.Bill{
		Reference:      uuid.MustParse("a2aa65a2-4b9e-4b37-9d3c-24a4a96a3fe3"),
		ReservationID:  1,
		CustomerName:   "Alice",
		RoomNumber:     101,
		StayDuration:   3,
		RoomCharges:    300,
		ServiceCharges: 0,
		Subtotal:       300,
		TaxRate:        0.15,
		Tax:            45,
		DiscountRate:   0.20,
		DiscountAmount: 60,
		Total:          285,
	})

	out := buf.String()

	assert.Contains(t, out, "----- BILL -----")
	assert.Contains(t, out, "Customer Name: Alice")
	assert.Contains(t, out, "Room Number: 101")
	assert.Contains(t, out, "Stay Duration: 3 days")
	assert.Contains(t, out, "Room Charges: $300.00")
	assert.Contains(t, out, "Tax (15.0%): $45.00")
	assert.Contains(t, out, "Discount (20.0%): -$60.00")
	assert.Contains(t, out, "Total Amount: $285.00")
	assert.Contains(t, out, "a2aa65a2-4b9e-4b37-9d3c-24a4a96a3fe3")
}

func TestReportRendering(t *testing.T) {
	var buf bytes.Buffer

	from, _ := ledger.ParseDate("2024-12-17")

	console.New(&buf, "$").Report(&ledger.Report{
		Period:        ledger.PeriodDaily,
		From:          from,
		To:            from,
		OccupancyRate: 40,
		Revenue:       300,
		Customers: &ledger.CustomerStats{
			TotalCustomers: 2,
			ContactCounts:  map[string]int{"555-1234": 2},
		},
	})

	out := buf.String()

	assert.Contains(t, out, "Generating daily report from 2024-12-17 to 2024-12-17")
	assert.Contains(t, out, "Room Occupancy Rate: 40.00%")
	assert.Contains(t, out, "Total Revenue: $300.00")
	assert.Contains(t, out, "2 customers")
}

func TestFinancialSummaryRendering(t *testing.T) {
	var buf bytes.Buffer

	from, _ := ledger.ParseDate("2024-12-10")
	to, _ := ledger.ParseDate("2024-12-17")

	console.New(&buf, "€").FinancialSummary(&ledger.FinancialSummary{
		Period:  ledger.PeriodWeekly,
		From:    from,
		To:      to,
		Revenue: 600,
	})

	out := buf.String()

	assert.Contains(t, out, "Financial Summary for weekly (from 2024-12-10 to 2024-12-17)")
	assert.Contains(t, out, "Total Revenue: €600.00")
}
