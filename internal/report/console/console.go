// Package console renders bills and reports for the human operator. It is
// the ledger's only output surface besides the status log.
package console

import (
	"fmt"
	"io"

	"github.com/avstrong/hotelledger/internal/ledger"
)

type Console struct {
	w        io.Writer
	currency string
}

func New(w io.Writer, currency string) *Console {
	return &Console{
		w:        w,
		currency: currency,
	}
}

func (c *Console) Bill(bill *ledger.Bill) {
	fmt.Fprintf(c.w, "\n----- BILL -----\n")
	fmt.Fprintf(c.w, "Reference: %v\n", bill.Reference)
	fmt.Fprintf(c.w, "Customer Name: %v\n", bill.CustomerName)
	fmt.Fprintf(c.w, "Room Number: %v\n", bill.RoomNumber)
	fmt.Fprintf(c.w, "Stay Duration: %v days\n", bill.StayDuration)
	fmt.Fprintf(c.w, "Room Charges: %v%.2f\n", c.currency, bill.RoomCharges)
	fmt.Fprintf(c.w, "Service Charges: %v%.2f\n", c.currency, bill.ServiceCharges)
	fmt.Fprintf(c.w, "Tax (%.1f%%): %v%.2f\n", bill.TaxRate*100, c.currency, bill.Tax)
	fmt.Fprintf(c.w, "Discount (%.1f%%): -%v%.2f\n", bill.DiscountRate*100, c.currency, bill.DiscountAmount)
	fmt.Fprintf(c.w, "Total Amount: %v%.2f\n", c.currency, bill.Total)
	fmt.Fprintf(c.w, "----------------\n\n")
}

func (c *Console) Report(report *ledger.Report) {
	fmt.Fprintf(c.w, "Generating %v report from %v to %v...\n\n", report.Period, report.From, report.To)
	fmt.Fprintf(c.w, "Room Occupancy Rate: %.2f%%\n", report.OccupancyRate)
	fmt.Fprintf(c.w, "Total Revenue: %v%.2f\n", c.currency, report.Revenue)
	fmt.Fprintf(c.w, "Customer Statistics: %v customers, contacts %v\n\n", report.Customers.TotalCustomers, report.Customers.ContactCounts)
}

func (c *Console) FinancialSummary(summary *ledger.FinancialSummary) {
	fmt.Fprintf(c.w, "Financial Summary for %v (from %v to %v):\n", summary.Period, summary.From, summary.To)
	fmt.Fprintf(c.w, "Total Revenue: %v%.2f\n\n", c.currency, summary.Revenue)
}
