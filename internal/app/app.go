package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avstrong/hotelledger/internal/billing"
	"github.com/avstrong/hotelledger/internal/config"
	"github.com/avstrong/hotelledger/internal/ledger"
	"github.com/avstrong/hotelledger/internal/logger"
	"github.com/avstrong/hotelledger/internal/report/console"
	"github.com/avstrong/hotelledger/internal/seed"
	"github.com/avstrong/hotelledger/internal/storage/jsonfile"
)

const (
	defaultTaxRate      = 0.15
	defaultDiscountRate = 0.20
)

// Run wires the ledger and walks it through the demo scenario. Business
// failures along the way are reported by the ledger itself and do not stop
// the run.
func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf := config.Load()

	store := jsonfile.New(jsonfile.Config{L: l, Path: conf.DBPath})

	if err := seed.Up(ctx, l, store); err != nil {
		return fmt.Errorf("seed service catalog: %w", err)
	}

	l.LogInfo("Service catalog is ready")

	hotel := ledger.New(
		l,
		store,
		console.New(os.Stdout, conf.Currency),
		ledger.SystemClock{},
		billing.Tax{Rate: defaultTaxRate},
		billing.Discount{Rate: defaultDiscountRate},
	)

	return runScenario(ctx, l, hotel)
}

//nolint:funlen // it's a linear demo script
func runScenario(ctx context.Context, l *logger.Logger, hotel *ledger.Manager) error {
	rooms := []struct {
		number   int
		roomType string
		price    float64
	}{
		{101, "Single", 100},
		{102, "Double", 150},
		{103, "Suite", 250},
		{104, "Single", 100},
		{105, "Suite", 200},
	}

	for _, room := range rooms {
		_ = hotel.CreateRoom(ctx, room.number, room.roomType, room.price)
	}

	for _, room := range rooms {
		state, err := hotel.RoomStatus(ctx, room.number)
		if err != nil {
			return fmt.Errorf("room %v status: %w", room.number, err)
		}

		l.LogInfo("Room %v status: %v", room.number, state)
	}

	aliceCheckIn, err := ledger.ParseDate("2024-12-17")
	if err != nil {
		return fmt.Errorf("parse check-in date: %w", err)
	}

	bobCheckIn, err := ledger.ParseDate("2024-12-18")
	if err != nil {
		return fmt.Errorf("parse check-in date: %w", err)
	}

	aliceBooking, _ := hotel.BookRoom(ctx, &ledger.BookInput{
		CustomerName:  "Alice",
		RoomNumber:    101,
		CheckIn:       aliceCheckIn,
		StayLength:    3,
		Contact:       "555-1234",
		PaymentMethod: "Credit Card",
	})

	bobBooking, _ := hotel.BookRoom(ctx, &ledger.BookInput{
		CustomerName:  "Bob",
		RoomNumber:    102,
		CheckIn:       bobCheckIn,
		StayLength:    2,
		Contact:       "555-5678",
		PaymentMethod: "Debit Card",
	})

	_ = hotel.CheckIn(ctx, 101)
	_ = hotel.CheckIn(ctx, 102)

	if bobBooking != nil {
		_ = hotel.OrderService(ctx, bobBooking.ID, 1)
	}

	_ = hotel.CheckOut(ctx, 101)

	if _, err := hotel.GenerateReport(ctx, ledger.PeriodDaily); err != nil {
		return fmt.Errorf("generate daily report: %w", err)
	}

	if _, err := hotel.GenerateFinancialSummary(ctx, ledger.PeriodDaily); err != nil {
		return fmt.Errorf("generate daily financial summary: %w", err)
	}

	if _, err := hotel.SearchCustomers(ctx, "Alice"); err != nil {
		return fmt.Errorf("search customers: %w", err)
	}

	if _, err := hotel.SearchCustomers(ctx, "Bob"); err != nil {
		return fmt.Errorf("search customers: %w", err)
	}

	// Alice checked out above, so her bill reports a missing reservation.
	if aliceBooking != nil {
		_, _ = hotel.CalculateBill(ctx, aliceBooking.ID)
	}

	if bobBooking != nil {
		_, _ = hotel.CalculateBill(ctx, bobBooking.ID)
	}

	return nil
}
