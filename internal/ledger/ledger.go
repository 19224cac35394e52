package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avstrong/hotelledger/internal/logger"
)

type storage interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

type reporter interface {
	Bill(bill *Bill)
	Report(report *Report)
	FinancialSummary(summary *FinancialSummary)
}

type clock interface {
	Now() time.Time
}

// ChargeAdjuster mutates a bill after its subtotal is known, e.g. tax or a
// promotional discount.
type ChargeAdjuster interface {
	Apply(bill *Bill) error
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

var recognizedPaymentMethods = map[string]struct{}{
	"Credit Card": {},
	"Debit Card":  {},
	"Cash":        {},
}

// Manager is the hotel ledger: every operation loads the full snapshot from
// storage, works on it in memory and saves it back when it mutated anything.
type Manager struct {
	l        *logger.Logger
	storage  storage
	reporter reporter
	clock    clock
	defaults []ChargeAdjuster
}

func New(l *logger.Logger, storage storage, reporter reporter, clock clock, defaultAdjusters ...ChargeAdjuster) *Manager {
	return &Manager{
		l:        l,
		storage:  storage,
		reporter: reporter,
		clock:    clock,
		defaults: defaultAdjusters,
	}
}

func (b *BookInput) validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(b.CustomerName) == "" {
		inputErr.addError("customerName", "provide a customer name")
	}

	if b.RoomNumber <= 0 {
		inputErr.addError("roomNumber", "provide a positive room number")
	}

	if b.CheckIn.IsZero() {
		inputErr.addError("checkIn", "provide a check-in date")
	}

	if b.StayLength <= 0 {
		inputErr.addError("stayLength", "stay length must be at least one night")
	}

	if strings.TrimSpace(b.Contact) == "" {
		inputErr.addError("contact", "provide a contact")
	}

	if _, ok := recognizedPaymentMethods[b.PaymentMethod]; !ok {
		inputErr.addError("paymentMethod", "provide a recognized payment method")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (m *Manager) CreateRoom(ctx context.Context, number int, roomType string, price float64) error {
	inputErr := newInputError()

	if number <= 0 {
		inputErr.addError("number", "provide a positive room number")
	}

	if strings.TrimSpace(roomType) == "" {
		inputErr.addError("type", "provide a room type")
	}

	if price < 0 {
		inputErr.addError("price", "price must not be negative")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	snap, err := m.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if snap.RoomByNumber(number) != nil {
		m.l.Statusf("Room %v already exists.", number)

		return fmt.Errorf("room %v: %w", number, ErrRoomExists)
	}

	snap.Rooms = append(snap.Rooms, &Room{
		Number:    number,
		Type:      strings.ToLower(roomType),
		Price:     price,
		Available: true,
	})

	if err := m.storage.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	m.l.Statusf("Room %v (%v) created successfully.", number, roomType)

	return nil
}

func (m *Manager) RoomStatus(ctx context.Context, number int) (RoomState, error) {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return StateNotFound, fmt.Errorf("load snapshot: %w", err)
	}

	room := snap.RoomByNumber(number)

	switch {
	case room == nil:
		return StateNotFound, nil
	case room.Available:
		return StateAvailable, nil
	default:
		return StateOccupied, nil
	}
}

func (m *Manager) UpsertCustomer(ctx context.Context, name, contact, paymentMethod string) error {
	inputErr := newInputError()

	if strings.TrimSpace(name) == "" {
		inputErr.addError("name", "provide a customer name")
	}

	if strings.TrimSpace(contact) == "" {
		inputErr.addError("contact", "provide a contact")
	}

	if _, ok := recognizedPaymentMethods[paymentMethod]; !ok {
		inputErr.addError("paymentMethod", "provide a recognized payment method")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	snap, err := m.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if snap.HasCustomer(name, contact) {
		m.l.Statusf("Customer %v with contact %v already exists.", name, contact)

		return nil
	}

	snap.Customers = append(snap.Customers, Customer{
		Name:          name,
		Contact:       contact,
		PaymentMethod: paymentMethod,
	})

	if err := m.storage.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	m.l.Statusf("Customer %v added successfully.", name)

	return nil
}

func (m *Manager) SearchCustomers(ctx context.Context, name string) ([]Customer, error) {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var result []Customer

	for _, customer := range snap.Customers {
		if customer.Name == name {
			result = append(result, customer)
		}
	}

	if len(result) == 0 {
		m.l.Statusf("No customer found with name %v.", name)

		return result, nil
	}

	m.l.Statusf("Customer(s) found: %+v", result)

	return result, nil
}

func (m *Manager) BookRoom(ctx context.Context, input *BookInput) (*Reservation, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	snap, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	room := snap.RoomByNumber(input.RoomNumber)
	if room == nil {
		m.l.Statusf("Room %v is not available.", input.RoomNumber)

		return nil, fmt.Errorf("room %v: %w", input.RoomNumber, ErrRoomNotFound)
	}

	if !room.Available {
		m.l.Statusf("Room %v is not available.", input.RoomNumber)

		return nil, fmt.Errorf("room %v: %w", input.RoomNumber, ErrRoomOccupied)
	}

	room.Available = false

	if !snap.HasCustomer(input.CustomerName, input.Contact) {
		snap.Customers = append(snap.Customers, Customer{
			Name:          input.CustomerName,
			Contact:       input.Contact,
			PaymentMethod: input.PaymentMethod,
		})
	}

	reservation := &Reservation{
		ID:           snap.nextReservationID(),
		CustomerName: input.CustomerName,
		RoomNumber:   input.RoomNumber,
		CheckIn:      input.CheckIn,
		CheckOut:     input.CheckIn.AddDays(input.StayLength),
	}

	snap.Reservations = append(snap.Reservations, reservation)

	if err := m.storage.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	m.l.Statusf("Room %v booked successfully for %v.", input.RoomNumber, input.CustomerName)

	return reservation, nil
}

// CheckIn is advisory: it confirms a reservation for the room starts today
// and never mutates stored state.
func (m *Manager) CheckIn(ctx context.Context, roomNumber int) error {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	today := DateOf(m.clock.Now())

	for _, reservation := range snap.Reservations {
		if reservation.RoomNumber == roomNumber && reservation.CheckIn.Equal(today) {
			m.l.Statusf("Guest %v checked into room %v.", reservation.CustomerName, roomNumber)

			return nil
		}
	}

	m.l.Statusf("No reservation found for room %v today.", roomNumber)

	return fmt.Errorf("room %v: %w", roomNumber, ErrNoReservationToday)
}

func (m *Manager) CheckOut(ctx context.Context, roomNumber int) error {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	room := snap.RoomByNumber(roomNumber)
	if room == nil {
		m.l.Statusf("Room %v not found.", roomNumber)

		return fmt.Errorf("room %v: %w", roomNumber, ErrRoomNotFound)
	}

	room.Available = true
	snap.RemoveReservationsForRoom(roomNumber)

	if err := m.storage.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	m.l.Statusf("Room %v has been checked out and is now available.", roomNumber)

	return nil
}

// OrderService charges a catalog service to a live reservation.
func (m *Manager) OrderService(ctx context.Context, reservationID, serviceID int) error {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if snap.ReservationByID(reservationID) == nil {
		m.l.Statusf("No reservation found with ID %v", reservationID)

		return fmt.Errorf("reservation %v: %w", reservationID, ErrReservationNotFound)
	}

	service, ok := snap.ServiceByID(serviceID)
	if !ok {
		m.l.Statusf("No service found with ID %v", serviceID)

		return fmt.Errorf("service %v: %w", serviceID, ErrServiceNotFound)
	}

	snap.OrderedServices = append(snap.OrderedServices, OrderedService{
		ReservationID: reservationID,
		ServiceID:     serviceID,
	})

	if err := m.storage.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	m.l.Statusf("Service %v ordered for reservation %v.", service.Name, reservationID)

	return nil
}

func (m *Manager) CalculateBill(ctx context.Context, reservationID int, adjusters ...ChargeAdjuster) (*Bill, error) {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	reservation := snap.ReservationByID(reservationID)
	if reservation == nil {
		m.l.Statusf("No reservation found with ID %v", reservationID)

		return nil, fmt.Errorf("reservation %v: %w", reservationID, ErrReservationNotFound)
	}

	room := snap.RoomByNumber(reservation.RoomNumber)
	if room == nil {
		return nil, fmt.Errorf("room %v for reservation %v: %w", reservation.RoomNumber, reservationID, ErrRoomNotFound)
	}

	stay := reservation.CheckIn.DaysUntil(reservation.CheckOut)

	//nolint:exhaustruct
	bill := &Bill{
		Reference:     uuid.New(),
		ReservationID: reservation.ID,
		CustomerName:  reservation.CustomerName,
		RoomNumber:    reservation.RoomNumber,
		StayDuration:  stay,
		RoomCharges:   room.Price * float64(stay),
	}

	for _, ordered := range snap.OrderedServices {
		if ordered.ReservationID != reservationID {
			continue
		}

		service, ok := snap.ServiceByID(ordered.ServiceID)
		if !ok {
			continue
		}

		bill.ServiceCharges += service.Price
	}

	bill.Subtotal = bill.RoomCharges + bill.ServiceCharges

	if len(adjusters) == 0 {
		adjusters = m.defaults
	}

	for _, adjuster := range adjusters {
		if err := adjuster.Apply(bill); err != nil {
			return nil, fmt.Errorf("apply adjuster to bill: %w", err)
		}
	}

	bill.Total = bill.Subtotal + bill.Tax - bill.DiscountAmount

	m.reporter.Bill(bill)

	return bill, nil
}

func (m *Manager) OccupancyRate(ctx context.Context) (float64, error) {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load snapshot: %w", err)
	}

	return occupancyOf(snap), nil
}

// RevenueReport sums room charges over reservations whose check-in date falls
// within [from, to] inclusive. A zero-value bound makes the range unbounded.
func (m *Manager) RevenueReport(ctx context.Context, from, to Date) (float64, error) {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load snapshot: %w", err)
	}

	return revenueOf(snap, from, to)
}

func (m *Manager) CustomerStatistics(ctx context.Context) (*CustomerStats, error) {
	snap, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return statsOf(snap), nil
}

func (m *Manager) GenerateReport(ctx context.Context, period Period) (*Report, error) {
	from, to, err := m.periodWindow(period)
	if err != nil {
		m.l.Statusf("Invalid period specified. Please choose 'daily', 'weekly', or 'monthly'.")

		return nil, err
	}

	snap, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	revenue, err := revenueOf(snap, from, to)
	if err != nil {
		return nil, fmt.Errorf("compute revenue: %w", err)
	}

	report := &Report{
		Period:        period,
		From:          from,
		To:            to,
		OccupancyRate: occupancyOf(snap),
		Revenue:       revenue,
		Customers:     statsOf(snap),
	}

	m.reporter.Report(report)

	return report, nil
}

func (m *Manager) GenerateFinancialSummary(ctx context.Context, period Period) (*FinancialSummary, error) {
	from, to, err := m.periodWindow(period)
	if err != nil {
		m.l.Statusf("Invalid period specified. Please choose 'daily', 'weekly', or 'monthly'.")

		return nil, err
	}

	snap, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	revenue, err := revenueOf(snap, from, to)
	if err != nil {
		return nil, fmt.Errorf("compute revenue: %w", err)
	}

	summary := &FinancialSummary{
		Period:  period,
		From:    from,
		To:      to,
		Revenue: revenue,
	}

	m.reporter.FinancialSummary(summary)

	return summary, nil
}

func (m *Manager) periodWindow(period Period) (Date, Date, error) {
	today := DateOf(m.clock.Now())

	switch period {
	case PeriodDaily:
		return today, today, nil
	case PeriodWeekly:
		return today.AddDays(-7), today, nil //nolint:gomnd
	case PeriodMonthly:
		return today.FirstOfMonth(), today, nil
	}

	return Date{}, Date{}, fmt.Errorf("period %q: %w", period, ErrInvalidPeriod)
}

func occupancyOf(snap *Snapshot) float64 {
	if len(snap.Rooms) == 0 {
		return 0
	}

	var occupied int

	for _, room := range snap.Rooms {
		if !room.Available {
			occupied++
		}
	}

	return float64(occupied) / float64(len(snap.Rooms)) * 100 //nolint:gomnd
}

func revenueOf(snap *Snapshot, from, to Date) (float64, error) {
	unbounded := from.IsZero() || to.IsZero()

	var total float64

	for _, reservation := range snap.Reservations {
		if !unbounded && (reservation.CheckIn.Before(from) || reservation.CheckIn.After(to)) {
			continue
		}

		room := snap.RoomByNumber(reservation.RoomNumber)
		if room == nil {
			return 0, fmt.Errorf("reservation %v references room %v: %w", reservation.ID, reservation.RoomNumber, ErrRoomNotFound)
		}

		total += room.Price * float64(reservation.CheckIn.DaysUntil(reservation.CheckOut))
	}

	return total, nil
}

func statsOf(snap *Snapshot) *CustomerStats {
	stats := &CustomerStats{
		TotalCustomers: len(snap.Customers),
		ContactCounts:  make(map[string]int),
	}

	for _, customer := range snap.Customers {
		stats.ContactCounts[customer.Contact]++
	}

	return stats
}
