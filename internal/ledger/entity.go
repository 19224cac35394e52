package ledger

import "github.com/google/uuid"

type RoomState string

const (
	StateAvailable RoomState = "Available"
	StateOccupied  RoomState = "Occupied"
	StateNotFound  RoomState = "NotFound"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

type Room struct {
	Number    int     `json:"roomNumber"`
	Type      string  `json:"roomType"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

type Customer struct {
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	PaymentMethod string `json:"paymentMethod"`
}

type Reservation struct {
	ID           int    `json:"reservationId"`
	CustomerName string `json:"customerName"`
	RoomNumber   int    `json:"roomNumber"`
	CheckIn      Date   `json:"checkInDate"`
	CheckOut     Date   `json:"checkOutDate"`
}

// Service is a static catalog entry guests can order against a reservation.
type Service struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderedService struct {
	ReservationID int `json:"reservationId"`
	ServiceID     int `json:"serviceId"`
}

type BookInput struct {
	CustomerName  string
	RoomNumber    int
	CheckIn       Date
	StayLength    int
	Contact       string
	PaymentMethod string
}

type Bill struct {
	Reference      uuid.UUID
	ReservationID  int
	CustomerName   string
	RoomNumber     int
	StayDuration   int
	RoomCharges    float64
	ServiceCharges float64
	Subtotal       float64
	TaxRate        float64
	Tax            float64
	DiscountRate   float64
	DiscountAmount float64
	Total          float64
}

type CustomerStats struct {
	TotalCustomers int
	ContactCounts  map[string]int
}

type Report struct {
	Period        Period
	From          Date
	To            Date
	OccupancyRate float64
	Revenue       float64
	Customers     *CustomerStats
}

type FinancialSummary struct {
	Period  Period
	From    Date
	To      Date
	Revenue float64
}
