package ledger

import "github.com/avstrong/hotelledger/internal/ledger/sequence"

// Snapshot is the full persisted state of the ledger: the five named
// collections plus the reservation id counter. Every operation loads one,
// mutates it in memory and saves it back whole.
type Snapshot struct {
	Rooms             []*Room          `json:"rooms"`
	Reservations      []*Reservation   `json:"reservations"`
	Customers         []Customer       `json:"customers"`
	AvailableServices []Service        `json:"availableServices"`
	OrderedServices   []OrderedService `json:"orderedServices"`

	// LastReservationID is persisted with the document so ids stay
	// monotonic even after check-out deletes reservations.
	LastReservationID int `json:"lastReservationId"`
}

func NewSnapshot() *Snapshot {
	//nolint:exhaustruct
	return &Snapshot{
		Rooms:             []*Room{},
		Reservations:      []*Reservation{},
		Customers:         []Customer{},
		AvailableServices: []Service{},
		OrderedServices:   []OrderedService{},
	}
}

func (s *Snapshot) RoomByNumber(number int) *Room {
	for _, room := range s.Rooms {
		if room.Number == number {
			return room
		}
	}

	return nil
}

func (s *Snapshot) ReservationByID(id int) *Reservation {
	for _, reservation := range s.Reservations {
		if reservation.ID == id {
			return reservation
		}
	}

	return nil
}

func (s *Snapshot) ServiceByID(id int) (Service, bool) {
	for _, service := range s.AvailableServices {
		if service.ID == id {
			return service, true
		}
	}

	return Service{}, false //nolint:exhaustruct
}

func (s *Snapshot) HasCustomer(name, contact string) bool {
	for _, customer := range s.Customers {
		if customer.Name == name && customer.Contact == contact {
			return true
		}
	}

	return false
}

// RemoveReservationsForRoom drops every reservation referencing the room
// number and reports how many were removed.
func (s *Snapshot) RemoveReservationsForRoom(number int) int {
	kept := s.Reservations[:0]

	for _, reservation := range s.Reservations {
		if reservation.RoomNumber != number {
			kept = append(kept, reservation)
		}
	}

	removed := len(s.Reservations) - len(kept)
	s.Reservations = kept

	return removed
}

func (s *Snapshot) nextReservationID() int {
	return sequence.New(&s.LastReservationID).Next()
}
