package seed

import (
	"context"
	"fmt"

	"github.com/avstrong/hotelledger/internal/ledger"
	"github.com/avstrong/hotelledger/internal/logger"
)

type storage interface {
	Load(ctx context.Context) (*ledger.Snapshot, error)
	Save(ctx context.Context, snap *ledger.Snapshot) error
}

func catalog() []ledger.Service {
	return []ledger.Service{
		{ID: 1, Name: "Meal", Price: 50},
		{ID: 2, Name: "Laundry", Price: 20},
		{ID: 3, Name: "Spa", Price: 100},
	}
}

// Up makes sure the static service catalog exists in the document. It is
// idempotent and runs on every start.
func Up(ctx context.Context, l *logger.Logger, storage storage) error {
	snap, err := storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	var added int

	for _, service := range catalog() {
		if _, ok := snap.ServiceByID(service.ID); ok {
			continue
		}

		snap.AvailableServices = append(snap.AvailableServices, service)
		added++
	}

	if added == 0 {
		return nil
	}

	if err := storage.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	l.LogInfo("Seeded %v service catalog entries", added)

	return nil
}
