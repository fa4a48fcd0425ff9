package warm

import (
	"context"
	"time"

	contractsvc "dormdesk/internal/services/contract"
	roomsvc "dormdesk/internal/services/room"
	roomtypesvc "dormdesk/internal/services/roomtype"
	usagesvc "dormdesk/internal/services/usage"
	utilitysvc "dormdesk/internal/services/utility"
	"dormdesk/pkg/crud"

	"github.com/rs/zerolog/log"
)

// Worker periodically pre-fills the first page of each admin list so
// the landing screens hit a warm cache after an invalidation.
type Worker struct {
	rooms     *roomsvc.Service
	roomTypes *roomtypesvc.Service
	utilities *utilitysvc.Service
	usage     *usagesvc.Service
	contracts *contractsvc.Service
	pollEvery time.Duration
}

func NewWorker(
	rooms *roomsvc.Service,
	roomTypes *roomtypesvc.Service,
	utilities *utilitysvc.Service,
	usage *usagesvc.Service,
	contracts *contractsvc.Service,
) *Worker {
	return &Worker{
		rooms:     rooms,
		roomTypes: roomTypes,
		utilities: utilities,
		usage:     usage,
		contracts: contracts,
		pollEvery: 30 * time.Second,
	}
}

func (w *Worker) Run(ctx context.Context) {
	log.Info().Msg("cache warm worker: started")
	t := time.NewTicker(w.pollEvery)
	defer t.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("cache warm worker: stopping")
			return
		case <-t.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	// Each List call reads through the shared cache, so a hit is free
	// and a miss rebuilds the page.
	params := crud.ListParams{Page: 1, Size: crud.DefaultPageSize}

	if _, err := w.rooms.List(ctx, params); err != nil {
		log.Error().Err(err).Msg("warm worker: rooms page failed")
	}
	if _, err := w.roomTypes.List(ctx, params); err != nil {
		log.Error().Err(err).Msg("warm worker: room types page failed")
	}
	if _, err := w.utilities.List(ctx, params); err != nil {
		log.Error().Err(err).Msg("warm worker: utilities page failed")
	}
	if _, err := w.usage.List(ctx, params); err != nil {
		log.Error().Err(err).Msg("warm worker: usage page failed")
	}
	if _, err := w.contracts.List(ctx, params); err != nil {
		log.Error().Err(err).Msg("warm worker: contracts page failed")
	}
}
