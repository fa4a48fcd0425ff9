package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dormdesk/internal/cache"
	"dormdesk/internal/config"
	"dormdesk/internal/core/warm"
	httpx "dormdesk/internal/http"
	contractsvc "dormdesk/internal/services/contract"
	roomsvc "dormdesk/internal/services/room"
	roomtypesvc "dormdesk/internal/services/roomtype"
	usagesvc "dormdesk/internal/services/usage"
	utilitysvc "dormdesk/internal/services/utility"
	"dormdesk/internal/store/postgres"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init DB
	pool := postgres.MustOpen(ctx, cfg.DB.DSN)
	defer pool.Close()

	rooms := postgres.NewRoomRepository(pool)
	roomTypes := postgres.NewRoomTypeRepository(pool)
	utilities := postgres.NewUtilityRepository(pool)
	usageRecords := postgres.NewUsageRepository(pool)
	contracts := postgres.NewContractRepository(pool)
	uow := postgres.NewUnitOfWork(pool)

	// List cache; the server still works without redis, just colder.
	var listCache cache.ListCache
	rc, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.CacheTTL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, list caching disabled")
		listCache = cache.Noop{}
	} else {
		listCache = rc
	}

	roomService := roomsvc.NewService(rooms, roomTypes, uow, listCache)
	roomTypeService := roomtypesvc.NewService(roomTypes, rooms, listCache)
	utilityService := utilitysvc.NewService(utilities, listCache)
	usageService := usagesvc.NewService(usageRecords, rooms, utilities, listCache)
	contractService := contractsvc.NewService(contracts, rooms, listCache)

	worker := warm.NewWorker(roomService, roomTypeService, utilityService, usageService, contractService)
	go worker.Run(ctx)

	r := httpx.NewRouter(httpx.RouterDependencies{
		Config:          cfg,
		RoomService:     roomService,
		RoomTypeService: roomTypeService,
		UtilityService:  utilityService,
		UsageService:    usageService,
		ContractService: contractService,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("DormDesk API listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}
