package httpx

import (
	"encoding/json"
	"net/http"

	"dormdesk/internal/config"
	"dormdesk/internal/http/handlers"
	middlewarex "dormdesk/internal/http/middleware"
	contractsvc "dormdesk/internal/services/contract"
	roomsvc "dormdesk/internal/services/room"
	roomtypesvc "dormdesk/internal/services/roomtype"
	usagesvc "dormdesk/internal/services/usage"
	utilitysvc "dormdesk/internal/services/utility"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config          config.Cfg
	RoomService     *roomsvc.Service
	RoomTypeService *roomtypesvc.Service
	UtilityService  *utilitysvc.Service
	UsageService    *usagesvc.Service
	ContractService *contractsvc.Service
}

// NewRouter creates the HTTP router for the admin API
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// Health check (public)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
		})
	})

	// Admin API (protected by bearer token)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarex.AdminAuth(deps.Config))

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", handlers.ListRooms(deps.RoomService))
			r.Get("/all", handlers.AllRooms(deps.RoomService))
			r.Get("/export", handlers.ExportRooms(deps.RoomService))
			r.Get("/{id}", handlers.GetRoom(deps.RoomService))
			r.Post("/", handlers.CreateRoom(deps.RoomService))
			r.Put("/{id}", handlers.UpdateRoom(deps.RoomService))
			r.Delete("/{id}", handlers.DeleteRoom(deps.RoomService))
			r.Get("/{id}/usage", handlers.ListRoomUsage(deps.UsageService))
		})

		r.Route("/room-types", func(r chi.Router) {
			r.Get("/", handlers.ListRoomTypes(deps.RoomTypeService))
			r.Get("/all", handlers.AllRoomTypes(deps.RoomTypeService))
			r.Get("/export", handlers.ExportRoomTypes(deps.RoomTypeService))
			r.Get("/{id}", handlers.GetRoomType(deps.RoomTypeService))
			r.Post("/", handlers.CreateRoomType(deps.RoomTypeService))
			r.Put("/{id}", handlers.UpdateRoomType(deps.RoomTypeService))
			r.Delete("/{id}", handlers.DeleteRoomType(deps.RoomTypeService))
		})

		r.Route("/utilities", func(r chi.Router) {
			r.Get("/", handlers.ListUtilities(deps.UtilityService))
			r.Get("/all", handlers.AllUtilities(deps.UtilityService))
			r.Get("/export", handlers.ExportUtilities(deps.UtilityService))
			r.Get("/{id}", handlers.GetUtility(deps.UtilityService))
			r.Post("/", handlers.CreateUtility(deps.UtilityService))
			r.Put("/{id}", handlers.UpdateUtility(deps.UtilityService))
			r.Delete("/{id}", handlers.DeleteUtility(deps.UtilityService))
		})

		r.Route("/usage", func(r chi.Router) {
			r.Get("/", handlers.ListUsage(deps.UsageService))
			r.Get("/all", handlers.AllUsage(deps.UsageService))
			r.Get("/export", handlers.ExportUsage(deps.UsageService))
			r.Get("/{id}", handlers.GetUsage(deps.UsageService))
			r.Post("/", handlers.CreateUsage(deps.UsageService))
			r.Put("/{id}", handlers.UpdateUsage(deps.UsageService))
			r.Delete("/{id}", handlers.DeleteUsage(deps.UsageService))
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", handlers.ListContracts(deps.ContractService))
			r.Get("/all", handlers.AllContracts(deps.ContractService))
			r.Get("/export", handlers.ExportContracts(deps.ContractService))
			r.Get("/{id}", handlers.GetContract(deps.ContractService))
			r.Post("/", handlers.CreateContract(deps.ContractService))
			r.Put("/{id}", handlers.UpdateContract(deps.ContractService))
			r.Delete("/{id}", handlers.DeleteContract(deps.ContractService))
		})
	})

	return r
}
