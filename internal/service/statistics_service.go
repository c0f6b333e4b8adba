package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// OverviewResponse backs the front-desk dashboard cards.
type OverviewResponse struct {
	ActiveGuests     int64  `json:"active_guests"`
	CheckedOutGuests int64  `json:"checked_out_guests"`
	TotalCollection  string `json:"total_collection"` // sum of advances paid
	PendingOrders    int64  `json:"pending_orders"`
	PreparingOrders  int64  `json:"preparing_orders"`
	OccupiedRooms    int64  `json:"occupied_rooms"`
	AvailableRooms   int64  `json:"available_rooms"`
}

// --- Interface ---

type StatisticsService interface {
	Overview(ctx context.Context) (OverviewResponse, error)
}

type statisticsService struct {
	guestRepo repository.GuestRepository
	orderRepo repository.FoodOrderRepository
	roomRepo  repository.RoomRepository
}

func NewStatisticsService(guestRepo repository.GuestRepository, orderRepo repository.FoodOrderRepository, roomRepo repository.RoomRepository) StatisticsService {
	return &statisticsService{
		guestRepo: guestRepo,
		orderRepo: orderRepo,
		roomRepo:  roomRepo,
	}
}

// --- Implementation ---

func (s *statisticsService) Overview(ctx context.Context) (OverviewResponse, error) {
	var resp OverviewResponse

	collection := decimal.Zero
	for _, g := range s.guestRepo.All(ctx) {
		collection = collection.Add(g.AdvancePaid)
		switch g.Status {
		case model.GuestActive:
			resp.ActiveGuests++
		case model.GuestCheckedOut:
			resp.CheckedOutGuests++
		}
	}
	resp.TotalCollection = collection.StringFixed(2)

	resp.PendingOrders = s.orderRepo.CountByStatus(ctx, model.OrderPending)
	resp.PreparingOrders = s.orderRepo.CountByStatus(ctx, model.OrderPreparing)

	for _, room := range s.roomRepo.All(ctx) {
		switch room.Status {
		case model.RoomOccupied:
			resp.OccupiedRooms++
		case model.RoomAvailable:
			resp.AvailableRooms++
		}
	}
	return resp, nil
}
