package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"
)

// --- DTOs ---

type RoomResponse struct {
	ID             string   `json:"id"`
	Number         string   `json:"number"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	CurrentGuestID *string  `json:"current_guest_id,omitempty"`
	Price          string   `json:"price"`
	Amenities      []string `json:"amenities"`
}

// --- Interface ---

type RoomService interface {
	ListRooms(ctx context.Context) ([]RoomResponse, error)
	// MarkCleaned returns a room from CLEANING to the available pool.
	MarkCleaned(ctx context.Context, number string) (RoomResponse, error)
}

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

// --- Implementation ---

func (s *roomService) ListRooms(ctx context.Context) ([]RoomResponse, error) {
	rooms := s.roomRepo.All(ctx)
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	return out, nil
}

func (s *roomService) MarkCleaned(ctx context.Context, number string) (RoomResponse, error) {
	room, err := s.roomRepo.MarkCleaned(ctx, number)
	if err != nil {
		return RoomResponse{}, err
	}
	return toRoomResponse(room), nil
}

func toRoomResponse(r model.Room) RoomResponse {
	return RoomResponse{
		ID:             r.ID,
		Number:         r.Number,
		Type:           r.Type,
		Status:         r.Status,
		CurrentGuestID: r.CurrentGuestID,
		Price:          r.Price.StringFixed(2),
		Amenities:      r.Amenities,
	}
}
