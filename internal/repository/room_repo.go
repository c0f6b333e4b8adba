package repository

import (
	"context"
	"sync"

	"backend/internal/model"
)

// RoomRepository holds the mutable occupancy state of the room inventory.
// Status cycles AVAILABLE → OCCUPIED → CLEANING → AVAILABLE.
type RoomRepository interface {
	Seed(ctx context.Context, rooms []model.Room)
	All(ctx context.Context) []model.Room
	FindByNumber(ctx context.Context, number string) (model.Room, error)
	Occupy(ctx context.Context, number, guestID string) (model.Room, error)
	ReleaseByGuest(ctx context.Context, guestID string) (model.Room, error)
	MarkCleaned(ctx context.Context, number string) (model.Room, error)
}

type roomRepository struct {
	mu    sync.RWMutex
	rooms []model.Room // catalog order
}

func NewRoomRepository() RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Seed(_ context.Context, rooms []model.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = make([]model.Room, len(rooms))
	copy(r.rooms, rooms)
}

func (r *roomRepository) All(_ context.Context) []model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

func (r *roomRepository) FindByNumber(_ context.Context, number string) (model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return model.Room{}, ErrRoomNotFound
}

// Occupy assigns an AVAILABLE room to a guest.
func (r *roomRepository) Occupy(_ context.Context, number, guestID string) (model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].Number != number {
			continue
		}
		if r.rooms[i].Status != model.RoomAvailable {
			return model.Room{}, ErrRoomUnavailable
		}
		gid := guestID
		r.rooms[i].Status = model.RoomOccupied
		r.rooms[i].CurrentGuestID = &gid
		return r.rooms[i], nil
	}
	return model.Room{}, ErrRoomNotFound
}

// ReleaseByGuest frees the room held by a guest and sends it to CLEANING.
func (r *roomRepository) ReleaseByGuest(_ context.Context, guestID string) (model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].CurrentGuestID == nil || *r.rooms[i].CurrentGuestID != guestID {
			continue
		}
		r.rooms[i].Status = model.RoomCleaning
		r.rooms[i].CurrentGuestID = nil
		return r.rooms[i], nil
	}
	return model.Room{}, ErrRoomNotFound
}

// MarkCleaned returns a CLEANING room to the available pool.
func (r *roomRepository) MarkCleaned(_ context.Context, number string) (model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rooms {
		if r.rooms[i].Number != number {
			continue
		}
		if r.rooms[i].Status != model.RoomCleaning {
			return model.Room{}, ErrRoomUnavailable
		}
		r.rooms[i].Status = model.RoomAvailable
		return r.rooms[i], nil
	}
	return model.Room{}, ErrRoomNotFound
}
