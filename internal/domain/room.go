package domain

import (
	"context"
	"strings"
)

// RoomEntityName is the entity name used in "none found" envelope errors for rooms.
const RoomEntityName = "RoomInfo"

// Room is a space belonging to one event. Its audit fields are informational only;
// editing a room always requires module-level edit rights.
// swagger:model Room
type Room struct {
	ItemID      int    `json:"ItemId"`
	CodeCampID  int    `json:"CodeCampId"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Capacity    int    `json:"Capacity"`
	Audit
}

// Validate returns error messages for required fields.
func (r *Room) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if r.Capacity < 0 {
		errs = append(errs, "Capacity must not be negative")
	}
	return errs
}

// RoomRepository defines the interface for room storage, scoped by event.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, itemID, codeCampID int) (*Room, error)
	GetByCodeCampID(ctx context.Context, codeCampID int) ([]*Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, room *Room) error
}

// RoomService defines the business logic for rooms.
type RoomService interface {
	ListRooms(ctx context.Context, codeCampID int) ([]*Room, error)
	GetRoom(ctx context.Context, itemID, codeCampID int) (*Room, error)
	CreateRoom(ctx context.Context, caller Caller, moduleID int, room *Room) error
	UpdateRoom(ctx context.Context, caller Caller, moduleID int, room *Room) error
	DeleteRoom(ctx context.Context, moduleID, itemID, codeCampID int) error
}
