package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codecamp/internal/domain"
)

type roomService struct {
	eventRepo      domain.CodeCampRepository
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration
}

func NewRoomService(eventRepo domain.CodeCampRepository, roomRepo domain.RoomRepository, timeout time.Duration) domain.RoomService {
	return &roomService{
		eventRepo:      eventRepo,
		roomRepo:       roomRepo,
		contextTimeout: timeout,
	}
}

func (s *roomService) ListRooms(ctx context.Context, codeCampID int) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rooms, err := s.roomRepo.GetByCodeCampID(ctx, codeCampID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) GetRoom(ctx context.Context, itemID, codeCampID int) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.getRoom(ctx, itemID, codeCampID)
}

func (s *roomService) getRoom(ctx context.Context, itemID, codeCampID int) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, itemID, codeCampID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, domain.NewNotFound(domain.RoomEntityName)
	}
	return room, nil
}

func (s *roomService) CreateRoom(ctx context.Context, caller domain.Caller, moduleID int, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := room.Validate(); len(errs) > 0 {
		return domain.InvalidInput(errs)
	}
	if err := requireEventInModule(ctx, s.eventRepo, room.CodeCampID, moduleID); err != nil {
		return err
	}
	room.ItemID = 0
	room.StampCreated(caller.UserID, time.Now())

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (s *roomService) UpdateRoom(ctx context.Context, caller domain.Caller, moduleID int, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := room.Validate(); len(errs) > 0 {
		return domain.InvalidInput(errs)
	}
	if err := requireEventInModule(ctx, s.eventRepo, room.CodeCampID, moduleID); err != nil {
		return err
	}
	room.StampUpdated(caller.UserID, time.Now())

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

func (s *roomService) DeleteRoom(ctx context.Context, moduleID, itemID, codeCampID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireEventInModule(ctx, s.eventRepo, codeCampID, moduleID); err != nil {
		return err
	}
	room, err := s.getRoom(ctx, itemID, codeCampID)
	if err != nil {
		return err
	}
	if err := s.roomRepo.Delete(ctx, room); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

// requireEventInModule returns a CodeCampInfo NotFoundError unless codeCampID is an event of moduleID.
func requireEventInModule(ctx context.Context, repo domain.CodeCampRepository, codeCampID, moduleID int) error {
	event, err := repo.GetByID(ctx, codeCampID, moduleID)
	if err != nil {
		return fmt.Errorf("get parent event: %w", err)
	}
	if event == nil {
		return domain.NewNotFound(domain.CodeCampEntityName)
	}
	return nil
}
