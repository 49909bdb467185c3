package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codecamp/internal/authz"
	"codecamp/internal/domain"
)

type codeCampService struct {
	eventRepo      domain.CodeCampRepository
	contextTimeout time.Duration
}

func NewCodeCampService(eventRepo domain.CodeCampRepository, timeout time.Duration) domain.CodeCampService {
	return &codeCampService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *codeCampService) ListEvents(ctx context.Context, moduleID int) ([]*domain.CodeCampEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.GetByModuleID(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *codeCampService) GetEvent(ctx context.Context, itemID, moduleID int) (*domain.CodeCampEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.getEvent(ctx, itemID, moduleID)
}

func (s *codeCampService) getEvent(ctx context.Context, itemID, moduleID int) (*domain.CodeCampEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, itemID, moduleID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, domain.NewNotFound(domain.CodeCampEntityName)
	}
	return event, nil
}

func (s *codeCampService) GetCurrentEvent(ctx context.Context, moduleID int) (*domain.CodeCampEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetFirstByModuleID(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("get current event: %w", err)
	}
	if event == nil {
		return nil, domain.NewNotFound(domain.CodeCampEntityName)
	}
	return event, nil
}

// CreateEvent stamps the audit fields and module from the caller, ignoring client values.
func (s *codeCampService) CreateEvent(ctx context.Context, caller domain.Caller, moduleID int, e *domain.CodeCampEvent) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := e.Validate(); len(errs) > 0 {
		return domain.InvalidInput(errs)
	}
	e.ItemID = 0
	e.ModuleID = moduleID
	e.StampCreated(caller.UserID, time.Now())

	if err := s.eventRepo.Create(ctx, e); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// UpdateEvent overwrites the event in the caller's module and re-stamps the last-update fields.
// The stored ModuleID and creation stamp are kept.
func (s *codeCampService) UpdateEvent(ctx context.Context, caller domain.Caller, moduleID int, e *domain.CodeCampEvent) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := e.Validate(); len(errs) > 0 {
		return domain.InvalidInput(errs)
	}
	e.ModuleID = moduleID
	e.StampUpdated(caller.UserID, time.Now())

	if err := s.eventRepo.Update(ctx, e); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent verifies the event belongs to the module before removing it.
func (s *codeCampService) DeleteEvent(ctx context.Context, itemID, moduleID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, itemID, moduleID)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// CanEditEvent applies the edit rule. The event is only loaded when the caller has no
// module-level right, and itemID <= 0 never loads anything.
func (s *codeCampService) CanEditEvent(ctx context.Context, caller domain.Caller, moduleID, itemID int) (bool, error) {
	if authz.CanEditModule(caller, moduleID) {
		return true, nil
	}
	if itemID <= 0 || !caller.IsAuthenticated() {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, itemID, moduleID)
	if err != nil {
		return false, fmt.Errorf("load event for authorization: %w", err)
	}
	if event == nil {
		return false, nil
	}
	return authz.CanEdit(caller, moduleID, &event.Audit), nil
}
