package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codecamp/internal/authz"
	"codecamp/internal/domain"
)

type speakerInfoService struct {
	eventRepo      domain.CodeCampRepository
	speakerRepo    domain.SpeakerInfoRepository
	contextTimeout time.Duration
}

func NewSpeakerInfoService(eventRepo domain.CodeCampRepository, speakerRepo domain.SpeakerInfoRepository, timeout time.Duration) domain.SpeakerInfoService {
	return &speakerInfoService{
		eventRepo:      eventRepo,
		speakerRepo:    speakerRepo,
		contextTimeout: timeout,
	}
}

func (s *speakerInfoService) ListSpeakers(ctx context.Context, codeCampID int) ([]*domain.SpeakerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, err := s.speakerRepo.GetByCodeCampID(ctx, codeCampID)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}

func (s *speakerInfoService) GetSpeaker(ctx context.Context, itemID, codeCampID int) (*domain.SpeakerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.getSpeaker(ctx, itemID, codeCampID)
}

func (s *speakerInfoService) getSpeaker(ctx context.Context, itemID, codeCampID int) (*domain.SpeakerInfo, error) {
	sp, err := s.speakerRepo.GetByID(ctx, itemID, codeCampID)
	if err != nil {
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	if sp == nil {
		return nil, domain.NewNotFound(domain.SpeakerInfoEntityName)
	}
	return sp, nil
}

// GetSpeakerByRegistration returns the first profile stored for the registration.
func (s *speakerInfoService) GetSpeakerByRegistration(ctx context.Context, codeCampID, registrationID int) (*domain.SpeakerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sp, err := s.speakerRepo.GetByRegistrationID(ctx, codeCampID, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get speaker by registration: %w", err)
	}
	if sp == nil {
		return nil, domain.NewNotFound(domain.SpeakerInfoEntityName)
	}
	return sp, nil
}

// CreateSpeaker stores a submission. Duplicates for the same registration are accepted.
func (s *speakerInfoService) CreateSpeaker(ctx context.Context, caller domain.Caller, moduleID int, sp *domain.SpeakerInfo) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := sp.Validate(); len(errs) > 0 {
		return domain.InvalidInput(errs)
	}
	if err := requireEventInModule(ctx, s.eventRepo, sp.CodeCampID, moduleID); err != nil {
		return err
	}
	sp.ItemID = 0
	sp.StampCreated(caller.UserID, time.Now())

	if err := s.speakerRepo.Create(ctx, sp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("create speaker: %w", err)
	}
	return nil
}

func (s *speakerInfoService) UpdateSpeaker(ctx context.Context, caller domain.Caller, moduleID int, sp *domain.SpeakerInfo) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := sp.Validate(); len(errs) > 0 {
		return domain.InvalidInput(errs)
	}
	if err := requireEventInModule(ctx, s.eventRepo, sp.CodeCampID, moduleID); err != nil {
		return err
	}
	sp.StampUpdated(caller.UserID, time.Now())

	if err := s.speakerRepo.Update(ctx, sp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update speaker: %w", err)
	}
	return nil
}

// DeleteSpeaker re-resolves the profile by (itemID, codeCampID) and deletes the loaded record.
func (s *speakerInfoService) DeleteSpeaker(ctx context.Context, moduleID, itemID, codeCampID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireEventInModule(ctx, s.eventRepo, codeCampID, moduleID); err != nil {
		return err
	}
	sp, err := s.getSpeaker(ctx, itemID, codeCampID)
	if err != nil {
		return err
	}
	if err := s.speakerRepo.Delete(ctx, sp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete speaker: %w", err)
	}
	return nil
}

// CanEditSpeaker lets module editors and the profile's own author through.
func (s *speakerInfoService) CanEditSpeaker(ctx context.Context, caller domain.Caller, moduleID, itemID, codeCampID int) (bool, error) {
	if authz.CanEditModule(caller, moduleID) {
		return true, nil
	}
	if !caller.IsAuthenticated() {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sp, err := s.speakerRepo.GetByID(ctx, itemID, codeCampID)
	if err != nil {
		return false, fmt.Errorf("load speaker for authorization: %w", err)
	}
	if sp == nil {
		return false, nil
	}
	return authz.CanEdit(caller, moduleID, &sp.Audit), nil
}
