package domain

import "context"

// SpeakerInfoEntityName is the entity name used in "none found" envelope errors for speakers.
const SpeakerInfoEntityName = "SpeakerInfo"

// SpeakerInfo is the profile a registered person submits to speak at an event.
// RegistrationID points at a registration record kept outside this service.
// swagger:model SpeakerInfo
type SpeakerInfo struct {
	ItemID         int    `json:"ItemId"`
	CodeCampID     int    `json:"CodeCampId"`
	RegistrationID int    `json:"RegistrationId"`
	CompanyName    string `json:"CompanyName"`
	CompanyTitle   string `json:"CompanyTitle"`
	Bio            string `json:"Bio"`
	Website        string `json:"Website"`
	Twitter        string `json:"Twitter"`
	LinkedIn       string `json:"LinkedIn"`
	IconFile       string `json:"IconFile"`
	Audit
}

// Validate returns error messages for required fields.
func (s *SpeakerInfo) Validate() []string {
	var errs []string
	if s.RegistrationID <= 0 {
		errs = append(errs, "RegistrationId is required")
	}
	return errs
}

// SpeakerInfoRepository defines the interface for speaker profile storage, scoped by event.
// Nothing enforces one profile per (CodeCampID, RegistrationID); GetByRegistrationID
// returns the lowest ItemID when several exist.
type SpeakerInfoRepository interface {
	Create(ctx context.Context, s *SpeakerInfo) error
	GetByID(ctx context.Context, itemID, codeCampID int) (*SpeakerInfo, error)
	GetByCodeCampID(ctx context.Context, codeCampID int) ([]*SpeakerInfo, error)
	GetByRegistrationID(ctx context.Context, codeCampID, registrationID int) (*SpeakerInfo, error)
	Update(ctx context.Context, s *SpeakerInfo) error
	Delete(ctx context.Context, s *SpeakerInfo) error
}

// SpeakerInfoService defines the business logic for speaker profiles.
type SpeakerInfoService interface {
	ListSpeakers(ctx context.Context, codeCampID int) ([]*SpeakerInfo, error)
	GetSpeaker(ctx context.Context, itemID, codeCampID int) (*SpeakerInfo, error)
	GetSpeakerByRegistration(ctx context.Context, codeCampID, registrationID int) (*SpeakerInfo, error)
	CreateSpeaker(ctx context.Context, caller Caller, moduleID int, s *SpeakerInfo) error
	UpdateSpeaker(ctx context.Context, caller Caller, moduleID int, s *SpeakerInfo) error
	DeleteSpeaker(ctx context.Context, moduleID, itemID, codeCampID int) error
	CanEditSpeaker(ctx context.Context, caller Caller, moduleID, itemID, codeCampID int) (bool, error)
}
