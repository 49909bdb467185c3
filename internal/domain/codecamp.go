package domain

import (
	"context"
	"strings"
	"time"
)

// CodeCampEntityName is the entity name used in "none found" envelope errors for events.
const CodeCampEntityName = "CodeCampInfo"

// CodeCampEvent is a conference hosted by one module. ModuleID never changes after creation.
// swagger:model CodeCampEvent
type CodeCampEvent struct {
	ItemID      int       `json:"ItemId"`
	ModuleID    int       `json:"ModuleId"`
	Name        string    `json:"Name"`
	Description string    `json:"Description"`
	BeginDate   time.Time `json:"BeginDate"`
	EndDate     time.Time `json:"EndDate"`
	Audit
}

// Validate returns error messages for required fields and date ordering.
func (e *CodeCampEvent) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if e.BeginDate.IsZero() || e.EndDate.IsZero() {
		errs = append(errs, "BeginDate and EndDate are required")
	} else if e.BeginDate.After(e.EndDate) {
		errs = append(errs, "BeginDate must not be after EndDate")
	}
	return errs
}

// InLocation returns a copy of the event with every timestamp converted to loc.
// A nil loc returns the event unchanged.
func (e *CodeCampEvent) InLocation(loc *time.Location) *CodeCampEvent {
	if e == nil || loc == nil {
		return e
	}
	out := *e
	out.BeginDate = e.BeginDate.In(loc)
	out.EndDate = e.EndDate.In(loc)
	out.CreatedByDate = e.CreatedByDate.In(loc)
	out.LastUpdatedByDate = e.LastUpdatedByDate.In(loc)
	return &out
}

// CodeCampRepository defines the interface for event storage. Every lookup is bounded by module.
type CodeCampRepository interface {
	Create(ctx context.Context, e *CodeCampEvent) error
	// GetByID returns nil, nil when no event with itemID exists in the module.
	GetByID(ctx context.Context, itemID, moduleID int) (*CodeCampEvent, error)
	// GetByModuleID returns a non-nil, possibly empty slice.
	GetByModuleID(ctx context.Context, moduleID int) ([]*CodeCampEvent, error)
	GetFirstByModuleID(ctx context.Context, moduleID int) (*CodeCampEvent, error)
	Update(ctx context.Context, e *CodeCampEvent) error
	Delete(ctx context.Context, e *CodeCampEvent) error
}

// CodeCampService defines the business logic for events.
type CodeCampService interface {
	ListEvents(ctx context.Context, moduleID int) ([]*CodeCampEvent, error)
	GetEvent(ctx context.Context, itemID, moduleID int) (*CodeCampEvent, error)
	GetCurrentEvent(ctx context.Context, moduleID int) (*CodeCampEvent, error)
	CreateEvent(ctx context.Context, caller Caller, moduleID int, e *CodeCampEvent) error
	UpdateEvent(ctx context.Context, caller Caller, moduleID int, e *CodeCampEvent) error
	DeleteEvent(ctx context.Context, itemID, moduleID int) error
	CanEditEvent(ctx context.Context, caller Caller, moduleID, itemID int) (bool, error)
}
