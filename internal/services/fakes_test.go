package services

import (
	"context"
	"sort"

	"codecamp/internal/domain"
)

// fakeCodeCampRepo is an in-memory CodeCampRepository for tests.
type fakeCodeCampRepo struct {
	byID    map[int]*domain.CodeCampEvent
	nextID  int
	err     error // if set, every method returns this error
	getByID int   // number of GetByID calls
	deleted []int
}

func newFakeCodeCampRepo() *fakeCodeCampRepo {
	return &fakeCodeCampRepo{
		byID:   make(map[int]*domain.CodeCampEvent),
		nextID: 1,
	}
}

func (f *fakeCodeCampRepo) Create(ctx context.Context, e *domain.CodeCampEvent) error {
	if f.err != nil {
		return f.err
	}
	e.ItemID = f.nextID
	f.nextID++
	stored := *e
	f.byID[e.ItemID] = &stored
	return nil
}

func (f *fakeCodeCampRepo) GetByID(ctx context.Context, itemID, moduleID int) (*domain.CodeCampEvent, error) {
	f.getByID++
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[itemID]
	if !ok || e.ModuleID != moduleID {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (f *fakeCodeCampRepo) GetByModuleID(ctx context.Context, moduleID int) ([]*domain.CodeCampEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.CodeCampEvent, 0)
	for _, e := range f.byID {
		if e.ModuleID == moduleID {
			c := *e
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (f *fakeCodeCampRepo) GetFirstByModuleID(ctx context.Context, moduleID int) (*domain.CodeCampEvent, error) {
	events, err := f.GetByModuleID(ctx, moduleID)
	if err != nil || len(events) == 0 {
		return nil, err
	}
	return events[0], nil
}

func (f *fakeCodeCampRepo) Update(ctx context.Context, e *domain.CodeCampEvent) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.byID[e.ItemID]
	if !ok || stored.ModuleID != e.ModuleID {
		return domain.NewNotFound(domain.CodeCampEntityName)
	}
	stored.Name = e.Name
	stored.Description = e.Description
	stored.BeginDate = e.BeginDate
	stored.EndDate = e.EndDate
	stored.LastUpdatedByUserID = e.LastUpdatedByUserID
	stored.LastUpdatedByDate = e.LastUpdatedByDate
	return nil
}

func (f *fakeCodeCampRepo) Delete(ctx context.Context, e *domain.CodeCampEvent) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[e.ItemID]; !ok {
		return domain.NewNotFound(domain.CodeCampEntityName)
	}
	delete(f.byID, e.ItemID)
	f.deleted = append(f.deleted, e.ItemID)
	return nil
}

// fakeRoomRepo is an in-memory RoomRepository for tests.
type fakeRoomRepo struct {
	byID   map[int]*domain.Room
	nextID int
	err    error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{byID: make(map[int]*domain.Room), nextID: 1}
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	if f.err != nil {
		return f.err
	}
	room.ItemID = f.nextID
	f.nextID++
	stored := *room
	f.byID[room.ItemID] = &stored
	return nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, itemID, codeCampID int) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.byID[itemID]
	if !ok || r.CodeCampID != codeCampID {
		return nil, nil
	}
	out := *r
	return &out, nil
}

func (f *fakeRoomRepo) GetByCodeCampID(ctx context.Context, codeCampID int) ([]*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Room, 0)
	for _, r := range f.byID {
		if r.CodeCampID == codeCampID {
			c := *r
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.byID[room.ItemID]
	if !ok || stored.CodeCampID != room.CodeCampID {
		return domain.NewNotFound(domain.RoomEntityName)
	}
	created := stored.Audit
	*stored = *room
	stored.CreatedByUserID = created.CreatedByUserID
	stored.CreatedByDate = created.CreatedByDate
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, room *domain.Room) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[room.ItemID]; !ok {
		return domain.NewNotFound(domain.RoomEntityName)
	}
	delete(f.byID, room.ItemID)
	return nil
}

// fakeSpeakerRepo is an in-memory SpeakerInfoRepository for tests.
type fakeSpeakerRepo struct {
	byID   map[int]*domain.SpeakerInfo
	nextID int
	err    error
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{byID: make(map[int]*domain.SpeakerInfo), nextID: 1}
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, sp *domain.SpeakerInfo) error {
	if f.err != nil {
		return f.err
	}
	sp.ItemID = f.nextID
	f.nextID++
	stored := *sp
	f.byID[sp.ItemID] = &stored
	return nil
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, itemID, codeCampID int) (*domain.SpeakerInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	sp, ok := f.byID[itemID]
	if !ok || sp.CodeCampID != codeCampID {
		return nil, nil
	}
	out := *sp
	return &out, nil
}

func (f *fakeSpeakerRepo) GetByCodeCampID(ctx context.Context, codeCampID int) ([]*domain.SpeakerInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.SpeakerInfo, 0)
	for _, sp := range f.byID {
		if sp.CodeCampID == codeCampID {
			c := *sp
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (f *fakeSpeakerRepo) GetByRegistrationID(ctx context.Context, codeCampID, registrationID int) (*domain.SpeakerInfo, error) {
	all, err := f.GetByCodeCampID(ctx, codeCampID)
	if err != nil {
		return nil, err
	}
	for _, sp := range all {
		if sp.RegistrationID == registrationID {
			return sp, nil
		}
	}
	return nil, nil
}

func (f *fakeSpeakerRepo) Update(ctx context.Context, sp *domain.SpeakerInfo) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.byID[sp.ItemID]
	if !ok || stored.CodeCampID != sp.CodeCampID {
		return domain.NewNotFound(domain.SpeakerInfoEntityName)
	}
	created := stored.Audit
	*stored = *sp
	stored.CreatedByUserID = created.CreatedByUserID
	stored.CreatedByDate = created.CreatedByDate
	return nil
}

func (f *fakeSpeakerRepo) Delete(ctx context.Context, sp *domain.SpeakerInfo) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[sp.ItemID]; !ok {
		return domain.NewNotFound(domain.SpeakerInfoEntityName)
	}
	delete(f.byID, sp.ItemID)
	return nil
}
