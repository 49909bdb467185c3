package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/delivery/http/middleware"
	"codecamp/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testModuleID = 100

// newRequest builds a request scoped to testModuleID on behalf of caller.
func newRequest(method, target, body string, caller domain.Caller) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	ctx := middleware.SetCaller(req.Context(), caller)
	ctx = middleware.SetModuleID(ctx, testModuleID)
	return req.WithContext(ctx)
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) helpers.ServiceResponse {
	t.Helper()
	var resp helpers.ServiceResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotNil(t, resp.Errors, "Errors must always be an array")
	return resp
}

// fakeEventService implements domain.CodeCampService for handler tests.
type fakeEventService struct {
	listResult    []*domain.CodeCampEvent
	listErr       error
	getResult     *domain.CodeCampEvent
	getErr        error
	currentResult *domain.CodeCampEvent
	currentErr    error
	createErr     error
	updateErr     error
	deleteErr     error
	canEdit       bool
	canEditErr    error

	lastModuleID    int
	lastItemID      int
	lastCaller      domain.Caller
	lastCreateEvent *domain.CodeCampEvent
	lastUpdateEvent *domain.CodeCampEvent
	deleteCalled    bool
	canEditCalls    int
}

func (f *fakeEventService) ListEvents(ctx context.Context, moduleID int) ([]*domain.CodeCampEvent, error) {
	f.lastModuleID = moduleID
	return f.listResult, f.listErr
}

func (f *fakeEventService) GetEvent(ctx context.Context, itemID, moduleID int) (*domain.CodeCampEvent, error) {
	f.lastItemID, f.lastModuleID = itemID, moduleID
	return f.getResult, f.getErr
}

func (f *fakeEventService) GetCurrentEvent(ctx context.Context, moduleID int) (*domain.CodeCampEvent, error) {
	f.lastModuleID = moduleID
	return f.currentResult, f.currentErr
}

func (f *fakeEventService) CreateEvent(ctx context.Context, caller domain.Caller, moduleID int, e *domain.CodeCampEvent) error {
	f.lastCaller, f.lastModuleID, f.lastCreateEvent = caller, moduleID, e
	if f.createErr != nil {
		return f.createErr
	}
	e.ItemID = 1
	e.ModuleID = moduleID
	return nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, caller domain.Caller, moduleID int, e *domain.CodeCampEvent) error {
	f.lastCaller, f.lastModuleID, f.lastUpdateEvent = caller, moduleID, e
	return f.updateErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, itemID, moduleID int) error {
	f.deleteCalled = true
	f.lastItemID, f.lastModuleID = itemID, moduleID
	return f.deleteErr
}

func (f *fakeEventService) CanEditEvent(ctx context.Context, caller domain.Caller, moduleID, itemID int) (bool, error) {
	f.canEditCalls++
	f.lastCaller, f.lastModuleID, f.lastItemID = caller, moduleID, itemID
	return f.canEdit, f.canEditErr
}

// fakeRoomService implements domain.RoomService for handler tests.
type fakeRoomService struct {
	listResult []*domain.Room
	listErr    error
	getResult  *domain.Room
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error

	lastCodeCampID int
	lastItemID     int
	lastModuleID   int
	lastRoom       *domain.Room
	deleteCalled   bool
}

func (f *fakeRoomService) ListRooms(ctx context.Context, codeCampID int) ([]*domain.Room, error) {
	f.lastCodeCampID = codeCampID
	return f.listResult, f.listErr
}

func (f *fakeRoomService) GetRoom(ctx context.Context, itemID, codeCampID int) (*domain.Room, error) {
	f.lastItemID, f.lastCodeCampID = itemID, codeCampID
	return f.getResult, f.getErr
}

func (f *fakeRoomService) CreateRoom(ctx context.Context, caller domain.Caller, moduleID int, room *domain.Room) error {
	f.lastModuleID, f.lastRoom = moduleID, room
	if f.createErr != nil {
		return f.createErr
	}
	room.ItemID = 9
	return nil
}

func (f *fakeRoomService) UpdateRoom(ctx context.Context, caller domain.Caller, moduleID int, room *domain.Room) error {
	f.lastModuleID, f.lastRoom = moduleID, room
	return f.updateErr
}

func (f *fakeRoomService) DeleteRoom(ctx context.Context, moduleID, itemID, codeCampID int) error {
	f.deleteCalled = true
	f.lastModuleID, f.lastItemID, f.lastCodeCampID = moduleID, itemID, codeCampID
	return f.deleteErr
}

// fakeSpeakerService implements domain.SpeakerInfoService for handler tests.
type fakeSpeakerService struct {
	listResult  []*domain.SpeakerInfo
	getResult   *domain.SpeakerInfo
	getErr      error
	byRegResult *domain.SpeakerInfo
	byRegErr    error
	createErr   error
	updateErr   error
	deleteErr   error
	canEdit     bool
	canEditErr  error

	lastCodeCampID     int
	lastItemID         int
	lastRegistrationID int
	lastModuleID       int
	lastCaller         domain.Caller
	lastSpeaker        *domain.SpeakerInfo
	updateCalled       bool
	deleteCalled       bool
}

func (f *fakeSpeakerService) ListSpeakers(ctx context.Context, codeCampID int) ([]*domain.SpeakerInfo, error) {
	f.lastCodeCampID = codeCampID
	return f.listResult, nil
}

func (f *fakeSpeakerService) GetSpeaker(ctx context.Context, itemID, codeCampID int) (*domain.SpeakerInfo, error) {
	f.lastItemID, f.lastCodeCampID = itemID, codeCampID
	return f.getResult, f.getErr
}

func (f *fakeSpeakerService) GetSpeakerByRegistration(ctx context.Context, codeCampID, registrationID int) (*domain.SpeakerInfo, error) {
	f.lastCodeCampID, f.lastRegistrationID = codeCampID, registrationID
	return f.byRegResult, f.byRegErr
}

func (f *fakeSpeakerService) CreateSpeaker(ctx context.Context, caller domain.Caller, moduleID int, sp *domain.SpeakerInfo) error {
	f.lastCaller, f.lastModuleID, f.lastSpeaker = caller, moduleID, sp
	if f.createErr != nil {
		return f.createErr
	}
	sp.ItemID = 3
	return nil
}

func (f *fakeSpeakerService) UpdateSpeaker(ctx context.Context, caller domain.Caller, moduleID int, sp *domain.SpeakerInfo) error {
	f.updateCalled = true
	f.lastCaller, f.lastModuleID, f.lastSpeaker = caller, moduleID, sp
	return f.updateErr
}

func (f *fakeSpeakerService) DeleteSpeaker(ctx context.Context, moduleID, itemID, codeCampID int) error {
	f.deleteCalled = true
	f.lastModuleID, f.lastItemID, f.lastCodeCampID = moduleID, itemID, codeCampID
	return f.deleteErr
}

func (f *fakeSpeakerService) CanEditSpeaker(ctx context.Context, caller domain.Caller, moduleID, itemID, codeCampID int) (bool, error) {
	f.lastCaller = caller
	return f.canEdit, f.canEditErr
}
