package controllers

import (
	"log/slog"
	"net/http"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/delivery/http/middleware"
	"codecamp/internal/domain"
)

// EventListResponse is the envelope for GET /api/events.
type EventListResponse struct {
	Content []*domain.CodeCampEvent `json:"Content"`
	Errors  []helpers.ServiceError  `json:"Errors"`
}

// EventResponse is the envelope for endpoints returning a single event.
type EventResponse struct {
	Content *domain.CodeCampEvent  `json:"Content"`
	Errors  []helpers.ServiceError `json:"Errors"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.CodeCampService
}

func NewEventController(logger *slog.Logger, svc domain.CodeCampService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event of the module. Dates are returned in UTC.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Success 200 {object} controllers.EventListResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListEvents(r.Context(), moduleID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, events)
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns one event with its dates converted to the caller's time zone.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param itemID path int true "Event id"
// @Success 200 {object} controllers.EventResponse "Errors[0].Code none_found when missing"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{itemID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	itemID, err := helpers.PathInt(r, "itemID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	event, err := c.Service.GetEvent(r.Context(), itemID, moduleID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	caller := middleware.CallerFromContext(r.Context())
	helpers.WriteContent(w, event.InLocation(caller.Location))
}

// GetCurrentEvent godoc
// @Summary Get the module's event
// @Description Returns the first event of the module, in the caller's time zone.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Success 200 {object} controllers.EventResponse "Errors[0].Code none_found when the module has no event"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/current [get]
func (c *EventController) GetCurrentEvent(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetCurrentEvent(r.Context(), moduleID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	caller := middleware.CallerFromContext(r.Context())
	helpers.WriteContent(w, event.InLocation(caller.Location))
}

// CanEditEvent godoc
// @Summary Ask whether the caller may edit an event
// @Description Anonymous-friendly probe for the UI. Content is "success" or "failure"; it never answers with 401 or 403.
// @Tags events
// @Produce json
// @Param X-Module-Id header int true "Module id"
// @Param itemID path int true "Event id"
// @Success 200 {object} controllers.SuccessResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{itemID}/can-edit [get]
func (c *EventController) CanEditEvent(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	itemID, err := helpers.PathInt(r, "itemID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	allowed, err := c.Service.CanEditEvent(r.Context(), middleware.CallerFromContext(r.Context()), moduleID, itemID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if allowed {
		helpers.WriteContent(w, helpers.ContentSuccess)
		return
	}
	helpers.WriteContent(w, helpers.ContentFailure)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event in the module. ItemId, ModuleId and the audit fields are set by the server.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param event body domain.CodeCampEvent true "Event"
// @Success 200 {object} controllers.EventResponse "Errors[].Code invalid_input on validation failure"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	caller := middleware.CallerFromContext(r.Context())
	if !c.authorize(w, r, caller, moduleID, 0) {
		return
	}
	var event domain.CodeCampEvent
	if !helpers.DecodeAndValidate(w, r, &event) {
		return
	}
	if err := c.Service.CreateEvent(r.Context(), caller, moduleID, &event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, &event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites the event. Module editors and the event's creator or last editor may update it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param itemID path int true "Event id"
// @Param event body domain.CodeCampEvent true "Event"
// @Success 200 {object} controllers.SuccessResponse "Errors[0].Code none_found or invalid_input on logical failure"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{itemID} [post]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	itemID, err := helpers.PathInt(r, "itemID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	caller := middleware.CallerFromContext(r.Context())
	if !c.authorize(w, r, caller, moduleID, itemID) {
		return
	}
	var event domain.CodeCampEvent
	if !helpers.DecodeAndValidate(w, r, &event) {
		return
	}
	event.ItemID = itemID
	if err := c.Service.UpdateEvent(r.Context(), caller, moduleID, &event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, helpers.ContentSuccess)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event after checking it belongs to the module. Its rooms and speaker profiles go with it.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param itemID path int true "Event id"
// @Success 200 {object} controllers.SuccessResponse "Errors[0].Code none_found when missing"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{itemID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	itemID, err := helpers.PathInt(r, "itemID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	caller := middleware.CallerFromContext(r.Context())
	if !c.authorize(w, r, caller, moduleID, itemID) {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), itemID, moduleID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, helpers.ContentSuccess)
}

// authorize applies the edit rule for itemID (0 for a new event) and writes the rejection.
func (c *EventController) authorize(w http.ResponseWriter, r *http.Request, caller domain.Caller, moduleID, itemID int) bool {
	allowed, err := c.Service.CanEditEvent(r.Context(), caller, moduleID, itemID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return false
	}
	if !allowed {
		deny(w, caller, domain.CodeCampEntityName)
		return false
	}
	return true
}
