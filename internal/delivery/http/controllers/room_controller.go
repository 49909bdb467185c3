package controllers

import (
	"log/slog"
	"net/http"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/delivery/http/middleware"
	"codecamp/internal/domain"
)

// RoomListResponse is the envelope for GET /api/events/{codeCampID}/rooms.
type RoomListResponse struct {
	Content []*domain.Room         `json:"Content"`
	Errors  []helpers.ServiceError `json:"Errors"`
}

// RoomResponse is the envelope for endpoints returning a single room.
type RoomResponse struct {
	Content *domain.Room           `json:"Content"`
	Errors  []helpers.ServiceError `json:"Errors"`
}

// RoomController serves rooms. Mutations are gated at the module level by the router;
// rooms have no ownership fallback.
type RoomController struct {
	Logger  *slog.Logger
	Service domain.RoomService
}

func NewRoomController(logger *slog.Logger, svc domain.RoomService) *RoomController {
	return &RoomController{
		Logger:  logger,
		Service: svc,
	}
}

// ListRooms godoc
// @Summary List rooms of an event
// @Tags rooms
// @Produce json
// @Param codeCampID path int true "Event id"
// @Success 200 {object} controllers.RoomListResponse "Content is an empty list when the event has no rooms"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/rooms [get]
func (c *RoomController) ListRooms(w http.ResponseWriter, r *http.Request) {
	codeCampID, err := helpers.PathInt(r, "codeCampID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	rooms, err := c.Service.ListRooms(r.Context(), codeCampID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, rooms)
}

// GetRoom godoc
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param codeCampID path int true "Event id"
// @Param itemID path int true "Room id"
// @Success 200 {object} controllers.RoomResponse "Errors[0].Code none_found when missing"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/rooms/{itemID} [get]
func (c *RoomController) GetRoom(w http.ResponseWriter, r *http.Request) {
	ids, ok := helpers.PathInts(w, r, "codeCampID", "itemID")
	if !ok {
		return
	}
	room, err := c.Service.GetRoom(r.Context(), ids[1], ids[0])
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, room)
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param codeCampID path int true "Event id"
// @Param room body domain.Room true "Room"
// @Success 200 {object} controllers.RoomResponse "Errors[0].Code none_found when the event is not in the module"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/rooms [post]
func (c *RoomController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	codeCampID, err := helpers.PathInt(r, "codeCampID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var room domain.Room
	if !helpers.DecodeAndValidate(w, r, &room) {
		return
	}
	room.CodeCampID = codeCampID
	caller := middleware.CallerFromContext(r.Context())
	if err := c.Service.CreateRoom(r.Context(), caller, moduleID, &room); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, &room)
}

// UpdateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param codeCampID path int true "Event id"
// @Param itemID path int true "Room id"
// @Param room body domain.Room true "Room"
// @Success 200 {object} controllers.SuccessResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/rooms/{itemID} [post]
func (c *RoomController) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	ids, ok := helpers.PathInts(w, r, "codeCampID", "itemID")
	if !ok {
		return
	}
	var room domain.Room
	if !helpers.DecodeAndValidate(w, r, &room) {
		return
	}
	room.CodeCampID, room.ItemID = ids[0], ids[1]
	caller := middleware.CallerFromContext(r.Context())
	if err := c.Service.UpdateRoom(r.Context(), caller, moduleID, &room); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, helpers.ContentSuccess)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param codeCampID path int true "Event id"
// @Param itemID path int true "Room id"
// @Success 200 {object} controllers.SuccessResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/rooms/{itemID} [delete]
func (c *RoomController) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	ids, ok := helpers.PathInts(w, r, "codeCampID", "itemID")
	if !ok {
		return
	}
	if err := c.Service.DeleteRoom(r.Context(), moduleID, ids[1], ids[0]); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, helpers.ContentSuccess)
}
