package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_Stamping(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, chicago)
	updated := created.Add(2 * time.Hour)

	var a Audit
	a.StampCreated(7, created)
	assert.Equal(t, 7, a.CreatedByUserID)
	assert.Equal(t, 7, a.LastUpdatedByUserID)
	assert.Equal(t, time.UTC, a.CreatedByDate.Location())
	assert.True(t, a.CreatedByDate.Equal(created))

	a.StampUpdated(9, updated)
	assert.Equal(t, 7, a.CreatedByUserID)
	assert.Equal(t, 9, a.LastUpdatedByUserID)
	assert.True(t, a.LastUpdatedByDate.Equal(updated))
}

func TestAudit_IsOwnedBy(t *testing.T) {
	a := &Audit{CreatedByUserID: 7, LastUpdatedByUserID: 9}
	assert.True(t, a.IsOwnedBy(7))
	assert.True(t, a.IsOwnedBy(9))
	assert.False(t, a.IsOwnedBy(8))
	assert.False(t, (&Audit{}).IsOwnedBy(0))
	var none *Audit
	assert.False(t, none.IsOwnedBy(7))
}

func TestCodeCampEvent_Validate(t *testing.T) {
	begin := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	ok := &CodeCampEvent{Name: "DevCamp", BeginDate: begin, EndDate: end}
	assert.Empty(t, ok.Validate())

	sameDay := &CodeCampEvent{Name: "DevCamp", BeginDate: begin, EndDate: begin}
	assert.Empty(t, sameDay.Validate())

	reversed := &CodeCampEvent{Name: "DevCamp", BeginDate: end, EndDate: begin}
	assert.Equal(t, []string{"BeginDate must not be after EndDate"}, reversed.Validate())

	missing := &CodeCampEvent{}
	assert.Len(t, missing.Validate(), 2)
}

func TestCodeCampEvent_InLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	e := &CodeCampEvent{
		ItemID:    1,
		BeginDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Audit: Audit{
			CreatedByDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			LastUpdatedByDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	local := e.InLocation(tokyo)
	assert.Equal(t, tokyo, local.BeginDate.Location())
	assert.Equal(t, 9, local.BeginDate.Hour())
	assert.True(t, local.EndDate.Equal(e.EndDate))
	assert.Equal(t, tokyo, local.CreatedByDate.Location())
	assert.Equal(t, tokyo, local.LastUpdatedByDate.Location())
	assert.Equal(t, time.UTC, e.BeginDate.Location(), "original is left untouched")
	assert.Same(t, e, e.InLocation(nil))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound(RoomEntityName)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "none found for RoomInfo", err.Error())

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, RoomEntityName, nf.Entity)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput([]string{"a", "b"})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "invalid input: a; b", err.Error())

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"a", "b"}, ve.Messages)
}

func TestCaller_IsAuthenticated(t *testing.T) {
	assert.False(t, Anonymous().IsAuthenticated())
	assert.True(t, Caller{UserID: 7}.IsAuthenticated())
}
