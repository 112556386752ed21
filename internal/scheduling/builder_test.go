package scheduling

import (
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validInput() BookingInput {
	return BookingInput{
		Date:      date(2024, time.March, 4),
		TimeLabel: "2:00 PM",
		Subject:   "Algorithms",
		Modality:  model.ModalityHybrid,
		Delivery:  model.DeliveryInPerson,
		Location:  "Library",
	}
}

func TestBuildRequest_HappyPathOneOnOne(t *testing.T) {
	today := date(2024, time.March, 4)
	set := model.NewWeekdaySet("Monday", "Wednesday")
	require.True(t, IsAvailable(today, set, today))

	req, err := BuildRequest(validInput())
	require.NoError(t, err)

	assert.Equal(t, model.BookingRequest{
		Date:        "2024-03-04",
		Time:        "14:00",
		Subject:     "Algorithms",
		Location:    "Library",
		SessionKind: model.SessionOneOnOne,
	}, req)
}

func TestBuildRequest_OnlineUsesOnlineLocation(t *testing.T) {
	in := validInput()
	in.Modality = model.ModalityOnline
	in.Delivery = model.DeliveryOnline
	in.Location = ""

	req, err := BuildRequest(in)
	require.NoError(t, err)
	assert.Equal(t, model.LocationOnline, req.Location)
}

func TestBuildRequest_Group(t *testing.T) {
	in := validInput()
	in.SessionKind = model.SessionGroup
	in.GroupName = "  Graph Theory Circle "
	in.MaxParticipants = intPtr(6)
	in.Note = "Bring laptops"

	req, err := BuildRequest(in)
	require.NoError(t, err)
	assert.True(t, req.IsGroup())
	assert.Equal(t, "Graph Theory Circle", req.GroupName)
	require.NotNil(t, req.MaxParticipants)
	assert.Equal(t, 6, *req.MaxParticipants)
	assert.Equal(t, "Bring laptops", req.Note)

	// запрос не должен зависеть от последующих изменений ввода
	*in.MaxParticipants = 100
	assert.Equal(t, 6, *req.MaxParticipants)
}

func TestBuildRequest_OneOnOneDropsGroupFields(t *testing.T) {
	in := validInput()
	in.GroupName = "ignored"
	in.MaxParticipants = intPtr(0)

	req, err := BuildRequest(in)
	require.NoError(t, err)
	assert.Empty(t, req.GroupName)
	assert.Nil(t, req.MaxParticipants)
}

func TestBuildRequest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BookingInput)
		want   error
	}{
		{"missing date", func(in *BookingInput) { in.Date = time.Time{} }, ErrMissingRequiredField},
		{"missing time", func(in *BookingInput) { in.TimeLabel = " " }, ErrMissingRequiredField},
		{"missing subject", func(in *BookingInput) { in.Subject = "" }, ErrMissingRequiredField},
		{"unknown session kind", func(in *BookingInput) { in.SessionKind = "webinar" }, ErrMissingRequiredField},
		{"missing location", func(in *BookingInput) { in.Location = "" }, ErrMissingLocation},
		{"modality mismatch", func(in *BookingInput) { in.Modality = model.ModalityOnline }, ErrSessionKindDisallowed},
		{"no delivery chosen", func(in *BookingInput) { in.Delivery = "" }, ErrSessionKindDisallowed},
		{"zero participants", func(in *BookingInput) {
			in.SessionKind = model.SessionGroup
			in.MaxParticipants = intPtr(0)
		}, ErrInvalidParticipantLimit},
		{"negative participants", func(in *BookingInput) {
			in.SessionKind = model.SessionGroup
			in.MaxParticipants = intPtr(-3)
		}, ErrInvalidParticipantLimit},
		{"bad time label", func(in *BookingInput) { in.TimeLabel = "25:00 PM" }, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			req, err := BuildRequest(in)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, model.BookingRequest{}, req)
		})
	}
}

func TestBuildRequest_CheckOrder(t *testing.T) {
	// при нескольких нарушениях возвращается первое по порядку проверок
	in := BookingInput{
		TimeLabel:       "bad",
		Modality:        model.ModalityOnline,
		Delivery:        model.DeliveryInPerson,
		SessionKind:     model.SessionGroup,
		MaxParticipants: intPtr(0),
	}
	_, err := BuildRequest(in)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	in.Date = date(2024, time.March, 4)
	in.Subject = "Algorithms"
	_, err = BuildRequest(in)
	assert.ErrorIs(t, err, ErrSessionKindDisallowed)

	in.Modality = model.ModalityHybrid
	_, err = BuildRequest(in)
	assert.ErrorIs(t, err, ErrMissingLocation)

	in.Location = "Room 4"
	_, err = BuildRequest(in)
	assert.ErrorIs(t, err, ErrInvalidParticipantLimit)

	in.MaxParticipants = intPtr(3)
	_, err = BuildRequest(in)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	in.TimeLabel = "9:00 AM"
	req, err := BuildRequest(in)
	require.NoError(t, err)
	assert.Equal(t, "09:00", req.Time)
}

func TestBuildRequest_GroupWithoutLimit(t *testing.T) {
	in := validInput()
	in.SessionKind = model.SessionGroup

	req, err := BuildRequest(in)
	require.NoError(t, err)
	assert.Nil(t, req.MaxParticipants)
}

func TestBuildRequest_Idempotent(t *testing.T) {
	in := validInput()
	in.SessionKind = model.SessionGroup
	in.MaxParticipants = intPtr(4)

	first, err := BuildRequest(in)
	require.NoError(t, err)
	second, err := BuildRequest(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
