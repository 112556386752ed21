package model

// Origin определяет, кто инициирует запрос и куда он будет отправлен
type Origin string

const (
	OriginBooking Origin = "booking" // ученик записывается к ментору
	OriginOffer   Origin = "offer"   // ментор предлагает занятие ученику
)

// LocationOnline значение location для онлайн-занятий
const LocationOnline = "online"

// BookingRequest готовый к отправке запрос на занятие.
// Создаётся только целиком через scheduling.BuildRequest.
type BookingRequest struct {
	Date            string      `json:"date"` // YYYY-MM-DD
	Time            string      `json:"time"` // HH:MM, 24h
	Subject         string      `json:"subject"`
	Location        string      `json:"location"`
	SessionKind     SessionKind `json:"sessionKind"`
	GroupName       string      `json:"groupName,omitempty"`
	MaxParticipants *int        `json:"maxParticipants,omitempty"`
	Note            string      `json:"note,omitempty"`
}

// IsGroup проверяет, является ли запрос групповым
func (r BookingRequest) IsGroup() bool {
	return r.SessionKind == SessionGroup
}
