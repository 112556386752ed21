package callbacktypes

import (
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService    *service.UserService
	ProfileService *service.ProfileService
	BookingService *service.BookingService
	Drafts         state.Store
	Logger         *zap.Logger

	// SubmitGuard сколько действует отметка об отправке запроса
	SubmitGuard time.Duration
}
