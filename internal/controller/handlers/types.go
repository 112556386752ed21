package handlers

import (
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService    *service.UserService
	profileService *service.ProfileService
	bookingService *service.BookingService
	drafts         state.Store
	submitGuard    time.Duration
	logger         *zap.Logger

	// для показа шагов диалога теми же экранами, что и в callbacks
	screens *callbacktypes.Handler
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	profileService *service.ProfileService,
	bookingService *service.BookingService,
	drafts state.Store,
	submitGuard time.Duration,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:    userService,
		profileService: profileService,
		bookingService: bookingService,
		drafts:         drafts,
		submitGuard:    submitGuard,
		logger:         logger,
		screens: &callbacktypes.Handler{
			UserService:    userService,
			ProfileService: profileService,
			BookingService: bookingService,
			Drafts:         drafts,
			Logger:         logger,
			SubmitGuard:    submitGuard,
		},
	}
}
