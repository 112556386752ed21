package scheduling

import (
	"fmt"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
)

// AllowedKinds какие форматы занятия можно предложить
type AllowedKinds struct {
	Online   bool
	InPerson bool
}

// Allows проверяет конкретный формат
func (a AllowedKinds) Allows(d model.Delivery) bool {
	switch d {
	case model.DeliveryOnline:
		return a.Online
	case model.DeliveryInPerson:
		return a.InPerson
	default:
		return false
	}
}

// AllowedKindsFor выводит допустимые форматы из настройки ментора
func AllowedKindsFor(m model.Modality) AllowedKinds {
	switch m {
	case model.ModalityOnline:
		return AllowedKinds{Online: true}
	case model.ModalityInPerson:
		return AllowedKinds{InPerson: true}
	case model.ModalityHybrid:
		return AllowedKinds{Online: true, InPerson: true}
	default:
		return AllowedKinds{}
	}
}

// RequiresLocation место обязательно только для очных занятий
func RequiresLocation(d model.Delivery) bool {
	return d == model.DeliveryInPerson
}

// CheckDelivery сообщает ErrSessionKindDisallowed, если формат не разрешён настройкой
func CheckDelivery(m model.Modality, d model.Delivery) error {
	if !AllowedKindsFor(m).Allows(d) {
		return fmt.Errorf("%w: %s with %s modality", ErrSessionKindDisallowed, d, m)
	}
	return nil
}

// DefaultDelivery формат, предвыбранный в новом диалоге
func DefaultDelivery(m model.Modality) model.Delivery {
	if m == model.ModalityInPerson {
		return model.DeliveryInPerson
	}
	return model.DeliveryOnline
}
