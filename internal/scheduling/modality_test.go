package scheduling

import (
	"testing"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAllowedKindsFor(t *testing.T) {
	assert.Equal(t, AllowedKinds{Online: true}, AllowedKindsFor(model.ModalityOnline))
	assert.Equal(t, AllowedKinds{InPerson: true}, AllowedKindsFor(model.ModalityInPerson))
	assert.Equal(t, AllowedKinds{Online: true, InPerson: true}, AllowedKindsFor(model.ModalityHybrid))
	assert.Equal(t, AllowedKinds{}, AllowedKindsFor("carrier-pigeon"))
}

func TestRequiresLocation(t *testing.T) {
	assert.True(t, RequiresLocation(model.DeliveryInPerson))
	assert.False(t, RequiresLocation(model.DeliveryOnline))
}

func TestCheckDelivery(t *testing.T) {
	tests := []struct {
		modality model.Modality
		delivery model.Delivery
		allowed  bool
	}{
		{model.ModalityOnline, model.DeliveryOnline, true},
		{model.ModalityOnline, model.DeliveryInPerson, false},
		{model.ModalityInPerson, model.DeliveryInPerson, true},
		{model.ModalityInPerson, model.DeliveryOnline, false},
		{model.ModalityHybrid, model.DeliveryOnline, true},
		{model.ModalityHybrid, model.DeliveryInPerson, true},
		{model.ModalityHybrid, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.modality)+"/"+string(tt.delivery), func(t *testing.T) {
			err := CheckDelivery(tt.modality, tt.delivery)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrSessionKindDisallowed)
			}
		})
	}
}

func TestDefaultDelivery(t *testing.T) {
	for _, m := range []model.Modality{model.ModalityOnline, model.ModalityInPerson, model.ModalityHybrid} {
		assert.NoError(t, CheckDelivery(m, DefaultDelivery(m)), m)
	}
}
