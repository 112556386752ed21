package formatting

import "github.com/Freeeeeet/mentor_scheduler/internal/model"

// Display emoji и текст для отображения значения
type Display struct {
	Emoji string
	Text  string
}

func (d Display) String() string {
	return d.Emoji + " " + d.Text
}

// GetModalityDisplay отображение настройки формата ментора
func GetModalityDisplay(m model.Modality) Display {
	displays := map[model.Modality]Display{
		model.ModalityOnline:   {"💻", "Online only"},
		model.ModalityInPerson: {"🏫", "In person only"},
		model.ModalityHybrid:   {"🔀", "Online or in person"},
	}

	if display, ok := displays[m]; ok {
		return display
	}

	return Display{"❓", "Not set"}
}

// GetDeliveryDisplay отображение выбранного формата занятия
func GetDeliveryDisplay(d model.Delivery) Display {
	switch d {
	case model.DeliveryOnline:
		return Display{"💻", "Online"}
	case model.DeliveryInPerson:
		return Display{"🏫", "In person"}
	default:
		return Display{"❓", "Not chosen"}
	}
}

// GetSessionKindDisplay отображение типа занятия
func GetSessionKindDisplay(k model.SessionKind) Display {
	if k == model.SessionGroup {
		return Display{"👥", "Group"}
	}
	return Display{"👤", "One-on-one"}
}
