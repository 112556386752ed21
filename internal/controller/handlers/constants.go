package handlers

// Ограничения текстового ввода в диалоге записи
const (
	LocationMaxLength  = 200
	GroupNameMaxLength = 100
	NoteMaxLength      = 500

	// Верхняя граница для группы, нижнюю (>= 1) проверяет сборщик запроса
	MaxGroupParticipants = 100
)
