package handlers

import (
	"strconv"
	"strings"
)

// commandArgs возвращает текст после команды: "/book@bot @ada" -> "@ada"
func commandArgs(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, " \n\t"); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	return ""
}

// splitList разбивает "Algorithms, Linear algebra; Calculus" на элементы, пробелы внутри сохраняются
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
}

// splitWords разбивает список дней по запятым и пробелам
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t'
	})
}

// parseParticipantLimit разбирает число участников.
// Ноль и отрицательные числа пропускаются дальше: их отклонит сборщик запроса.
func parseParticipantLimit(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n > MaxGroupParticipants {
		return 0, false
	}
	return n, true
}

// validateLength проверяет непустую строку не длиннее max (в символах)
func validateLength(text string, max int) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len([]rune(text)) > max {
		return "", false
	}
	return text, true
}
