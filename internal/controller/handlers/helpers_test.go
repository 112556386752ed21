package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandArgs(t *testing.T) {
	assert.Equal(t, "@ada", commandArgs("/book @ada"))
	assert.Equal(t, "@ada", commandArgs("/book@mentor_bot   @ada "))
	assert.Equal(t, "Monday, Friday", commandArgs("/setdays Monday, Friday"))
	assert.Equal(t, "", commandArgs("/profile"))
}

func TestSplitLists(t *testing.T) {
	assert.Equal(t, []string{"Algorithms", " Linear algebra", " Calculus"}, splitList("Algorithms, Linear algebra; Calculus"))
	assert.Equal(t, []string{"Algorithms", " Linear algebra"}, splitList("Algorithms, Linear algebra"))
	assert.Equal(t, []string{"Monday", "Wednesday", "friday"}, splitWords("Monday, Wednesday friday"))
	assert.Empty(t, splitWords(" , "))
}

func TestParseParticipantLimit(t *testing.T) {
	n, ok := parseParticipantLimit(" 8 ")
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	// ноль проходит разбор, его отклонит сборщик запроса
	n, ok = parseParticipantLimit("0")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = parseParticipantLimit("many")
	assert.False(t, ok)
	_, ok = parseParticipantLimit("1000")
	assert.False(t, ok)
}

func TestValidateLength(t *testing.T) {
	v, ok := validateLength("  Room 4 ", 10)
	assert.True(t, ok)
	assert.Equal(t, "Room 4", v)

	_, ok = validateLength("   ", 10)
	assert.False(t, ok)
	_, ok = validateLength(strings.Repeat("я", 11), 10)
	assert.False(t, ok)
}
