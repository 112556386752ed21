package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestDecodeAndEncode(t *testing.T) {
	out, err := execute(t, "decode", "2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, "14:00\n", out)

	out, err = execute(t, "encode", "00:00")
	require.NoError(t, err)
	assert.Equal(t, "12:00 AM\n", out)

	_, err = execute(t, "decode", "14:00")
	assert.Error(t, err)
}

func TestGrid(t *testing.T) {
	out, err := execute(t, "grid", "--days", "Monday", "--today", "2024-03-04", "--selected", "2024-03-11")
	require.NoError(t, err)

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "[11]")
	assert.Contains(t, out, "*18")
	assert.Contains(t, out, "(25)") // 25 февраля в первой неделе
}

func TestBuild(t *testing.T) {
	out, err := execute(t, "build",
		"--date", "2024-03-11", "--time", "9:00 AM", "--subject", "Algorithms",
		"--origin", "offer", "--kind", "group", "--group-name", "Study hall", "--max", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "POST /offers/group")
	assert.Contains(t, out, `"time": "09:00"`)
	assert.Contains(t, out, `"maxParticipants": 5`)
	assert.Contains(t, out, `"location": "online"`)
}

func TestBuild_MissingLocation(t *testing.T) {
	_, err := execute(t, "build",
		"--date", "2024-03-11", "--time", "9:00 AM", "--subject", "Algorithms",
		"--delivery", "in-person")
	assert.Error(t, err)
}
