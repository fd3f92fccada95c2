package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const teamICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//meetings//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:review@test\r\n" +
	"DTSTAMP:20261001T080000Z\r\n" +
	"SUMMARY:Review\r\n" +
	"DTSTART:20261015T130000Z\r\n" +
	"DTEND:20261015T140000Z\r\n" +
	"ATTENDEE:mailto:alice\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t,
		os.WriteFile(path, []byte(content), 0o600),
	)

	return path
}

func TestRun(t *testing.T) {
	t.Run(
		"1. inline and calendar events",
		func(t *testing.T) {
			dir := t.TempDir()

			writeFile(t, dir, "team.ics", teamICS)
			configPath := writeFile(t, dir, "query.yaml", `
log_level: error
date: "2026-10-15"
request:
  duration: 60
  attendees: [alice]
  optional: [bob]
events:
  - title: standup
    start: "00:00"
    end: "09:00"
    attendees: [alice]
  - title: gym
    start: "15:00"
    end: "24:00"
    attendees: [alice, bob]
ics:
  - name: team
    path: team.ics
`)

			var out bytes.Buffer

			require.NoError(t, run(configPath, &out))
			require.Equal(t,
				"09:00-13:00 (240 min)\n14:00-15:00 (60 min)\n",
				out.String(),
			)
		},
	)

	t.Run(
		"2. optional attendee busy falls back",
		func(t *testing.T) {
			dir := t.TempDir()

			configPath := writeFile(t, dir, "query.yaml", `
log_level: error
request:
  duration: 30
  attendees: [alice]
  optional: [bob]
events:
  - title: offsite
    start: "00:00"
    end: "24:00"
    attendees: [bob]
`)

			var out bytes.Buffer

			require.NoError(t, run(configPath, &out))
			require.Equal(t, "00:00-24:00 (1440 min)\n", out.String())
		},
	)

	t.Run(
		"3. no slot prints nothing",
		func(t *testing.T) {
			dir := t.TempDir()

			configPath := writeFile(t, dir, "query.yaml", `
log_level: error
request:
  duration: 1500
  attendees: [alice]
`)

			var out bytes.Buffer

			require.NoError(t, run(configPath, &out))
			require.Empty(t, out.String())
		},
	)
}

func TestErrorsRun(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "1. bad log level",
			content: "log_level: chatty\n",
		},
		{
			name:    "2. negative duration",
			content: "log_level: error\nrequest:\n  duration: -1\n",
		},
		{
			name:    "3. bad event clock",
			content: "log_level: error\nevents:\n  - title: x\n    start: \"25:00\"\n    duration: 10\n",
		},
		{
			name:    "4. missing calendar file",
			content: "log_level: error\ndate: \"2026-10-15\"\nics:\n  - name: none\n    path: none.ics\n",
		},
	}

	for ix, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				configPath := writeFile(t, dir, fmt.Sprintf("query_%d.yaml", ix), tt.content)

				var out bytes.Buffer

				require.Error(t, run(configPath, &out))
			},
		)
	}

	require.Error(t, run(filepath.Join(dir, "missing.yaml"), &bytes.Buffer{}))
}
