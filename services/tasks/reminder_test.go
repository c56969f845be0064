package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAppointmentTime(t *testing.T) {
	at, err := AppointmentTime("2024-06-01", "09:00 AM")
	require.NoError(t, err)
	require.Equal(t, 2024, at.Year())
	require.Equal(t, time.June, at.Month())
	require.Equal(t, 1, at.Day())
	require.Equal(t, 9, at.Hour())

	at, err = AppointmentTime("2024-06-01", "03:00 PM")
	require.NoError(t, err)
	require.Equal(t, 15, at.Hour())

	_, err = AppointmentTime("2024-06-01", "25:00")
	require.Error(t, err)
}

func TestNewReminderTaskSchedulesAtFireTime(t *testing.T) {
	fireAt := time.Now().Add(time.Hour)
	payload := ReminderPayload{BookingID: "b1", Name: "Ada", Date: "2024-06-01", Time: "09:00 AM"}

	task, opts, err := NewReminderTask(payload, fireAt)
	require.NoError(t, err)
	require.Equal(t, TypeSendReminder, task.Type())
	require.Len(t, opts, 1)

	var decoded ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	require.Equal(t, payload, decoded)
}
