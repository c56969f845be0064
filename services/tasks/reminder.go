package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"salonbook/config"
	"salonbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderPayload carries everything the worker needs to notify a customer
// about an upcoming appointment.
type ReminderPayload struct {
	BookingID string             `json:"bookingId"`
	Name      string             `json:"name"`
	Phone     string             `json:"phone"`
	Email     string             `json:"email"`
	Date      string             `json:"date"`
	Time      string             `json:"time"`
	Service   models.ServiceType `json:"service"`
}

// NewReminderTask builds the asynq task scheduled to fire at fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue enqueues appointment reminders on the Redis-backed queue.
type ReminderQueue struct {
	client *asynq.Client
}

func NewReminderQueue() *ReminderQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &ReminderQueue{client: client}
}

// ScheduleReminder enqueues a reminder that fires the configured lead time
// before the appointment. Appointments too close to fire in the past are
// skipped.
func (q *ReminderQueue) ScheduleReminder(booking models.Booking) error {
	appointmentAt, err := AppointmentTime(booking.Date, booking.Time)
	if err != nil {
		return err
	}

	fireAt := appointmentAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := ReminderPayload{
		BookingID: booking.ID,
		Name:      booking.Name,
		Phone:     booking.Phone,
		Email:     booking.Email,
		Date:      booking.Date,
		Time:      booking.Time,
		Service:   booking.Service,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := q.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// AppointmentTime combines a yyyy-MM-dd date with a slot label like
// "09:00 AM" into a local timestamp.
func AppointmentTime(date, slot string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+slot, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse appointment time %q %q: %w", date, slot, err)
	}
	return t, nil
}
