package models

// SlotStatus classifies one catalog slot for a given day.
type SlotStatus struct {
	Slot   string `json:"slot"`
	Booked bool   `json:"booked"`
}

// DaySchedule is the ordered classification of a day's full slot catalog.
type DaySchedule struct {
	Date  string       `json:"date"`
	Slots []SlotStatus `json:"slots"`
}
