package booking

// SlotCatalog supplies the fixed ordered list of slot labels offered per
// day. The booking engine never invents slots; it only classifies what the
// catalog provides.
type SlotCatalog interface {
	DaySlots(date string) []string
}

// FixedSlotCatalog serves the same business-hours grid for every day.
type FixedSlotCatalog struct {
	slots []string
}

func NewFixedSlotCatalog(slots []string) *FixedSlotCatalog {
	copied := make([]string, len(slots))
	copy(copied, slots)
	return &FixedSlotCatalog{slots: copied}
}

func (c *FixedSlotCatalog) DaySlots(_ string) []string {
	out := make([]string, len(c.slots))
	copy(out, c.slots)
	return out
}
