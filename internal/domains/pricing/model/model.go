package model

const (
	EntityName = "pricing"
)

const (
	DaySaturday = "Sat"
	DaySunday   = "Sun"
)

// Regular operating hours. Hours booked outside the regular window attract
// the after-hours rate; weekends close earlier than weekdays.
const (
	RegularStartHour      = 8.0
	RegularEndHourWeekday = 23.0
	RegularEndHourWeekend = 19.0
)

// Rates is the pricing configuration document, loaded once at startup and
// read-only afterwards.
type Rates struct {
	MinBookingHours float64                       `json:"min_booking_hours"`
	VATRate         float64                       `json:"vat_rate"`
	AfterHoursRate  float64                       `json:"after_hours_rate"`
	VenueRates      map[string]map[string]float64 `json:"venue_rates"`
	EquipmentRates  map[string]EquipmentRate      `json:"equipment_rates"`
}

type EquipmentRate struct {
	Rate float64 `json:"rate"`
	// PerDay items are billed on every selected day; otherwise the item
	// is billed once per booking, attributed to the first selected day.
	PerDay bool `json:"per_day"`
}

// HourlyRate looks up the base hourly rate for a venue and hire type.
func (r *Rates) HourlyRate(venueKey, hireTypeKey string) (float64, bool) {
	hireTypes, ok := r.VenueRates[venueKey]
	if !ok {
		return 0, false
	}

	rate, ok := hireTypes[hireTypeKey]

	return rate, ok
}

// IsWeekend reports whether the given day token falls on a weekend.
func IsWeekend(day string) bool {
	return day == DaySaturday || day == DaySunday
}

// RegularEndHour returns the end of the regular operating window for a day.
func RegularEndHour(day string) float64 {
	if IsWeekend(day) {
		return RegularEndHourWeekend
	}

	return RegularEndHourWeekday
}

// BookingRequest describes one "add to quote" action. SelectedDays keeps
// the order the client presented; per-booking equipment is attributed to
// the first day in that order.
type BookingRequest struct {
	VenueKey     string
	VenueName    string
	HireTypeKey  string
	HireTypeName string
	StartTime    float64
	EndTime      float64
	SelectedDays []string
	Equipment    map[string]int
}
