package dto

import (
	"venuequote/internal/domains/pricing/model"
	"venuequote/shared"
)

type AddBookingRequest struct {
	VenueKey     string `json:"venue_key"      validate:"required,max=50"`
	VenueName    string `json:"venue_name"     validate:"required,max=100"`
	HireTypeKey  string `json:"hire_type_key"  validate:"required,max=50"`
	HireTypeName string `json:"hire_type_name" validate:"required,max=100"`
	// Fractional clock hours in [0,24). Overnight spans are rejected: the
	// end must be after the start within the same day.
	StartTime float64  `json:"start_time" validate:"clockhour"`
	EndTime   float64  `json:"end_time"   validate:"clockhour,gtfield=StartTime"`
	Days      []string `json:"days"       validate:"required,min=1,unique,dive,daytoken"`
	// Equipment quantities arrive as raw widget strings; blank and
	// non-numeric values are coerced to 0, negatives clamped.
	Equipment map[string]string `json:"equipment" validate:"omitempty"`
}

func (r *AddBookingRequest) ToModel() model.BookingRequest {
	quantities := make(map[string]int, len(r.Equipment))
	for key, raw := range r.Equipment {
		quantities[key] = shared.ParseQuantity(raw)
	}

	return model.BookingRequest{
		VenueKey:     r.VenueKey,
		VenueName:    r.VenueName,
		HireTypeKey:  r.HireTypeKey,
		HireTypeName: r.HireTypeName,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		SelectedDays: r.Days,
		Equipment:    quantities,
	}
}
