package service

import (
	"context"
	"fmt"
	"math"
	"venuequote/infras/otel"
	"venuequote/internal/domains/pricing/model"
	"venuequote/internal/domains/pricing/model/dto"
	qModel "venuequote/internal/domains/quote/model"
	"venuequote/shared"
	"venuequote/shared/constant"
	"venuequote/shared/failure"
	"venuequote/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Pricing interface {
	Price(ctx context.Context, req dto.AddBookingRequest) ([]qModel.LineItem, error)
}

type serviceImpl struct {
	rates *model.Rates
	otel  otel.Otel
}

func New(rates *model.Rates, otel otel.Otel) Pricing {
	return &serviceImpl{
		rates: rates,
		otel:  otel,
	}
}

// Price turns one booking request into one line item per selected day.
// Selection order is preserved; per-booking equipment lands on the first
// selected day only.
func (s *serviceImpl) Price(ctx context.Context, req dto.AddBookingRequest) (items []qModel.LineItem, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Price")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel()

	if len(booking.SelectedDays) == 0 {
		return nil, failure.NoDaySelected // nolint:wrapcheck
	}

	if booking.EndTime <= booking.StartTime {
		return nil, failure.EndBeforeStart // nolint:wrapcheck
	}

	baseRate, ok := s.rates.HourlyRate(booking.VenueKey, booking.HireTypeKey)
	if !ok {
		log.Error().
			Str("venue", booking.VenueKey).
			Str("hire_type", booking.HireTypeKey).
			Msg("no rate configured for venue and hire type")

		return nil, failure.BadRequestFromString(fmt.Sprintf("no rate configured for venue %q and hire type %q", booking.VenueKey, booking.HireTypeKey)) // nolint:wrapcheck
	}

	perDayCost, perBookingCost, err := s.equipmentCosts(booking.Equipment)
	if err != nil {
		return nil, err
	}

	hoursPerDay := booking.EndTime - booking.StartTime
	chargeableHours := math.Max(s.rates.MinBookingHours, hoursPerDay)
	baseCost := baseRate * chargeableHours

	now := timezone.Now()
	items = make([]qModel.LineItem, 0, len(booking.SelectedDays))

	for i, day := range booking.SelectedDays {
		equipCost := perDayCost
		if i == 0 {
			equipCost += perBookingCost
		}

		surcharge := surchargeHours(day, booking.StartTime, booking.EndTime) * s.rates.AfterHoursRate
		subtotal := baseCost + equipCost
		vat := (subtotal + surcharge) * s.rates.VATRate

		items = append(items, qModel.LineItem{
			ID:           uuid.NewString(),
			VenueName:    fmt.Sprintf("%s (%s)", booking.VenueName, day),
			HireTypeName: booking.HireTypeName,
			Hours:        chargeableHours,
			BaseCost:     baseCost,
			EquipCost:    equipCost,
			Subtotal:     subtotal,
			Surcharge:    surcharge,
			VAT:          vat,
			Total:        subtotal + surcharge + vat,
			CreatedAt:    now,
		})
	}

	scope.SetAttribute("pricing.line_items", len(items))

	return items, nil
}

// equipmentCosts splits the requested equipment into the amount charged on
// every selected day and the amount charged once per booking.
func (s *serviceImpl) equipmentCosts(quantities map[string]int) (perDay, perBooking float64, err error) {
	for key, qty := range quantities {
		qty = shared.ClampQuantity(qty)
		if qty == 0 {
			continue
		}

		rate, ok := s.rates.EquipmentRates[key]
		if !ok {
			log.Error().Str("equipment", key).Msg("unknown equipment key")

			return 0, 0, failure.BadRequestFromString(fmt.Sprintf("unknown equipment %q", key)) // nolint:wrapcheck
		}

		cost := rate.Rate * float64(qty)
		if rate.PerDay {
			perDay += cost
		} else {
			perBooking += cost
		}
	}

	return perDay, perBooking, nil
}

// surchargeHours counts the hours of the booking window falling outside the
// regular operating hours of the given day.
func surchargeHours(day string, start, end float64) float64 {
	regularEnd := model.RegularEndHour(day)

	return math.Max(0, model.RegularStartHour-start) + math.Max(0, end-regularEnd)
}
