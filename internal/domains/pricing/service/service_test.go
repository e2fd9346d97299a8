package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuequote/infras/otel/mocks"
	"venuequote/internal/domains/pricing/model"
	"venuequote/internal/domains/pricing/model/dto"
	"venuequote/internal/domains/pricing/service"
	"venuequote/shared/failure"
)

func testRates() *model.Rates {
	return &model.Rates{
		MinBookingHours: 2,
		VATRate:         0.2,
		AfterHoursRate:  10,
		VenueRates: map[string]map[string]float64{
			"main-hall": {"full": 50, "half": 30},
			"annex":     {"full": 25},
		},
		EquipmentRates: map[string]model.EquipmentRate{
			"pa-system": {Rate: 50, PerDay: false},
			"projector": {Rate: 20, PerDay: true},
		},
	}
}

func newService() service.Pricing {
	return service.New(testRates(), mocks.NewOtel())
}

func TestPricingService_Price_AccountingInvariants(t *testing.T) {
	svc := newService()

	req := dto.AddBookingRequest{
		VenueKey:     "main-hall",
		VenueName:    "Main Hall",
		HireTypeKey:  "full",
		HireTypeName: "Full venue",
		StartTime:    7,
		EndTime:      20,
		Days:         []string{"Fri", "Sat", "Sun"},
		Equipment: map[string]string{
			"pa-system": "1",
			"projector": "2",
		},
	}

	items, err := svc.Price(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for _, item := range items {
		assert.InDelta(t, item.BaseCost+item.EquipCost, item.Subtotal, 1e-9)
		assert.InDelta(t, (item.Subtotal+item.Surcharge)*0.2, item.VAT, 1e-9)
		assert.InDelta(t, item.Subtotal+item.Surcharge+item.VAT, item.Total, 1e-9)
	}
}

func TestPricingService_Price_ChargeableHoursFloor(t *testing.T) {
	svc := newService()

	tests := []struct {
		name      string
		startTime float64
		endTime   float64
		wantHours float64
	}{
		{
			name:      "short booking floored at minimum",
			startTime: 9,
			endTime:   10,
			wantHours: 2,
		},
		{
			name:      "booking at the minimum",
			startTime: 9,
			endTime:   11,
			wantHours: 2,
		},
		{
			name:      "booking above the minimum",
			startTime: 9,
			endTime:   17,
			wantHours: 8,
		},
		{
			name:      "fractional hours kept",
			startTime: 9.5,
			endTime:   13.25,
			wantHours: 3.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.AddBookingRequest{
				VenueKey:     "main-hall",
				VenueName:    "Main Hall",
				HireTypeKey:  "full",
				HireTypeName: "Full venue",
				StartTime:    tt.startTime,
				EndTime:      tt.endTime,
				Days:         []string{"Mon"},
			}

			items, err := svc.Price(context.Background(), req)
			require.NoError(t, err)
			require.Len(t, items, 1)

			assert.InDelta(t, tt.wantHours, items[0].Hours, 1e-9)
			assert.InDelta(t, 50*tt.wantHours, items[0].BaseCost, 1e-9)
		})
	}
}

func TestPricingService_Price_EquipmentAttribution(t *testing.T) {
	svc := newService()

	// One per-booking item (50x1) and one per-day item (20x1) over three
	// days: first day carries 70, the rest 20 each.
	req := dto.AddBookingRequest{
		VenueKey:     "main-hall",
		VenueName:    "Main Hall",
		HireTypeKey:  "full",
		HireTypeName: "Full venue",
		StartTime:    10,
		EndTime:      14,
		Days:         []string{"Wed", "Thu", "Fri"},
		Equipment: map[string]string{
			"pa-system": "1",
			"projector": "1",
		},
	}

	items, err := svc.Price(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.InDelta(t, 70, items[0].EquipCost, 1e-9)
	assert.InDelta(t, 20, items[1].EquipCost, 1e-9)
	assert.InDelta(t, 20, items[2].EquipCost, 1e-9)
}

func TestPricingService_Price_DayOrderPreserved(t *testing.T) {
	svc := newService()

	req := dto.AddBookingRequest{
		VenueKey:     "main-hall",
		VenueName:    "Main Hall",
		HireTypeKey:  "half",
		HireTypeName: "Half venue",
		StartTime:    10,
		EndTime:      14,
		// Selection order, not week order.
		Days: []string{"Sun", "Tue", "Sat"},
	}

	items, err := svc.Price(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Main Hall (Sun)", items[0].VenueName)
	assert.Equal(t, "Main Hall (Tue)", items[1].VenueName)
	assert.Equal(t, "Main Hall (Sat)", items[2].VenueName)
}

func TestPricingService_Price_AfterHoursSurcharge(t *testing.T) {
	svc := newService()

	tests := []struct {
		name          string
		day           string
		startTime     float64
		endTime       float64
		wantSurcharge float64
	}{
		{
			name:          "weekday inside regular hours",
			day:           "Wed",
			startTime:     8,
			endTime:       23,
			wantSurcharge: 0,
		},
		{
			name:          "weekend inside regular hours",
			day:           "Sun",
			startTime:     8,
			endTime:       19,
			wantSurcharge: 0,
		},
		{
			name:          "saturday early start and late finish",
			day:           "Sat",
			startTime:     7,
			endTime:       20,
			wantSurcharge: 20,
		},
		{
			name:          "weekday late finish only",
			day:           "Mon",
			startTime:     9,
			endTime:       23.5,
			wantSurcharge: 5,
		},
		{
			name:          "weekend evening charged beyond 19",
			day:           "Sat",
			startTime:     17,
			endTime:       22,
			wantSurcharge: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.AddBookingRequest{
				VenueKey:     "main-hall",
				VenueName:    "Main Hall",
				HireTypeKey:  "full",
				HireTypeName: "Full venue",
				StartTime:    tt.startTime,
				EndTime:      tt.endTime,
				Days:         []string{tt.day},
			}

			items, err := svc.Price(context.Background(), req)
			require.NoError(t, err)
			require.Len(t, items, 1)

			assert.InDelta(t, tt.wantSurcharge, items[0].Surcharge, 1e-9)
		})
	}
}

func TestPricingService_Price_SurchargePerDay(t *testing.T) {
	svc := newService()

	// Same window priced independently per day: Friday closes at 23,
	// Saturday at 19.
	req := dto.AddBookingRequest{
		VenueKey:     "main-hall",
		VenueName:    "Main Hall",
		HireTypeKey:  "full",
		HireTypeName: "Full venue",
		StartTime:    18,
		EndTime:      21,
		Days:         []string{"Fri", "Sat"},
	}

	items, err := svc.Price(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.InDelta(t, 0, items[0].Surcharge, 1e-9)
	assert.InDelta(t, 20, items[1].Surcharge, 1e-9)
}

func TestPricingService_Price_IDsDistinct(t *testing.T) {
	svc := newService()

	req := dto.AddBookingRequest{
		VenueKey:     "main-hall",
		VenueName:    "Main Hall",
		HireTypeKey:  "full",
		HireTypeName: "Full venue",
		StartTime:    10,
		EndTime:      14,
		Days:         []string{"Mon", "Tue", "Wed"},
	}

	seen := map[string]bool{}

	// Two successive adds; every id must be distinct across both.
	for i := 0; i < 2; i++ {
		items, err := svc.Price(context.Background(), req)
		require.NoError(t, err)

		for _, item := range items {
			assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
			seen[item.ID] = true
		}
	}

	assert.Len(t, seen, 6)
}

func TestPricingService_Price_Validation(t *testing.T) {
	svc := newService()

	base := dto.AddBookingRequest{
		VenueKey:     "main-hall",
		VenueName:    "Main Hall",
		HireTypeKey:  "full",
		HireTypeName: "Full venue",
		StartTime:    10,
		EndTime:      14,
		Days:         []string{"Mon"},
	}

	tests := []struct {
		name    string
		mutate  func(req *dto.AddBookingRequest)
		wantErr error
	}{
		{
			name: "no day selected",
			mutate: func(req *dto.AddBookingRequest) {
				req.Days = nil
			},
			wantErr: failure.NoDaySelected,
		},
		{
			name: "end before start",
			mutate: func(req *dto.AddBookingRequest) {
				req.StartTime = 14
				req.EndTime = 10
			},
			wantErr: failure.EndBeforeStart,
		},
		{
			name: "zero length window",
			mutate: func(req *dto.AddBookingRequest) {
				req.EndTime = req.StartTime
			},
			wantErr: failure.EndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			_, err := svc.Price(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPricingService_Price_UnknownKeys(t *testing.T) {
	svc := newService()

	tests := []struct {
		name   string
		mutate func(req *dto.AddBookingRequest)
	}{
		{
			name: "unknown venue",
			mutate: func(req *dto.AddBookingRequest) {
				req.VenueKey = "ballroom"
			},
		},
		{
			name: "unknown hire type",
			mutate: func(req *dto.AddBookingRequest) {
				req.VenueKey = "annex"
				req.HireTypeKey = "half"
			},
		},
		{
			name: "unknown equipment",
			mutate: func(req *dto.AddBookingRequest) {
				req.Equipment = map[string]string{"fog-machine": "1"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.AddBookingRequest{
				VenueKey:     "main-hall",
				VenueName:    "Main Hall",
				HireTypeKey:  "full",
				HireTypeName: "Full venue",
				StartTime:    10,
				EndTime:      14,
				Days:         []string{"Mon"},
			}
			tt.mutate(&req)

			_, err := svc.Price(context.Background(), req)
			require.Error(t, err)

			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestPricingService_Price_ZeroQuantityIgnored(t *testing.T) {
	svc := newService()

	req := dto.AddBookingRequest{
		VenueKey:     "main-hall",
		VenueName:    "Main Hall",
		HireTypeKey:  "full",
		HireTypeName: "Full venue",
		StartTime:    10,
		EndTime:      14,
		Days:         []string{"Mon"},
		Equipment: map[string]string{
			"pa-system": "0",
			"projector": "",
			// Unknown keys with zero quantity never reach the rate lookup.
			"fog-machine": "-3",
		},
	}

	items, err := svc.Price(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.InDelta(t, 0, items[0].EquipCost, 1e-9)
}
