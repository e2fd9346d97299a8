package dto

import (
	"venuequote/internal/domains/quote/model"
	"venuequote/shared"
)

// LineItemResponse presents a priced row with display rounding applied.
// Currency fields carry exactly two decimals, hours one decimal; the
// stored values keep full precision.
type LineItemResponse struct {
	ID           string `json:"id"`
	VenueName    string `json:"venue_name"`
	HireTypeName string `json:"hire_type_name"`
	Hours        string `json:"hours"`
	BaseCost     string `json:"base_cost"`
	EquipCost    string `json:"equip_cost"`
	Subtotal     string `json:"subtotal"`
	Surcharge    string `json:"surcharge"`
	VAT          string `json:"vat"`
	Total        string `json:"total"`
}

func (r *LineItemResponse) FromModel(item model.LineItem) {
	r.ID = item.ID
	r.VenueName = item.VenueName
	r.HireTypeName = item.HireTypeName
	r.Hours = shared.FormatHours(item.Hours)
	r.BaseCost = shared.FormatMoney(item.BaseCost)
	r.EquipCost = shared.FormatMoney(item.EquipCost)
	r.Subtotal = shared.FormatMoney(item.Subtotal)
	r.Surcharge = shared.FormatMoney(item.Surcharge)
	r.VAT = shared.FormatMoney(item.VAT)
	r.Total = shared.FormatMoney(item.Total)
}

type QuoteResponse struct {
	Items      []LineItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	GrandTotal string             `json:"grand_total"`
}

func (r *QuoteResponse) FromModel(quote model.Quote) {
	r.TotalItems = len(quote.Items)
	r.GrandTotal = shared.FormatMoney(quote.GrandTotal())

	r.Items = make([]LineItemResponse, len(quote.Items))
	for i, item := range quote.Items {
		r.Items[i].FromModel(item)
	}
}
