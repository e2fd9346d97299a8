package service

import (
	"html/template"
	qModel "venuequote/internal/domains/quote/model"
	"venuequote/shared"
)

// The document must stand alone: styling is inlined, nothing external is
// referenced.
var documentTemplate = template.Must(template.New("quote-document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Venue Hire Quote</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 6px 10px; text-align: right; }
th { background: #eee; }
td.label, th.label { text-align: left; }
tr.grand-total td { font-weight: bold; }
p.disclaimer { margin-top: 1.5em; font-size: 0.9em; color: #555; }
</style>
</head>
<body>
<h1>Venue Hire Quote</h1>
<table>
<tr>
<th class="label">Venue</th>
<th class="label">Hire type</th>
<th>Hours</th>
<th>Base</th>
<th>Equipment</th>
<th>Subtotal</th>
<th>After-hours</th>
<th>VAT</th>
<th>Total</th>
</tr>
{{range .Rows}}<tr>
<td class="label">{{.VenueName}}</td>
<td class="label">{{.HireTypeName}}</td>
<td>{{.Hours}}</td>
<td>{{.BaseCost}}</td>
<td>{{.EquipCost}}</td>
<td>{{.Subtotal}}</td>
<td>{{.Surcharge}}</td>
<td>{{.VAT}}</td>
<td>{{.Total}}</td>
</tr>
{{end}}<tr class="grand-total">
<td class="label" colspan="8">Grand total</td>
<td>{{.GrandTotal}}</td>
</tr>
</table>
<p class="disclaimer">{{.Disclaimer}}</p>
</body>
</html>
`))

type documentRow struct {
	VenueName    string
	HireTypeName string
	Hours        string
	BaseCost     string
	EquipCost    string
	Subtotal     string
	Surcharge    string
	VAT          string
	Total        string
}

type documentData struct {
	Rows       []documentRow
	GrandTotal string
	Disclaimer string
}

func newDocumentData(quote qModel.Quote) documentData {
	rows := make([]documentRow, len(quote.Items))
	for i, item := range quote.Items {
		rows[i] = documentRow{
			VenueName:    item.VenueName,
			HireTypeName: item.HireTypeName,
			Hours:        shared.FormatHours(item.Hours),
			BaseCost:     shared.FormatMoney(item.BaseCost),
			EquipCost:    shared.FormatMoney(item.EquipCost),
			Subtotal:     shared.FormatMoney(item.Subtotal),
			Surcharge:    shared.FormatMoney(item.Surcharge),
			VAT:          shared.FormatMoney(item.VAT),
			Total:        shared.FormatMoney(item.Total),
		}
	}

	return documentData{
		Rows:       rows,
		GrandTotal: shared.FormatMoney(quote.GrandTotal()),
		Disclaimer: Disclaimer,
	}
}
