package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"venuequote/infras/otel"
	"venuequote/internal/domains/export/model/dto"
	qModel "venuequote/internal/domains/quote/model"
	qService "venuequote/internal/domains/quote/service"
	"venuequote/shared"
	"venuequote/shared/constant"
	"venuequote/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	Disclaimer       = "This quote is an estimate only and does not constitute a confirmed booking."
	EmailSubject     = "Venue hire quote"
	DocumentFilename = "venue-hire-quote.html"
)

// The two export formats intentionally break the costs down differently:
// the text summary folds the after-hours surcharge into its subtotal line,
// the document keeps surcharge and VAT as their own columns next to a
// subtotal that excludes both. Kept as two distinct renderings.
type Export interface {
	Text(ctx context.Context, session string) (string, error)
	Email(ctx context.Context, session string) (dto.EmailExport, error)
	Document(ctx context.Context, session string) (dto.DocumentExport, error)
}

type serviceImpl struct {
	quotes qService.Quote
	otel   otel.Otel
}

func New(quotes qService.Quote, otel otel.Otel) Export {
	return &serviceImpl{
		quotes: quotes,
		otel:   otel,
	}
}

// Text renders the plain-text quote summary: one labeled block per line
// item, the grand total and the disclaimer.
func (s *serviceImpl) Text(ctx context.Context, session string) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Text")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.snapshot(ctx, session)
	if err != nil {
		return constant.Empty, err
	}

	var builder strings.Builder

	for _, item := range quote.Items {
		fmt.Fprintf(&builder, "Venue: %s\n", item.VenueName)
		fmt.Fprintf(&builder, "Hire type: %s\n", item.HireTypeName)
		fmt.Fprintf(&builder, "Hours: %s\n", shared.FormatHours(item.Hours))
		fmt.Fprintf(&builder, "Base cost: %s\n", shared.FormatMoney(item.BaseCost))
		fmt.Fprintf(&builder, "Equipment cost: %s\n", shared.FormatMoney(item.EquipCost))
		fmt.Fprintf(&builder, "After-hours cost: %s\n", shared.FormatMoney(item.Surcharge))
		fmt.Fprintf(&builder, "Subtotal (incl. after-hours): %s\n", shared.FormatMoney(item.Subtotal+item.Surcharge))
		fmt.Fprintf(&builder, "Total (incl. VAT): %s\n", shared.FormatMoney(item.Total))
		builder.WriteString("\n")
	}

	fmt.Fprintf(&builder, "Grand total: %s\n", shared.FormatMoney(quote.GrandTotal()))
	builder.WriteString("\n")
	builder.WriteString(Disclaimer)
	builder.WriteString("\n")

	return builder.String(), nil
}

// Email wraps the text summary as a subject and URL-escaped body pair.
// Handing the pair to the mail handler is the caller's business.
func (s *serviceImpl) Email(ctx context.Context, session string) (res dto.EmailExport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Email")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := s.Text(ctx, session)
	if err != nil {
		return res, err
	}

	return dto.EmailExport{
		Subject: EmailSubject,
		Body:    escapeMailBody(body),
	}, nil
}

// Document renders the self-contained HTML quote document.
func (s *serviceImpl) Document(ctx context.Context, session string) (res dto.DocumentExport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Document")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.snapshot(ctx, session)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer
	if err = documentTemplate.Execute(&buf, newDocumentData(quote)); err != nil {
		log.Error().Err(err).Str("session", session).Msg("failed to render quote document")

		return res, fmt.Errorf("failed to render quote document: %w", err)
	}

	return dto.DocumentExport{
		Filename: DocumentFilename,
		Content:  buf.Bytes(),
	}, nil
}

// snapshot fetches the session's quote and rejects an empty one: both
// export paths refuse to produce a blank document.
func (s *serviceImpl) snapshot(ctx context.Context, session string) (qModel.Quote, error) {
	quote, err := s.quotes.Snapshot(ctx, session)
	if err != nil {
		return quote, err
	}

	if quote.Empty() {
		return quote, failure.EmptyQuote // nolint:wrapcheck
	}

	return quote, nil
}

// escapeMailBody percent-encodes the body the way encodeURIComponent
// would, so it drops straight into a mailto link.
func escapeMailBody(body string) string {
	return strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
}
