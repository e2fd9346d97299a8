package quote

import (
	"net/http"
	"venuequote/infras/otel"
	pDto "venuequote/internal/domains/pricing/model/dto"
	pricingService "venuequote/internal/domains/pricing/service"
	quoteService "venuequote/internal/domains/quote/service"
	"venuequote/shared"
	"venuequote/shared/constant"
	"venuequote/shared/validator"
	"venuequote/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	pricing pricingService.Pricing
	quotes  quoteService.Quote
	otel    otel.Otel
}

func New(pricing pricingService.Pricing, quotes quoteService.Quote, otel otel.Otel) Handler {
	return Handler{
		pricing: pricing,
		quotes:  quotes,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quote", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetQuote)
		routerGroup.Post("/items", handler.AddItems)
		routerGroup.Delete("/items/{id}", handler.RemoveItem)
	})
}

// AddItems prices a booking request and appends the resulting line items
// to the session's quote.
// @Summary Add a booking to the quote
// @Description Price a venue booking (one line item per selected day) and append it to the running quote.
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body pDto.AddBookingRequest true "Booking Request"
// @Success 201 {object} response.Data[qDto.QuoteResponse] "Updated quote"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quote/items [post]
func (handler *Handler) AddItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItems")
	defer scope.End()

	req := pDto.AddBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking request")

		response.WithError(writer, err)

		return
	}

	items, err := handler.pricing.Price(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to price booking")

		response.WithError(writer, err)

		return
	}

	session := shared.QuoteSession(ctx)

	quote, err := handler.quotes.Add(ctx, session, items)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add line items to quote")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Line items added to quote for session " + session)

	response.WithJSON(writer, http.StatusCreated, quote)
}

// GetQuote returns the current quote with its grand total.
// @Summary Get the current quote
// @Description Retrieve the ordered line items and grand total of the session's quote.
// @Tags Quote
// @Produce json
// @Success 200 {object} response.Data[qDto.QuoteResponse] "Current quote"
// @Failure 500 {object} response.Error
// @Router /v1/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	session := shared.QuoteSession(ctx)

	quote, err := handler.quotes.Get(ctx, session)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quote")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote retrieved for session " + session)

	response.WithJSON(w, http.StatusOK, quote)
}

// RemoveItem removes one line item by id.
// @Summary Remove a line item
// @Description Remove the line item with the given id from the session's quote.
// @Tags Quote
// @Produce json
// @Param id path string true "Line Item ID"
// @Success 200 {object} response.Data[qDto.QuoteResponse] "Updated quote"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quote/items/{id} [delete]
func (handler *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	session := shared.QuoteSession(ctx)

	quote, err := handler.quotes.Remove(ctx, session, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to remove line item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Line item removed from quote for session " + session)

	response.WithJSON(w, http.StatusOK, quote)
}
