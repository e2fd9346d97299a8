package export

import (
	"net/http"
	"venuequote/infras/otel"
	exportService "venuequote/internal/domains/export/service"
	"venuequote/shared"
	"venuequote/shared/constant"
	"venuequote/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service exportService.Export
	otel    otel.Otel
}

func New(service exportService.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quote/export", func(routerGroup chi.Router) {
		routerGroup.Get("/email", handler.EmailExport)
		routerGroup.Get("/document", handler.DocumentExport)
	})
}

// EmailExport returns the subject/body pair for the mail composition sink.
// @Summary Export the quote for email
// @Description Produce the mail subject and URL-escaped plain-text body for the current quote.
// @Tags Export
// @Produce json
// @Success 200 {object} response.Data[dto.EmailExport] "Mail subject and body"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quote/export/email [get]
func (handler *Handler) EmailExport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EmailExport")
	defer scope.End()

	session := shared.QuoteSession(ctx)

	email, err := handler.service.Email(ctx, session)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build email export")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Email export built for session " + session)

	response.WithJSON(w, http.StatusOK, email)
}

// DocumentExport returns the self-contained HTML quote document.
// @Summary Export the quote document
// @Description Produce the downloadable HTML quote document for the current quote.
// @Tags Export
// @Produce html
// @Success 200 {string} string "Quote document"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quote/export/document [get]
func (handler *Handler) DocumentExport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DocumentExport")
	defer scope.End()

	session := shared.QuoteSession(ctx)

	document, err := handler.service.Document(ctx, session)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build document export")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document export built for session " + session)

	response.WithDocument(w, document.Filename, document.Content)
}
