package service

import (
	"context"
	"fmt"
	"venuequote/infras/otel"
	"venuequote/internal/domains/quote/model"
	"venuequote/internal/domains/quote/model/dto"
	"venuequote/internal/domains/quote/repository"
	"venuequote/shared/constant"
	"venuequote/shared/failure"

	"github.com/rs/zerolog/log"
)

type Quote interface {
	Add(ctx context.Context, session string, items []model.LineItem) (dto.QuoteResponse, error)
	Remove(ctx context.Context, session, id string) (dto.QuoteResponse, error)
	Get(ctx context.Context, session string) (dto.QuoteResponse, error)
	Snapshot(ctx context.Context, session string) (model.Quote, error)
}

type serviceImpl struct {
	repo repository.Quote
	otel otel.Otel
}

func New(repo repository.Quote, otel otel.Otel) Quote {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Add appends priced items to the session's quote and persists the result.
func (s *serviceImpl) Add(ctx context.Context, session string, items []model.LineItem) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.load(ctx, session)
	if err != nil {
		return res, err
	}

	quote.Append(items...)

	if err = s.persist(ctx, session, quote); err != nil {
		return res, err
	}

	res.FromModel(quote)

	return res, nil
}

// Remove deletes the line item with the given id from the session's quote.
func (s *serviceImpl) Remove(ctx context.Context, session, id string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.load(ctx, session)
	if err != nil {
		return res, err
	}

	if !quote.RemoveByID(id) {
		return res, failure.NotFound("line item not found") // nolint:wrapcheck
	}

	if err = s.persist(ctx, session, quote); err != nil {
		return res, err
	}

	res.FromModel(quote)

	return res, nil
}

// Get returns the current quote and grand total.
func (s *serviceImpl) Get(ctx context.Context, session string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	quote, err := s.load(ctx, session)
	if err != nil {
		return res, err
	}

	res.FromModel(quote)

	return res, nil
}

// Snapshot returns the raw quote collection for read-only derivations.
func (s *serviceImpl) Snapshot(ctx context.Context, session string) (quote model.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.load(ctx, session)
}

// load restores the quote from its persistence slot. The slot is the single
// source of truth, so every operation reloads instead of sharing live
// memory between clients. A corrupt payload degrades to an empty quote and
// is never surfaced to the caller.
func (s *serviceImpl) load(ctx context.Context, session string) (model.Quote, error) {
	quote := model.Quote{}

	payload, found, err := s.repo.Load(ctx, session)
	if err != nil {
		log.Error().Err(err).Str("session", session).Msg("failed to load quote")

		return quote, fmt.Errorf("failed to load quote: %w", err)
	}

	if !found {
		return quote, nil
	}

	if err := quote.Decode(payload); err != nil {
		log.Warn().Err(err).Str("session", session).Msg("stored quote is corrupt, starting from an empty quote")
	}

	return quote, nil
}

func (s *serviceImpl) persist(ctx context.Context, session string, quote model.Quote) error {
	payload, err := quote.Encode()
	if err != nil {
		log.Error().Err(err).Str("session", session).Msg("failed to encode quote")

		return fmt.Errorf("failed to encode quote: %w", err)
	}

	if err := s.repo.Save(ctx, session, payload); err != nil {
		log.Error().Err(err).Str("session", session).Msg("failed to persist quote")

		return fmt.Errorf("failed to persist quote: %w", err)
	}

	return nil
}
