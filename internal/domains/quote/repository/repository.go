package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"venuequote/infras/otel"
	"venuequote/internal/domains/quote/model"
	"venuequote/shared"
	"venuequote/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelSlotAttribute = "quote.slot"
)

// Quote persists the serialized quote in a single named slot per session.
// The slot is durable: written after every mutation, no expiry.
type Quote interface {
	Save(ctx context.Context, slot, payload string) error
	Load(ctx context.Context, slot string) (payload string, found bool, err error)
}

type repositoryImpl struct {
	client *goRedis.Client
	otel   otel.Otel
}

func New(client *goRedis.Client, otel otel.Otel) Quote {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (repo *repositoryImpl) Save(ctx context.Context, slot, payload string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelSlotAttribute, slot)

	key := shared.BuildCacheKey(model.SlotKeyPrefix, slot)

	if err = repo.client.Set(ctx, key, payload, 0).Err(); err != nil {
		log.Error().Err(err).Str("slot", slot).Msg("failed to persist quote slot")

		return fmt.Errorf("failed to persist quote slot: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Load(ctx context.Context, slot string) (payload string, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelSlotAttribute, slot)

	key := shared.BuildCacheKey(model.SlotKeyPrefix, slot)

	payload, err = repo.client.Get(ctx, key).Result()
	if err != nil {
		// An absent slot means nothing to restore, not an error.
		if errors.Is(err, goRedis.Nil) {
			return constant.Empty, false, nil
		}

		log.Error().Err(err).Str("slot", slot).Msg("failed to load quote slot")

		return constant.Empty, false, fmt.Errorf("failed to load quote slot: %w", err)
	}

	return payload, true, nil
}
