package rates

import (
	"encoding/json"
	"os"
	"venuequote/config"
	"venuequote/internal/domains/pricing/model"

	"github.com/rs/zerolog/log"
)

// New loads the pricing rates document. A missing or malformed document is
// fatal: no pricing operation may run with partial configuration.
func New(config *config.Config) *model.Rates {
	path := config.Pricing.RatesPath
	if path == "" {
		log.Fatal().Msg("No pricing rates path configured")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to read pricing rates document")
	}

	loaded := model.Rates{}
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to parse pricing rates document")
	}

	if len(loaded.VenueRates) == 0 {
		log.Fatal().Str("path", path).Msg("Pricing rates document has no venue rates")
	}

	log.Info().
		Str("path", path).
		Int("venues", len(loaded.VenueRates)).
		Int("equipment", len(loaded.EquipmentRates)).
		Float64("vat_rate", loaded.VATRate).
		Msg("Pricing rates loaded")

	return &loaded
}
