package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

// defaultHero is served when the hero block has never been saved, so a fresh
// deployment renders a complete landing page.
var defaultHero = json.RawMessage(`{
	"badgeText": "TRUSTED BY 200+ FAMILIES",
	"heading": "Find Your Perfect Property in",
	"location": "Ranchi",
	"subheading": "Premium residential plots, agricultural land, and commercial properties. Your trusted partner in real estate since 2014.",
	"stat1Value": "50+",
	"stat1Label": "Properties Listed",
	"stat2Value": "200+",
	"stat2Label": "Happy Clients",
	"stat3Value": "10+",
	"stat3Label": "Years Experience",
	"stat4Value": "100%",
	"stat4Label": "Legal Verified"
}`)

// SettingsService implements the site-content use cases.
type SettingsService struct {
	repo   ports.SettingRepository
	logger zerolog.Logger
}

func NewSettingsService(repo ports.SettingRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

func (s *SettingsService) All(ctx context.Context) (map[string]json.RawMessage, error) {
	settings, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]json.RawMessage, len(settings)+1)
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	if _, ok := values["hero"]; !ok {
		values["hero"] = defaultHero
	}
	return values, nil
}

func (s *SettingsService) Update(ctx context.Context, values map[string]json.RawMessage) error {
	for key, value := range values {
		if err := s.repo.Upsert(ctx, key, value); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("failed to upsert setting")
			return err
		}
	}
	s.logger.Info().Int("keys", len(values)).Msg("settings updated")
	return nil
}
