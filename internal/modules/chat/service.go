// README: Chat orchestration: classify, track context, augment, prompt, generate, persist.
package chat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sofia/internal/ai"
	"sofia/internal/maps"
	"sofia/internal/modules/intent"
	"sofia/internal/modules/session"
	"sofia/internal/modules/stats"
	"sofia/internal/travel"
)

const historyLimit = 10

// WeatherProvider supplies current conditions for a destination.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, location string) (*travel.WeatherData, error)
}

// CountryProvider supplies country facts for a destination.
type CountryProvider interface {
	Lookup(ctx context.Context, name string) (*travel.CountryInfo, error)
}

// SightsProvider supplies well-rated attractions for a destination.
type SightsProvider interface {
	TopSights(ctx context.Context, destination string, limit int) ([]maps.Place, error)
}

// Deps bundles the collaborators of the chat service. Weather, Country, and
// Sights are optional: a nil provider disables that augmentation. History is
// optional too; without it prompts carry no conversation history.
type Deps struct {
	Classifier *intent.Classifier
	Sessions   *session.Service
	LLM        ai.LLMProvider
	Weather    WeatherProvider
	Country    CountryProvider
	Sights     SightsProvider
	History    HistoryStore
	Stats      *stats.Recorder
	Logger     *zap.Logger
}

// Service turns one user message into an assistant reply.
type Service struct {
	classifier *intent.Classifier
	sessions   *session.Service
	llm        ai.LLMProvider
	weather    WeatherProvider
	country    CountryProvider
	sights     SightsProvider
	history    HistoryStore
	stats      *stats.Recorder
	log        *zap.Logger
}

// NewService wires a chat service from its collaborators.
func NewService(deps Deps) *Service {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		classifier: deps.Classifier,
		sessions:   deps.Sessions,
		llm:        deps.LLM,
		weather:    deps.Weather,
		country:    deps.Country,
		sights:     deps.Sights,
		history:    deps.History,
		stats:      deps.Stats,
		log:        log,
	}
}

// ProcessMessage runs the full pipeline for one user turn. It returns an
// error only when the session layer fails; LLM and augmentation failures
// degrade to fallback or missing data instead.
func (s *Service) ProcessMessage(ctx context.Context, sessionID, text string) (*Reply, error) {
	start := time.Now()

	result := s.classifier.Classify(text)
	ents := session.Extract(text)

	sess, err := s.sessions.Touch(ctx, sessionID, result.Category, ents, text)
	if err != nil {
		return nil, fmt.Errorf("session update: %w", err)
	}

	externalData := s.augment(ctx, result.Category, sess.CurrentDestination)
	history := s.recentHistory(ctx, sess.ID)

	prompt := BuildPrompt(sess, result.Category, history, externalData, text, time.Now())

	reply := &Reply{
		Category:         result.Category,
		Confidence:       result.Confidence,
		Session:          sess,
		ExternalDataUsed: externalData != "",
	}

	replyText, err := s.llm.GenerateReply(ctx, prompt)
	if err != nil {
		s.log.Warn("llm generation failed, serving fallback",
			zap.String("session_id", sess.ID), zap.Error(err))
		replyText = fallbackFor(result.Category)
		reply.Fallback = true
	}
	reply.Text = replyText

	s.persist(ctx, sess.ID, text, replyText)
	if s.stats != nil {
		s.stats.Record(string(result.Category), time.Since(start), reply.Fallback)
	}
	return reply, nil
}

// augment fetches external data relevant to the category. Failures are
// logged and skipped; augmentation never blocks a reply.
func (s *Service) augment(ctx context.Context, category intent.Category, destination string) string {
	if destination == "" {
		return ""
	}

	switch category {
	case intent.WeatherCheck, intent.PackingHelp:
		if s.weather == nil {
			return ""
		}
		data, err := s.weather.CurrentWeather(ctx, destination)
		if err != nil {
			s.log.Warn("weather lookup failed", zap.String("destination", destination), zap.Error(err))
			return ""
		}
		return fmt.Sprintf("Current weather in %s: %.0f°C, %s, humidity %d%%, wind %.1f m/s.",
			data.Location, data.Temperature, data.Description, data.Humidity, data.WindSpeed)

	case intent.CulturalInfo, intent.PracticalAdvice:
		if s.country == nil {
			return ""
		}
		info, err := s.country.Lookup(ctx, destination)
		if err != nil {
			s.log.Debug("country lookup failed", zap.String("destination", destination), zap.Error(err))
			return ""
		}
		return fmt.Sprintf("Country facts for %s: capital %s, region %s, population %d, currencies %v, languages %v.",
			info.Name, info.Capital, info.Region, info.Population, info.Currencies, info.Languages)

	case intent.ActivityRequest:
		if s.sights == nil {
			return ""
		}
		places, err := s.sights.TopSights(ctx, destination, 3)
		if err != nil {
			s.log.Warn("places lookup failed", zap.String("destination", destination), zap.Error(err))
			return ""
		}
		if formatted := maps.FormatSights(places); formatted != "" {
			return fmt.Sprintf("Well-rated sights in %s:\n%s", destination, formatted)
		}
	}
	return ""
}

func (s *Service) recentHistory(ctx context.Context, sessionID string) []Message {
	if s.history == nil {
		return nil
	}
	msgs, err := s.history.Recent(ctx, sessionID, historyLimit)
	if err != nil {
		s.log.Warn("history read failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil
	}
	return msgs
}

func (s *Service) persist(ctx context.Context, sessionID, userText, replyText string) {
	if s.history == nil {
		return
	}
	now := time.Now().UTC()
	for _, msg := range []Message{
		{SessionID: sessionID, Role: RoleUser, Content: userText, CreatedAt: now},
		{SessionID: sessionID, Role: RoleAssistant, Content: replyText, CreatedAt: now.Add(time.Millisecond)},
	} {
		if err := s.history.Append(ctx, msg); err != nil {
			s.log.Warn("history write failed", zap.String("session_id", sessionID), zap.Error(err))
			return
		}
	}
}
