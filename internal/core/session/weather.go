package session

import (
	"context"
	"fmt"
	"strings"

	"guardianclima.app/internal/ports"
)

// SearchWeather fetches current conditions for city. A blank city is a no-op.
// On success the result replaces the previous one and a history entry dated
// with the local clock is prepended.
func (s *Store) SearchWeather(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}

	s.mu.Lock()
	_, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return s.refuse(ctx, FlowWeather, err)
	}
	ticket, err := s.weather.Start()
	if err != nil {
		s.mu.Unlock()
		return s.refuse(ctx, FlowWeather, err)
	}
	if !s.basicAdvice.IsLoading() {
		s.basicAdvice.Reset()
	}
	if !s.outfitAdvice.IsLoading() {
		s.outfitAdvice.Reset()
	}
	epoch := s.epoch
	s.mu.Unlock()

	s.logger.Debug("Searching weather", ports.F("city", city))
	payload, err := s.backend.GetWeather(ctx, token, city)

	c := completion[*WeatherResult]{flow: FlowWeather, epoch: epoch, op: &s.weather, ticket: ticket, err: err}
	if err == nil {
		result := weatherFromPayload(payload)
		c.result = result
		c.token = payload.AccessToken
		c.onSuccess = func() {
			entry := HistoryEntry{
				City:        result.Name,
				TempC:       result.TempC,
				Description: result.Description,
				Date:        s.clock(),
			}
			s.history.Update(func(list []HistoryEntry) []HistoryEntry {
				return append([]HistoryEntry{entry}, list...)
			})
		}
	}

	if err := complete(ctx, s, c); err != nil {
		return fmt.Errorf("search weather for city %s: %w", city, err)
	}
	return nil
}

// RefreshHistory replaces the history list with the server's. The server list
// always wins over entries prepended locally.
func (s *Store) RefreshHistory(ctx context.Context) error {
	s.mu.Lock()
	_, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return s.refuse(ctx, FlowHistory, err)
	}
	ticket, err := s.history.Refresh()
	epoch := s.epoch
	s.mu.Unlock()
	if err != nil {
		return s.refuse(ctx, FlowHistory, err)
	}

	records, err := s.backend.GetHistory(ctx, token)

	c := completion[[]HistoryEntry]{flow: FlowHistory, epoch: epoch, op: &s.history, ticket: ticket, err: err}
	if err == nil {
		c.result = historyFromRecords(records)
	}
	if err := complete(ctx, s, c); err != nil {
		return fmt.Errorf("refresh history: %w", err)
	}
	return nil
}

// HideHistory empties the in-memory history list
func (s *Store) HideHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Reset()
}
