package session

import (
	"context"
	"fmt"

	"guardianclima.app/internal/core/preferences"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// WizardNext moves the personalization wizard forward
func (s *Store) WizardNext() (preferences.Page, error) {
	return s.withWizard(func(w *preferences.Wizard) error {
		w.Next()
		return nil
	})
}

// WizardPrevious moves the personalization wizard back
func (s *Store) WizardPrevious() (preferences.Page, error) {
	return s.withWizard(func(w *preferences.Wizard) error {
		w.Previous()
		return nil
	})
}

// WizardSelect answers one question of the wizard
func (s *Store) WizardSelect(questionID, option string) (preferences.Page, error) {
	return s.withWizard(func(w *preferences.Wizard) error {
		return w.SelectAnswer(questionID, option)
	})
}

func (s *Store) withWizard(fn func(w *preferences.Wizard) error) (preferences.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, _, err := s.requireUserLocked(); err != nil {
		return preferences.Page{}, err
	}
	if err := fn(s.wizard); err != nil {
		return s.wizard.Current(), err
	}
	return s.wizard.Current(), nil
}

// SubmitPreferences sends the wizard answers. On success the user is marked
// as having saved preferences, the wizard starts over and the router leaves
// personalization.
func (s *Store) SubmitPreferences(ctx context.Context) error {
	s.mu.Lock()
	_, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return s.refuse(ctx, FlowPreferences, err)
	}
	if s.prefs.IsLoading() {
		s.mu.Unlock()
		return s.refuse(ctx, FlowPreferences, errors.NewBusyError("preferences are already being saved"))
	}
	answers, err := s.wizard.Submit()
	if err != nil {
		s.mu.Unlock()
		return s.refuse(ctx, FlowPreferences, err)
	}
	wizard := s.wizard
	ticket, _ := s.prefs.Start()
	epoch := s.epoch
	s.mu.Unlock()

	resp, err := s.backend.SavePreferences(ctx, token, answers)

	c := completion[string]{
		flow:   FlowPreferences,
		epoch:  epoch,
		op:     &s.prefs,
		ticket: ticket,
		err:    err,
		always: func(err error) {
			if err != nil {
				wizard.Release()
			}
		},
	}
	if err == nil {
		c.result = resp.Message
		c.token = resp.AccessToken
		c.onSuccess = func() {
			if resp.AccessToken == "" && s.user != nil {
				u := *s.user
				u.PrefsSaved = true
				s.user = &u
			}
			s.wizard = preferences.NewWizard()
			s.requested = ""
		}
	}
	if err := complete(ctx, s, c); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	s.logger.Info("Preferences saved", ports.F("view", s.View()))
	return nil
}
