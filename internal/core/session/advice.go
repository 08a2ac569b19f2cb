package session

import (
	"context"
	"fmt"
	"strings"

	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

const maxOutfitImages = 5

// RequestBasicAdvice asks for the clothing tip of the city currently shown.
// It is gated by authentication only.
func (s *Store) RequestBasicAdvice(ctx context.Context) (string, error) {
	s.mu.Lock()
	_, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return "", s.refuse(ctx, FlowBasicAdvice, err)
	}
	current := s.weather.Result()
	if current == nil || current.Name == "" {
		s.mu.Unlock()
		return "", s.refuse(ctx, FlowBasicAdvice, errors.NewValidationError("Busca una ciudad antes de pedir un consejo."))
	}
	city := current.Name
	ticket, err := s.basicAdvice.Start()
	epoch := s.epoch
	s.mu.Unlock()
	if err != nil {
		return "", s.refuse(ctx, FlowBasicAdvice, err)
	}

	resp, err := s.backend.GetBasicAdvice(ctx, token, city)

	c := completion[string]{flow: FlowBasicAdvice, epoch: epoch, op: &s.basicAdvice, ticket: ticket, err: err}
	if err == nil {
		c.result = resp.Advice
		c.token = resp.AccessToken
	}
	if err := complete(ctx, s, c); err != nil {
		return "", fmt.Errorf("basic advice for city %s: %w", city, err)
	}
	return resp.Advice, nil
}

// SelectOutfitImages replaces the garment photos selected for the next outfit request
func (s *Store) SelectOutfitImages(images []ports.ImageFile) error {
	if len(images) > maxOutfitImages {
		return errors.NewValidationError(fmt.Sprintf("Puedes subir como máximo %d imágenes.", maxOutfitImages))
	}
	for _, img := range images {
		if len(img.Data) == 0 {
			return errors.NewValidationError(fmt.Sprintf("La imagen %q está vacía.", img.Name))
		}
		if !strings.HasPrefix(img.ContentType, "image/") {
			return errors.NewValidationError(fmt.Sprintf("El archivo %q no es una imagen.", img.Name))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, _, err := s.requireUserLocked(); err != nil {
		return err
	}
	s.selectedImages = append([]ports.ImageFile(nil), images...)
	return nil
}

// RequestOutfitAdvice sends the selected images with a city, falling back to
// the city currently shown. The selection is cleared whatever the outcome.
func (s *Store) RequestOutfitAdvice(ctx context.Context, city string) (*OutfitResult, error) {
	s.mu.Lock()
	user, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, s.refuse(ctx, FlowOutfitAdvice, err)
	}
	if !s.limits.CanUseOutfit(user.Plan, user.AIOutfitUses) {
		s.mu.Unlock()
		return nil, s.refuse(ctx, FlowOutfitAdvice, errors.NewPlanLimitError(fmt.Sprintf(
			"Has alcanzado el límite de %d usos para el consejo de vestimenta. Actualiza a Pro para usos ilimitados.",
			s.limits.FreeOutfitUses)))
	}
	if len(s.selectedImages) == 0 {
		s.mu.Unlock()
		return nil, s.refuse(ctx, FlowOutfitAdvice, errors.NewValidationError("Por favor, selecciona al menos una imagen."))
	}
	city = strings.TrimSpace(city)
	if city == "" {
		if current := s.weather.Result(); current != nil {
			city = current.Name
		}
	}
	if city == "" {
		s.mu.Unlock()
		return nil, s.refuse(ctx, FlowOutfitAdvice, errors.NewValidationError("Por favor, busca una ciudad primero para obtener el clima actual."))
	}
	ticket, err := s.outfitAdvice.Start()
	if err != nil {
		s.mu.Unlock()
		return nil, s.refuse(ctx, FlowOutfitAdvice, err)
	}
	images := s.selectedImages
	epoch := s.epoch
	s.mu.Unlock()

	s.logger.Debug("Requesting outfit advice", ports.F("city", city), ports.F("images", len(images)))
	resp, err := s.backend.GetOutfitAdvice(ctx, token, ports.OutfitAdviceParams{City: city, Images: images})

	c := completion[*OutfitResult]{
		flow:   FlowOutfitAdvice,
		epoch:  epoch,
		op:     &s.outfitAdvice,
		ticket: ticket,
		err:    err,
		always: func(error) { s.selectedImages = nil },
	}
	var result *OutfitResult
	if err == nil {
		result = &OutfitResult{Advice: resp.Advice, Images: images}
		c.result = result
		c.token = resp.AccessToken
	}
	if err := complete(ctx, s, c); err != nil {
		return nil, fmt.Errorf("outfit advice for city %s: %w", city, err)
	}
	return result, nil
}

// RequestTravelAdvice asks for a packing list for a trip
func (s *Store) RequestTravelAdvice(ctx context.Context, req TravelRequest) (string, error) {
	s.mu.Lock()
	user, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return "", s.refuse(ctx, FlowTravelAdvice, err)
	}
	if !s.limits.CanUseTravel(user.Plan, user.AITravelUses) {
		s.mu.Unlock()
		return "", s.refuse(ctx, FlowTravelAdvice, errors.NewPlanLimitError(fmt.Sprintf(
			"Has alcanzado el límite de %d uso para el asistente de viaje. Actualiza a Pro para usos ilimitados.",
			s.limits.FreeTravelUses)))
	}
	if err := req.Validate(s.clock()); err != nil {
		s.mu.Unlock()
		return "", s.refuse(ctx, FlowTravelAdvice, err)
	}
	ticket, err := s.travelAdvice.Start()
	epoch := s.epoch
	s.mu.Unlock()
	if err != nil {
		return "", s.refuse(ctx, FlowTravelAdvice, err)
	}

	resp, err := s.backend.GetTravelAdvice(ctx, token, ports.TravelAdviceParams{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})

	c := completion[string]{flow: FlowTravelAdvice, epoch: epoch, op: &s.travelAdvice, ticket: ticket, err: err}
	if err == nil {
		c.result = resp.Advice
		c.token = resp.AccessToken
	}
	if err := complete(ctx, s, c); err != nil {
		return "", fmt.Errorf("travel advice for %s: %w", req.Destination, err)
	}
	return resp.Advice, nil
}

// RefreshOutfitHistory loads the outfit advice history of the user
func (s *Store) RefreshOutfitHistory(ctx context.Context) error {
	s.mu.Lock()
	_, token, err := s.requireUserLocked()
	if err != nil {
		s.mu.Unlock()
		return s.refuse(ctx, FlowOutfitHistory, err)
	}
	ticket, err := s.outfitHistory.Refresh()
	epoch := s.epoch
	s.mu.Unlock()
	if err != nil {
		return s.refuse(ctx, FlowOutfitHistory, err)
	}

	records, err := s.backend.GetOutfitHistory(ctx, token)

	c := completion[[]OutfitHistoryEntry]{flow: FlowOutfitHistory, epoch: epoch, op: &s.outfitHistory, ticket: ticket, err: err}
	if err == nil {
		c.result = outfitHistoryFromRecords(records)
	}
	if err := complete(ctx, s, c); err != nil {
		return fmt.Errorf("refresh outfit history: %w", err)
	}
	return nil
}
