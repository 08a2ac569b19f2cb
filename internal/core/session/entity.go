package session

import (
	"fmt"
	"strings"
	"time"

	"guardianclima.app/internal/core/plan"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
	"guardianclima.app/pkg/validation"
)

// ViewName is the closed set of screens the session can show
type ViewName string

const (
	ViewLanding         ViewName = "landing"
	ViewAuth            ViewName = "auth"
	ViewPersonalization ViewName = "personalization"
	ViewMain            ViewName = "main"
	ViewPricing         ViewName = "pricing"
)

// ParseViewName converts a string into a ViewName
func ParseViewName(s string) (ViewName, error) {
	switch v := ViewName(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewLanding, ViewAuth, ViewPersonalization, ViewMain, ViewPricing:
		return v, nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("unknown view %q", s))
	}
}

// User is derived exclusively from the claims of the current token
type User struct {
	ID           string
	Username     string
	Plan         plan.Plan
	PrefsSaved   bool
	AIOutfitUses int
	AITravelUses int
}

// UserFromClaims builds a User, rejecting incomplete claims
func UserFromClaims(c *ports.Claims) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("claims are missing")
	}
	if strings.TrimSpace(c.Subject) == "" {
		return nil, fmt.Errorf("subject claim is empty")
	}
	if strings.TrimSpace(c.Username) == "" {
		return nil, fmt.Errorf("username claim is empty")
	}
	p, ok := plan.Parse(c.Plan)
	if !ok {
		return nil, fmt.Errorf("unknown plan %q", c.Plan)
	}
	if c.AIOutfitUses < 0 || c.AITravelUses < 0 {
		return nil, fmt.Errorf("usage counters cannot be negative")
	}
	return &User{
		ID:           c.Subject,
		Username:     c.Username,
		Plan:         p,
		PrefsSaved:   c.PrefsSaved,
		AIOutfitUses: c.AIOutfitUses,
		AITravelUses: c.AITravelUses,
	}, nil
}

// WeatherResult holds current conditions for the searched city
type WeatherResult struct {
	Name        string
	Country     string
	Description string
	TempC       float64
	FeelsLikeC  float64
	HumidityPct float64
	IconCode    string
}

// HistoryEntry is one past search
type HistoryEntry struct {
	City        string
	TempC       float64
	Description string
	Date        time.Time
}

// OutfitResult is the outfit advice together with the images that produced it
type OutfitResult struct {
	Advice string
	Images []ports.ImageFile
}

// OutfitHistoryEntry is one past outfit advice
type OutfitHistoryEntry struct {
	City   string
	Advice string
	Date   time.Time
}

// TravelRequest represents a travel packing advice request. Dates use YYYY-MM-DD.
type TravelRequest struct {
	Destination string
	StartDate   string
	EndDate     string
}

// Validate enforces endDate >= startDate >= today in the location of now
func (r *TravelRequest) Validate(now time.Time) error {
	r.Destination = strings.TrimSpace(r.Destination)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)

	if r.Destination == "" || r.StartDate == "" || r.EndDate == "" {
		return errors.NewValidationError("Por favor, completa todos los campos (destino, fecha de inicio y fecha de fin).")
	}

	start, ok := validation.ParseDate(r.StartDate, now.Location())
	if !ok {
		return errors.NewValidationError("La fecha de inicio no es válida.")
	}
	end, ok := validation.ParseDate(r.EndDate, now.Location())
	if !ok {
		return errors.NewValidationError("La fecha de fin no es válida.")
	}
	if start.Before(validation.StartOfDay(now)) {
		return errors.NewValidationError("La fecha de inicio no puede ser anterior a hoy.")
	}
	if end.Before(start) {
		return errors.NewValidationError("La fecha de fin no puede ser anterior a la de inicio.")
	}
	return nil
}

func weatherFromPayload(p *ports.WeatherPayload) *WeatherResult {
	return &WeatherResult{
		Name:        p.Name,
		Country:     p.Country,
		Description: p.Description,
		TempC:       p.TempC,
		FeelsLikeC:  p.FeelsLikeC,
		HumidityPct: p.HumidityPct,
		IconCode:    p.IconCode,
	}
}

func historyFromRecords(records []ports.HistoryRecord) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, HistoryEntry{
			City:        r.City,
			TempC:       r.TempC,
			Description: r.Description,
			Date:        r.Date,
		})
	}
	return entries
}

func outfitHistoryFromRecords(records []ports.OutfitRecord) []OutfitHistoryEntry {
	entries := make([]OutfitHistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, OutfitHistoryEntry{City: r.City, Advice: r.Advice, Date: r.Date})
	}
	return entries
}
