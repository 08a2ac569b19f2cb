package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"guardianclima.app/internal/core/async"
	"guardianclima.app/internal/core/plan"
	"guardianclima.app/internal/core/session"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// IconURL returns the image URL of an OpenWeatherMap icon code
func IconURL(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, code)
}

// AnimationClass maps an icon code to the animation shown with it
func AnimationClass(code string) string {
	switch {
	case strings.Contains(code, "01"):
		return "weather-icon-sun"
	case strings.Contains(code, "02"), strings.Contains(code, "03"), strings.Contains(code, "04"):
		return "weather-icon-cloud"
	case strings.Contains(code, "09"), strings.Contains(code, "10"):
		return "weather-icon-rain"
	case strings.Contains(code, "11"):
		return "weather-icon-thunder"
	case strings.Contains(code, "13"):
		return "weather-icon-snow"
	case strings.Contains(code, "50"):
		return "weather-icon-mist"
	default:
		return "weather-icon-cloud"
	}
}

// TemperatureTone buckets a temperature for colouring
func TemperatureTone(tempC float64) string {
	switch {
	case tempC < 10:
		return "cold"
	case tempC < 20:
		return "cool"
	case tempC < 30:
		return "mild"
	case tempC < 35:
		return "warm"
	default:
		return "hot"
	}
}

type PlanTag struct {
	Plan  string `json:"plan"`
	Style string `json:"style"`
}

func NewPlanTag(p plan.Plan) PlanTag {
	switch p {
	case plan.Premium:
		return PlanTag{Plan: p.String(), Style: "premium"}
	case plan.Pro:
		return PlanTag{Plan: p.String(), Style: "pro"}
	default:
		return PlanTag{Plan: plan.Free.String(), Style: "free"}
	}
}

type PlanCard struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	CTA       string   `json:"cta"`
	Popular   bool     `json:"popular"`
	IsCurrent bool     `json:"is_current"`
	Features  []string `json:"features"`
}

// PlanCards renders the catalog, flagging the plan of the current user
func PlanCards(current *session.User) []PlanCard {
	offers := plan.Catalog()
	cards := make([]PlanCard, 0, len(offers))
	for _, o := range offers {
		cta := o.CTA
		isCurrent := current != nil && current.Plan == o.Plan
		if isCurrent {
			cta = "Tu Plan Actual"
		}
		cards = append(cards, PlanCard{
			ID:        o.Plan.String(),
			Name:      o.Name,
			Price:     o.Price,
			CTA:       cta,
			Popular:   o.Popular,
			IsCurrent: isCurrent,
			Features:  o.Features,
		})
	}
	return cards
}

type WeatherCard struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	HumidityPct float64 `json:"humidity_pct"`
	Tone        string  `json:"tone"`
	IconURL     string  `json:"icon_url"`
	Animation   string  `json:"animation"`
}

func NewWeatherCard(w *session.WeatherResult) *WeatherCard {
	if w == nil {
		return nil
	}
	return &WeatherCard{
		City:        w.Name,
		Country:     w.Country,
		Description: w.Description,
		TempC:       w.TempC,
		FeelsLikeC:  w.FeelsLikeC,
		HumidityPct: w.HumidityPct,
		Tone:        TemperatureTone(w.TempC),
		IconURL:     IconURL(w.IconCode),
		Animation:   AnimationClass(w.IconCode),
	}
}

type HistoryItem struct {
	City        string `json:"city"`
	TempC       int    `json:"temp_c"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type HistoryList struct {
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
	Items   []HistoryItem `json:"items"`
	Notice  string        `json:"notice,omitempty"`
	Hidden  int           `json:"hidden"`
}

// NewHistoryList renders the history, truncating it for free users
func NewHistoryList(state async.State[[]session.HistoryEntry], p plan.Plan, limits plan.Limits) HistoryList {
	entries := state.Result
	visible := limits.VisibleHistory(p, len(entries))

	items := make([]HistoryItem, 0, visible)
	for _, e := range entries[:visible] {
		items = append(items, HistoryItem{
			City:        e.City,
			TempC:       int(math.Round(e.TempC)),
			Description: e.Description,
			Date:        formatDate(e.Date),
		})
	}

	list := HistoryList{
		Loading: state.IsLoading(),
		Error:   state.ErrorMessage(),
		Items:   items,
		Hidden:  len(entries) - visible,
	}
	if !p.IsPaid() {
		list.Notice = fmt.Sprintf("Estás viendo tus últimas %d búsquedas. ¡Hazte Premium para ver el historial completo!", limits.FreeHistoryLimit)
	}
	return list
}

type AdvicePanel struct {
	Loading bool   `json:"loading"`
	Advice  string `json:"advice,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewAdvicePanel(state async.State[string]) AdvicePanel {
	return AdvicePanel{Loading: state.IsLoading(), Advice: state.Result, Error: state.ErrorMessage()}
}

type OutfitPanel struct {
	AdvicePanel
	Images        []string `json:"images"`
	Selected      []string `json:"selected"`
	RemainingUses int      `json:"remaining_uses"`
	Locked        bool     `json:"locked"`
}

type TravelPanel struct {
	AdvicePanel
	RemainingUses int    `json:"remaining_uses"`
	Locked        bool   `json:"locked"`
	MinDate       string `json:"min_date"`
}

type OutfitHistoryItem struct {
	City   string `json:"city"`
	Advice string `json:"advice"`
	Date   string `json:"date"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
