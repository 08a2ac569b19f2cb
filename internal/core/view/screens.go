// Package view turns a session snapshot into the model of the active screen.
// It holds no state and performs no I/O.
package view

import (
	"guardianclima.app/internal/core/plan"
	"guardianclima.app/internal/core/preferences"
	"guardianclima.app/internal/core/session"
	"guardianclima.app/pkg/validation"
)

// Screen is the render model of one view. Exactly one of the screen fields is set.
type Screen struct {
	SessionID       string                 `json:"session_id"`
	View            session.ViewName       `json:"view"`
	Landing         *LandingScreen         `json:"landing,omitempty"`
	Auth            *AuthScreen            `json:"auth,omitempty"`
	Personalization *PersonalizationScreen `json:"personalization,omitempty"`
	Main            *MainScreen            `json:"main,omitempty"`
	Pricing         *PricingScreen         `json:"pricing,omitempty"`
}

type LandingScreen struct {
	Plans []PlanCard `json:"plans"`
}

type AuthScreen struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type WizardPage struct {
	Index     int      `json:"index"`
	Total     int      `json:"total"`
	Progress  int      `json:"progress"`
	Question  string   `json:"question"`
	Title     string   `json:"title"`
	Options   []string `json:"options"`
	Selected  string   `json:"selected"`
	IsFirst   bool     `json:"is_first"`
	IsLast    bool     `json:"is_last"`
	CanSubmit bool     `json:"can_submit"`
}

type PersonalizationScreen struct {
	Username string     `json:"username"`
	Page     WizardPage `json:"page"`
	Saving   bool       `json:"saving"`
	Error    string     `json:"error,omitempty"`
}

type MainScreen struct {
	Greeting      string              `json:"greeting"`
	Plan          PlanTag             `json:"plan"`
	Searching     bool                `json:"searching"`
	SearchError   string              `json:"search_error,omitempty"`
	Weather       *WeatherCard        `json:"weather,omitempty"`
	BasicAdvice   AdvicePanel         `json:"basic_advice"`
	Outfit        OutfitPanel         `json:"outfit"`
	Travel        TravelPanel         `json:"travel"`
	History       HistoryList         `json:"history"`
	OutfitHistory []OutfitHistoryItem `json:"outfit_history"`
}

type PricingScreen struct {
	Plans   []PlanCard `json:"plans"`
	Loading bool       `json:"loading"`
	Error   string     `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Render builds the model of the screen selected by the snapshot
func Render(snap session.Snapshot, limits plan.Limits) Screen {
	screen := Screen{SessionID: snap.SessionID, View: snap.View}

	switch snap.View {
	case session.ViewAuth:
		screen.Auth = &AuthScreen{
			Loading: snap.Auth.IsLoading(),
			Error:   snap.Auth.ErrorMessage(),
			Message: snap.Auth.Result,
		}
	case session.ViewPersonalization:
		screen.Personalization = renderPersonalization(snap)
	case session.ViewMain:
		screen.Main = renderMain(snap, limits)
	case session.ViewPricing:
		screen.Pricing = &PricingScreen{
			Plans:   PlanCards(snap.User),
			Loading: snap.Upgrade.IsLoading(),
			Error:   snap.Upgrade.ErrorMessage(),
			Message: snap.Upgrade.Result,
		}
	default:
		screen.View = session.ViewLanding
		screen.Landing = &LandingScreen{Plans: PlanCards(nil)}
	}

	return screen
}

func renderPersonalization(snap session.Snapshot) *PersonalizationScreen {
	s := &PersonalizationScreen{
		Page:   NewWizardPage(snap.Wizard),
		Saving: snap.Preferences.IsLoading(),
		Error:  snap.Preferences.ErrorMessage(),
	}
	if snap.User != nil {
		s.Username = snap.User.Username
	}
	return s
}

// NewWizardPage renders a wizard position
func NewWizardPage(p preferences.Page) WizardPage {
	progress := 0
	if p.Total > 0 {
		progress = (p.Index + 1) * 100 / p.Total
	}
	return WizardPage{
		Index:     p.Index,
		Total:     p.Total,
		Progress:  progress,
		Question:  p.Question.ID,
		Title:     p.Question.Title,
		Options:   append([]string(nil), p.Question.Options...),
		Selected:  p.Selected,
		IsFirst:   p.IsFirst,
		IsLast:    p.IsLast,
		CanSubmit: p.CanSubmit,
	}
}

func renderMain(snap session.Snapshot, limits plan.Limits) *MainScreen {
	var user session.User
	if snap.User != nil {
		user = *snap.User
	}

	m := &MainScreen{
		Greeting:    "Hola, " + user.Username,
		Plan:        NewPlanTag(user.Plan),
		Searching:   snap.Weather.IsLoading(),
		SearchError: snap.Weather.ErrorMessage(),
		Weather:     NewWeatherCard(snap.Weather.Result),
		BasicAdvice: NewAdvicePanel(snap.BasicAdvice),
		History:     NewHistoryList(snap.History, user.Plan, limits),
	}

	outfit := OutfitPanel{
		AdvicePanel:   AdvicePanel{Loading: snap.OutfitAdvice.IsLoading(), Error: snap.OutfitAdvice.ErrorMessage()},
		RemainingUses: limits.RemainingOutfitUses(user.Plan, user.AIOutfitUses),
		Locked:        !limits.CanUseOutfit(user.Plan, user.AIOutfitUses),
		Images:        []string{},
		Selected:      make([]string, 0, len(snap.SelectedImages)),
	}
	if r := snap.OutfitAdvice.Result; r != nil {
		outfit.Advice = r.Advice
		for _, img := range r.Images {
			outfit.Images = append(outfit.Images, img.Name)
		}
	}
	for _, img := range snap.SelectedImages {
		outfit.Selected = append(outfit.Selected, img.Name)
	}
	m.Outfit = outfit

	m.Travel = TravelPanel{
		AdvicePanel:   NewAdvicePanel(snap.TravelAdvice),
		RemainingUses: limits.RemainingTravelUses(user.Plan, user.AITravelUses),
		Locked:        !limits.CanUseTravel(user.Plan, user.AITravelUses),
		MinDate:       validation.StartOfDay(snap.Today).Format("2006-01-02"),
	}

	m.OutfitHistory = make([]OutfitHistoryItem, 0, len(snap.OutfitHistory.Result))
	for _, o := range snap.OutfitHistory.Result {
		m.OutfitHistory = append(m.OutfitHistory, OutfitHistoryItem{City: o.City, Advice: o.Advice, Date: formatDate(o.Date)})
	}

	return m
}
