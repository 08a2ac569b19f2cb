package plan

import "strings"

// Plan represents a subscription tier
type Plan string

const (
	Free    Plan = "free"
	Premium Plan = "premium"
	Pro     Plan = "pro"
)

// Parse converts a claim value into a Plan. Unknown values are rejected.
func Parse(s string) (Plan, bool) {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case Free:
		return Free, true
	case Premium:
		return Premium, true
	case Pro:
		return Pro, true
	default:
		return "", false
	}
}

func (p Plan) String() string {
	return string(p)
}

// IsPaid reports whether the plan lifts the free allowances
func (p Plan) IsPaid() bool {
	return p == Premium || p == Pro
}

// IsUpgradeTarget reports whether a user may switch to p through the upgrade endpoint
func IsUpgradeTarget(p Plan) bool {
	return p.IsPaid()
}

// Offer is one card of the pricing table
type Offer struct {
	Plan     Plan
	Name     string
	Price    string
	CTA      string
	Popular  bool
	Features []string
}

// Catalog returns the plans in display order
func Catalog() []Offer {
	return []Offer{
		{
			Plan:  Free,
			Name:  "Plan Gratuito",
			Price: "$0",
			CTA:   "Comenzar",
			Features: []string{
				"Clima actual y pronóstico",
				"Consejo de IA básico del día",
				"Historial de 5 consultas",
				"3 consejos de vestimenta con IA",
				"1 uso del asistente de viaje",
			},
		},
		{
			Plan:    Premium,
			Name:    "Plan Premium",
			Price:   "$2.99",
			CTA:     "Actualizar Ahora",
			Popular: true,
			Features: []string{
				"Todo lo del plan gratuito",
				"Sin anuncios",
				"Historial Ilimitado",
				"Consejo de vestimenta ilimitado",
				"Asistente de Viaje IA",
			},
		},
		{
			Plan:  Pro,
			Name:  "Plan Pro",
			Price: "$4.99",
			CTA:   "Volverse Pro",
			Features: []string{
				"Todo lo del plan Premium",
				"Asistente de viaje sin límites",
				"Análisis de outfit por imágenes",
			},
		},
	}
}
