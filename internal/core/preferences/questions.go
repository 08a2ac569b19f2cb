package preferences

// Question is one page of the wizard. ID is the field name the backend expects.
type Question struct {
	ID      string
	Title   string
	Options []string
	Default string
}

// HasOption reports whether option is one of the allowed answers
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Questions returns the wizard pages in order
func Questions() []Question {
	return []Question{
		{
			ID:      "estilo",
			Title:   "¿Cuál es tu estilo principal?",
			Options: []string{"Casual", "Deportivo", "Elegante", "Minimalista"},
			Default: "Casual",
		},
		{
			ID:      "actividad",
			Title:   "¿Cuál suele ser tu actividad del día?",
			Options: []string{"Oficina", "Estudiante", "Trabajo Remoto", "Actividades al Aire Libre"},
			Default: "Oficina",
		},
		{
			ID:      "sensibilidad",
			Title:   "¿Cómo te llevas con el frío?",
			Options: []string{"Baja", "Normal", "Alta"},
			Default: "Normal",
		},
		{
			ID:      "colores_preferidos",
			Title:   "¿Qué colores prefieres vestir?",
			Options: []string{"Neutros", "Vivos", "Pasteles", "Oscuros"},
			Default: "Neutros",
		},
		{
			ID:      "preferencia_clima",
			Title:   "¿Qué clima disfrutas más?",
			Options: []string{"Templado", "Cálido", "Frío"},
			Default: "Templado",
		},
		{
			ID:      "frecuencia_viajes",
			Title:   "¿Con qué frecuencia viajas?",
			Options: []string{"Nunca", "Ocasional", "Frecuente"},
			Default: "Ocasional",
		},
	}
}
