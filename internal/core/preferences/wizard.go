// Package preferences implements the personalization questionnaire shown to
// users who have not saved their preferences yet.
package preferences

import (
	"fmt"

	"guardianclima.app/pkg/errors"
)

// Wizard is a linear, paginated form. Answers live only in memory until
// Submit hands them over; nothing is persisted between passes.
type Wizard struct {
	questions []Question
	page      int
	answers   map[string]string
	submitted bool
}

// Page describes the wizard position for rendering
type Page struct {
	Index     int
	Total     int
	Question  Question
	Selected  string
	IsFirst   bool
	IsLast    bool
	CanSubmit bool
}

func NewWizard() *Wizard {
	questions := Questions()
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answers[q.ID] = q.Default
	}
	return &Wizard{questions: questions, answers: answers}
}

// Next advances one page. It is a no-op on the last page.
func (w *Wizard) Next() {
	if w.page < len(w.questions)-1 {
		w.page++
		w.submitted = false
	}
}

// Previous goes back one page. It is a no-op on the first page.
func (w *Wizard) Previous() {
	if w.page > 0 {
		w.page--
		w.submitted = false
	}
}

// SelectAnswer overwrites the answer of a question
func (w *Wizard) SelectAnswer(questionID, option string) error {
	for _, q := range w.questions {
		if q.ID != questionID {
			continue
		}
		if !q.HasOption(option) {
			return errors.NewValidationError(fmt.Sprintf("invalid option %q for %s", option, questionID))
		}
		w.answers[questionID] = option
		return nil
	}
	return errors.NewValidationError(fmt.Sprintf("unknown question %q", questionID))
}

// Submit returns the full answer set. It is only available on the last page
// and only once per pass through the pages.
func (w *Wizard) Submit() (map[string]string, error) {
	if w.page != len(w.questions)-1 {
		return nil, errors.NewValidationError("preferences can only be submitted from the last question")
	}
	if w.submitted {
		return nil, errors.NewValidationError("preferences were already submitted")
	}
	w.submitted = true
	return w.Answers(), nil
}

// Release re-arms Submit after a delivery attempt failed
func (w *Wizard) Release() {
	w.submitted = false
}

// Answers returns a copy of the current answers
func (w *Wizard) Answers() map[string]string {
	out := make(map[string]string, len(w.answers))
	for k, v := range w.answers {
		out[k] = v
	}
	return out
}

func (w *Wizard) Current() Page {
	q := w.questions[w.page]
	last := w.page == len(w.questions)-1
	return Page{
		Index:     w.page,
		Total:     len(w.questions),
		Question:  q,
		Selected:  w.answers[q.ID],
		IsFirst:   w.page == 0,
		IsLast:    last,
		CanSubmit: last && !w.submitted,
	}
}
