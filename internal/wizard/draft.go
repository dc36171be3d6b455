package wizard

import (
	"github.com/jonathan/placement-portal/internal/types"
)

// Field setters and list editing for the in-progress draft. None of these
// validate: empty names and questions are permitted, and everything is only
// interpreted at publish. Edits are accepted at any step; the UI simply never
// shows most of them outside their own step.

// SelectCompany records the chosen company id, or NewCompanyID for the
// add-new placeholder. Selecting satisfies the step-0 gate.
func (w *Wizard) SelectCompany(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.companyID = id
}

// SetNewCompanyName records the name typed for a to-be-created company.
func (w *Wizard) SetNewCompanyName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.newCompanyName = name
}

// SetRole records the role applied for.
func (w *Wizard) SetRole(role string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.role = role
}

// SetYear records the placement year.
func (w *Wizard) SetYear(year int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.year = year
}

// SetOADetails replaces the online-assessment details.
func (w *Wizard) SetOADetails(oa types.OARound) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.oaDetails = oa
}

// SetShortlisted records whether the candidate advanced past the OA. Toggling
// does not clear previously entered rounds; the constructor drops them at
// publish when shortlisted is false.
func (w *Wizard) SetShortlisted(shortlisted bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shortlisted = shortlisted
}

// SetSummary overwrites the draft summary. The generated text on the final
// step is editable through this before publishing.
func (w *Wizard) SetSummary(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.summaryText = text
}

// SetAnonymous records whether the author's name is hidden on display.
func (w *Wizard) SetAnonymous(anonymous bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.isAnonymous = anonymous
}

// SetDifficultyRating records the overall 1-5 difficulty rating.
func (w *Wizard) SetDifficultyRating(rating int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rating = rating
}

// SetTags replaces the free-text tag list.
func (w *Wizard) SetTags(tags []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tags = tags
}

// AddRound appends a new interview round with the defaults the form starts
// from and returns its index.
func (w *Wizard) AddRound() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.rounds = append(w.rounds, types.InterviewRound{
		ID:         types.NewID(),
		Type:       types.RoundTechnical,
		Questions:  []string{},
		Difficulty: types.DifficultyMedium,
		Duration:   "45 mins",
	})
	return len(w.rounds) - 1
}

// RemoveRound deletes the round at index, preserving order. Out-of-range
// indexes are ignored.
func (w *Wizard) RemoveRound(index int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.rounds) {
		return
	}
	w.rounds = append(w.rounds[:index], w.rounds[index+1:]...)
}

// UpdateRound replaces the round at index, keeping its id. Out-of-range
// indexes are ignored.
func (w *Wizard) UpdateRound(index int, round types.InterviewRound) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.rounds) {
		return
	}
	round.ID = w.rounds[index].ID
	w.rounds[index] = round
}

// AddResource appends an empty platform resource and returns its index.
func (w *Wizard) AddResource() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.resources = append(w.resources, types.Resource{Type: types.ResourcePlatform})
	return len(w.resources) - 1
}

// RemoveResource deletes the resource at index, preserving order.
// Out-of-range indexes are ignored.
func (w *Wizard) RemoveResource(index int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.resources) {
		return
	}
	w.resources = append(w.resources[:index], w.resources[index+1:]...)
}

// UpdateResource replaces the resource at index. Out-of-range indexes are
// ignored.
func (w *Wizard) UpdateResource(index int, res types.Resource) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.resources) {
		return
	}
	w.resources[index] = res
}

// State is a serializable view of the wizard for the routing layer.
type State struct {
	Step           int                    `json:"step"`
	StepName       string                 `json:"stepName"`
	Generating     bool                   `json:"generating"`
	Published      bool                   `json:"published"`
	CompanyID      string                 `json:"companyId"`
	NewCompanyName string                 `json:"newCompanyName,omitempty"`
	Role           string                 `json:"role"`
	Year           int                    `json:"year"`
	OADetails      types.OARound          `json:"oaDetails"`
	Shortlisted    bool                   `json:"shortlisted"`
	Rounds         []types.InterviewRound `json:"rounds"`
	Resources      []types.Resource       `json:"resources"`
	Summary        string                 `json:"summary"`
	IsAnonymous    bool                   `json:"isAnonymous"`
	Rating         int                    `json:"difficultyRating"`
	Tags           []string               `json:"tags"`
}

// State returns a copy of the wizard's current state.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	rounds := append([]types.InterviewRound{}, w.rounds...)
	resources := append([]types.Resource{}, w.resources...)
	tags := append([]string{}, w.tags...)

	return State{
		Step:           int(w.step),
		StepName:       w.step.String(),
		Generating:     w.generating,
		Published:      w.published != nil,
		CompanyID:      w.companyID,
		NewCompanyName: w.newCompanyName,
		Role:           w.role,
		Year:           w.year,
		OADetails:      w.oaDetails,
		Shortlisted:    w.shortlisted,
		Rounds:         rounds,
		Resources:      resources,
		Summary:        w.summaryText,
		IsAnonymous:    w.isAnonymous,
		Rating:         w.rating,
		Tags:           tags,
	}
}
