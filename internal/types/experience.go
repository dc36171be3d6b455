package types

// ExperienceDraft carries the fields a submission collects before an
// Experience exists. The wizard accumulates one of these across its steps.
type ExperienceDraft struct {
	UserID           string
	CompanyID        string
	CompanyName      string
	Role             string
	Year             int
	IsAnonymous      bool
	Shortlisted      bool
	OADetails        *OARound
	Rounds           []InterviewRound
	Resources        []Resource
	Summary          string
	DifficultyRating int
	Tags             []string
}

// NewExperience builds a complete Experience from a draft. The cross-field
// invariant lives here rather than in the store: when the candidate was not
// shortlisted, OA details are dropped and the rounds list is cleared, so an
// illegal combination cannot be constructed. The difficulty rating is clamped
// to 1-5. Upvotes start at zero and the timestamp is taken now.
func NewExperience(d ExperienceDraft) Experience {
	exp := Experience{
		ID:               NewID(),
		UserID:           d.UserID,
		CompanyID:        d.CompanyID,
		CompanyName:      d.CompanyName,
		Role:             d.Role,
		Year:             d.Year,
		IsAnonymous:      d.IsAnonymous,
		Shortlisted:      d.Shortlisted,
		Rounds:           d.Rounds,
		Resources:        d.Resources,
		Summary:          d.Summary,
		DifficultyRating: clampRating(d.DifficultyRating),
		Upvotes:          0,
		Timestamp:        NowMillis(),
		Tags:             d.Tags,
	}

	if d.Shortlisted {
		exp.OADetails = d.OADetails
	} else {
		exp.OADetails = nil
		exp.Rounds = nil
	}

	if exp.Rounds == nil {
		exp.Rounds = []InterviewRound{}
	}
	if exp.Resources == nil {
		exp.Resources = []Resource{}
	}
	if exp.Tags == nil {
		exp.Tags = []string{}
	}

	return exp
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
