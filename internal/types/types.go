// Package types provides the domain model shared by the store, wizard and
// insight layers of the placement portal.
package types

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for a newly created record.
func NewID() string {
	return uuid.NewString()
}

// NowMillis returns the current time as Unix milliseconds, the timestamp
// format experiences are stored with.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// User is a registered student. Created once at profile completion; immutable
// afterwards except through an explicit update.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Branch    Branch `json:"branch"`
	Year      int    `json:"year"` // graduating year
	LinkedIn  string `json:"linkedin,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsPrivate bool   `json:"isPrivate"`
}

// Company is an employer students interview with. Names are unique by
// convention only; the store never deduplicates them.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// OARound captures the online-assessment stage of a process. At most one per
// experience.
type OARound struct {
	Topics          []string   `json:"topics"`
	CodingQuestions []string   `json:"codingQuestions"`
	Difficulty      Difficulty `json:"difficulty"`
	TimeLimit       string     `json:"timeLimit"`
	Tips            string     `json:"tips"`
}

// InterviewRound is one post-OA round. Slice order is interview order.
type InterviewRound struct {
	ID                string     `json:"id"`
	Type              RoundType  `json:"type"`
	Questions         []string   `json:"questions"`
	Difficulty        Difficulty `json:"difficulty"`
	Duration          string     `json:"duration"`
	PerformanceReview string     `json:"performanceReview"`
	Tips              string     `json:"tips"`
}

// Resource is a preparation material recommended by the author.
type Resource struct {
	Type ResourceType `json:"type"`
	Name string       `json:"name"`
	Link string       `json:"link,omitempty"`
}

// Experience is one student's account of a single recruitment process at one
// company. CompanyName is snapshotted at submission time and intentionally
// does not track later company renames.
type Experience struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	CompanyID        string           `json:"companyId"`
	CompanyName      string           `json:"companyName"`
	Role             string           `json:"role"`
	Year             int              `json:"year"` // placement year
	IsAnonymous      bool             `json:"isAnonymous"`
	Shortlisted      bool             `json:"shortlisted"`
	OADetails        *OARound         `json:"oaDetails,omitempty"`
	Rounds           []InterviewRound `json:"rounds"`
	Resources        []Resource       `json:"resources"`
	Summary          string           `json:"summary"`
	DifficultyRating int              `json:"difficultyRating"` // 1-5
	Upvotes          int              `json:"upvotes"`
	Timestamp        int64            `json:"timestamp"` // Unix milliseconds
	Tags             []string         `json:"tags"`
}
