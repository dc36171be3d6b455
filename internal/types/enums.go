package types

// Branch is the academic department a student belongs to. The set is fixed;
// renderers and validators may match exhaustively.
type Branch string

// Branch values mirror the institute's department names.
const (
	BranchCSE  Branch = "Computer Science and Engineering"
	BranchECE  Branch = "Electronics and Communication Engineering"
	BranchEEE  Branch = "Electronics and Electrical Engineering"
	BranchME   Branch = "Mechanical Engineering"
	BranchCE   Branch = "Civil Engineering"
	BranchCL   Branch = "Chemical Engineering"
	BranchBSBE Branch = "Biosciences and Bioengineering"
	BranchMNC  Branch = "Mathematics and Computing"
	BranchCST  Branch = "Chemical Science and Technology"
	BranchEP   Branch = "Engineering Physics"
	BranchDS   Branch = "Data Science and AI"
)

// Branches lists every valid branch in display order.
var Branches = []Branch{
	BranchCSE, BranchECE, BranchEEE, BranchME, BranchCE, BranchCL,
	BranchBSBE, BranchMNC, BranchCST, BranchEP, BranchDS,
}

// Valid reports whether b is one of the known branches.
func (b Branch) Valid() bool {
	for _, known := range Branches {
		if b == known {
			return true
		}
	}
	return false
}

// Difficulty grades an assessment or interview round.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every valid difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// RoundType identifies the kind of interview round.
type RoundType string

// Round types in the order a process typically runs them.
const (
	RoundOA              RoundType = "Online Assessment"
	RoundTechnical       RoundType = "Technical Interview"
	RoundHR              RoundType = "HR Interview"
	RoundManagerial      RoundType = "Managerial Interview"
	RoundGroupDiscussion RoundType = "Group Discussion"
)

// RoundTypes lists every valid round type.
var RoundTypes = []RoundType{
	RoundOA, RoundTechnical, RoundHR, RoundManagerial, RoundGroupDiscussion,
}

// Valid reports whether t is a known round type.
func (t RoundType) Valid() bool {
	switch t {
	case RoundOA, RoundTechnical, RoundHR, RoundManagerial, RoundGroupDiscussion:
		return true
	}
	return false
}

// ResourceType classifies a preparation resource.
type ResourceType string

// Resource types.
const (
	ResourceCourse   ResourceType = "Course"
	ResourceVideo    ResourceType = "Video"
	ResourceBook     ResourceType = "Book"
	ResourcePlatform ResourceType = "Platform"
	ResourceNote     ResourceType = "Note"
)

// ResourceTypes lists every valid resource type.
var ResourceTypes = []ResourceType{
	ResourceCourse, ResourceVideo, ResourceBook, ResourcePlatform, ResourceNote,
}

// Valid reports whether t is a known resource type.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceCourse, ResourceVideo, ResourceBook, ResourcePlatform, ResourceNote:
		return true
	}
	return false
}
