package store

import (
	"github.com/jonathan/placement-portal/internal/types"
)

// Seed data shown on a fresh install, before any collection has been
// persisted. Returned as fresh slices so callers may mutate freely.

// SeedCompanies returns the built-in company list.
func SeedCompanies() []types.Company {
	return []types.Company{
		{ID: "c1", Name: "Google", Industry: "Tech", Description: "Search engine giant."},
		{ID: "c2", Name: "Microsoft", Industry: "Tech", Description: "Software and cloud computing."},
		{ID: "c3", Name: "Uber", Industry: "Tech", Description: "Ride-sharing and logistics."},
		{ID: "c4", Name: "Goldman Sachs", Industry: "Finance", Description: "Investment banking."},
		{ID: "c5", Name: "Flipkart", Industry: "E-commerce", Description: "Indian e-commerce company."},
	}
}

// SeedUsers returns the built-in user list.
func SeedUsers() []types.User {
	return []types.User{
		{
			ID:       "u1",
			Email:    "senior.dev@iitg.ac.in",
			Name:     "Rahul Sharma",
			Branch:   types.BranchCSE,
			Year:     2024,
			LinkedIn: "linkedin.com/in/rahul-mock",
		},
		{
			ID:        "u2",
			Email:     "jane.doe@iitg.ac.in",
			Name:      "Jane Doe",
			Branch:    types.BranchMNC,
			Year:      2024,
			IsPrivate: true,
		},
	}
}

// SeedExperiences returns the built-in experience list. Timestamps are
// relative to load time so the records read as recent.
func SeedExperiences() []types.Experience {
	now := types.NowMillis()
	return []types.Experience{
		{
			ID:          "e1",
			UserID:      "u1",
			CompanyID:   "c1",
			CompanyName: "Google",
			Role:        "Software Engineer",
			Year:        2024,
			Shortlisted: true,
			OADetails: &types.OARound{
				Topics:          []string{"Dynamic Programming", "Graph"},
				CodingQuestions: []string{"Find max path sum in grid", "Edit distance variation"},
				Difficulty:      types.DifficultyHard,
				TimeLimit:       "90 mins",
				Tips:            "Focus on standard DP patterns.",
			},
			Rounds: []types.InterviewRound{
				{
					ID:                "r1",
					Type:              types.RoundTechnical,
					Questions:         []string{"Invert binary tree", "System design for URL shortener"},
					Difficulty:        types.DifficultyMedium,
					Duration:          "45 mins",
					PerformanceReview: "Did well on algo, stumbled a bit on design.",
					Tips:              "Clarify constraints early.",
				},
			},
			Resources: []types.Resource{
				{Type: types.ResourcePlatform, Name: "LeetCode", Link: "https://leetcode.com"},
			},
			Summary:          "Challenging but fair process. Strong emphasis on DSA fundamentals.",
			DifficultyRating: 4,
			Upvotes:          12,
			Timestamp:        now - 10000000,
			Tags:             []string{"DSA-heavy", "System Design"},
		},
		{
			ID:          "e2",
			UserID:      "u2",
			CompanyID:   "c2",
			CompanyName: "Microsoft",
			Role:        "SDE 1",
			Year:        2024,
			IsAnonymous: true,
			Shortlisted: true,
			OADetails: &types.OARound{
				Topics:          []string{"Arrays", "Strings"},
				CodingQuestions: []string{"Min swaps to palindrome", "Count good nodes"},
				Difficulty:      types.DifficultyMedium,
				TimeLimit:       "60 mins",
				Tips:            "Speed is key.",
			},
			Rounds: []types.InterviewRound{
				{
					ID:                "r2",
					Type:              types.RoundTechnical,
					Questions:         []string{"Detect cycle in linked list", "OS concepts: Paging"},
					Difficulty:        types.DifficultyEasy,
					Duration:          "45 mins",
					PerformanceReview: "Smooth interview.",
					Tips:              "Brush up on CS fundamentals.",
				},
			},
			Resources:        []types.Resource{},
			Summary:          "Standard Microsoft process. 3 rounds of coding + CS fundamentals.",
			DifficultyRating: 3,
			Upvotes:          8,
			Timestamp:        now - 5000000,
			Tags:             []string{"CS Fundamentals", "Easy-Medium"},
		},
	}
}
