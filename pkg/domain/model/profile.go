package model

import (
	"time"
)

// ProfileAnalysis is a heuristic assessment of an account based on its repositories
type ProfileAnalysis struct {
	Username             string   `json:"username"`
	AccountAgeDays       int      `json:"account_age_days"`
	RepoCount            int      `json:"repo_count"`
	ReposCreatedRecently int      `json:"repos_created_recently"`
	AvgStarsPerRepo      float64  `json:"avg_stars_per_repo"`
	SuspicionScore       int      `json:"suspicion_score"`
	Suspicious           bool     `json:"suspicious"`
	Reasons              []string `json:"reasons,omitempty"`
}

// SuspiciousProfileScore is the minimum heuristic score that flags an account
const SuspiciousProfileScore = 30

const recentWindow = 30 * 24 * time.Hour

// AnalyzeProfile scores an account by how many repositories it created recently,
// how many it has relative to its age, and how few stars they collect. accountCreatedAt
// may be zero, in which case the oldest repository approximates the account age.
func AnalyzeProfile(username string, accountCreatedAt time.Time, repos []*GitHubRepository, now time.Time) *ProfileAnalysis {
	result := &ProfileAnalysis{
		Username:  username,
		RepoCount: len(repos),
	}
	if len(repos) == 0 {
		return result
	}

	oldest := accountCreatedAt
	totalStars := 0
	for _, r := range repos {
		if now.Sub(r.CreatedAt) < recentWindow {
			result.ReposCreatedRecently++
		}
		totalStars += r.Stars
		if oldest.IsZero() || r.CreatedAt.Before(oldest) {
			oldest = r.CreatedAt
		}
	}
	result.AvgStarsPerRepo = float64(totalStars) / float64(len(repos))
	result.AccountAgeDays = int(now.Sub(oldest).Hours() / 24)

	score := 0
	switch {
	case result.ReposCreatedRecently > 20:
		score += 30
	case result.ReposCreatedRecently > 10:
		score += 20
	case result.ReposCreatedRecently > 5:
		score += 10
	}
	if result.ReposCreatedRecently > 5 {
		result.Reasons = append(result.Reasons, "many repositories created in the last 30 days")
	}

	switch {
	case result.RepoCount > 50 && result.AccountAgeDays < 180:
		score += 30
		result.Reasons = append(result.Reasons, "more than 50 repositories on an account younger than 180 days")
	case result.RepoCount > 30 && result.AccountAgeDays < 365:
		score += 20
		result.Reasons = append(result.Reasons, "more than 30 repositories on an account younger than a year")
	}

	if result.RepoCount > 20 && result.AvgStarsPerRepo < 1 {
		score += 20
		result.Reasons = append(result.Reasons, "many repositories with almost no stars")
	}

	result.SuspicionScore = min(100, score)
	result.Suspicious = result.SuspicionScore >= SuspiciousProfileScore
	return result
}
