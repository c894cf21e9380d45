package model

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m-mizutani/copycat/pkg/domain/types"
)

// Commit is a single indexed commit. Only the first line of the message is kept.
type Commit struct {
	RepoID            types.RepoID `json:"repo_id" firestore:"repo_id"`
	SHA               string       `json:"sha" firestore:"sha"`
	Message           string       `json:"message" firestore:"message"`
	NormalizedMessage string       `json:"normalized_message" firestore:"normalized_message"`
	AuthorName        string       `json:"author_name" firestore:"author_name"`
	AuthorEmail       string       `json:"author_email" firestore:"author_email"`
	Timestamp         time.Time    `json:"timestamp" firestore:"timestamp"`
	URL               string       `json:"url" firestore:"url"`
}

// NewCommit builds a commit from raw values, keeping the first message line and
// computing the normalized message
func NewCommit(sha, message, authorName, authorEmail string, ts time.Time, url string) *Commit {
	first := FirstLine(message)
	return &Commit{
		SHA:               sha,
		Message:           first,
		NormalizedMessage: NormalizeMessage(first),
		AuthorName:        authorName,
		AuthorEmail:       authorEmail,
		Timestamp:         ts,
		URL:               url,
	}
}

// MatchKey returns the normalized message, computing it when not stored yet
func (x *Commit) MatchKey() string {
	if x.NormalizedMessage != "" {
		return x.NormalizedMessage
	}
	return NormalizeMessage(x.Message)
}

// Author returns the identity used to decide whether two commits share an author
func (x *Commit) Author() string {
	return x.AuthorName + "<" + x.AuthorEmail + ">"
}

func (x *Commit) Copy() *Commit {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}

// DuplicateGroup is a (normalized message, minute) pair shared by more than one repository
type DuplicateGroup struct {
	Message   string
	Timestamp time.Time
	RepoIDs   []types.RepoID
}

type duplicateKey struct {
	message string
	minute  int64
}

// GroupDuplicateCommits groups commits by (normalized message, minute) and keeps
// groups spanning at least two repositories, oldest first
func GroupDuplicateCommits(commits []*Commit) []*DuplicateGroup {
	groups := map[duplicateKey]map[types.RepoID]struct{}{}
	for _, c := range commits {
		key := duplicateKey{message: c.MatchKey(), minute: TruncateToMinute(c.Timestamp).Unix()}
		if groups[key] == nil {
			groups[key] = map[types.RepoID]struct{}{}
		}
		groups[key][c.RepoID] = struct{}{}
	}

	var result []*DuplicateGroup
	for key, repos := range groups {
		if len(repos) < 2 {
			continue
		}
		g := &DuplicateGroup{
			Message:   key.message,
			Timestamp: time.Unix(key.minute, 0).UTC(),
		}
		for id := range repos {
			g.RepoIDs = append(g.RepoIDs, id)
		}
		sort.Slice(g.RepoIDs, func(i, j int) bool { return g.RepoIDs[i] < g.RepoIDs[j] })
		result = append(result, g)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return result[i].Message < result[j].Message
	})
	return result
}

const maxNormalizedLength = 100

var (
	ptnRolePrefix  = regexp.MustCompile(`(?i)^(merge|revert|update|fix|add|remove|delete|create|initial):`)
	ptnVersionLike = regexp.MustCompile(`^v?\d+\.\d+`)
)

// FirstLine returns the first line of a commit message
func FirstLine(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	return strings.TrimRight(line, "\r")
}

// NormalizeMessage lowercases and trims msg, strips leading role prefixes such as
// "fix:" and truncates it to 100 characters. NormalizeMessage(NormalizeMessage(s)) == NormalizeMessage(s).
func NormalizeMessage(msg string) string {
	s := strings.TrimSpace(strings.ToLower(msg))
	for {
		// separators are trimmed with unicode.IsSpace as TrimSpace does; RE2 \s is ASCII only
		stripped := strings.TrimLeftFunc(ptnRolePrefix.ReplaceAllString(s, ""), unicode.IsSpace)
		if stripped == s {
			break
		}
		s = stripped
	}

	if utf8.RuneCountInString(s) > maxNormalizedLength {
		s = string([]rune(s)[:maxNormalizedLength])
	}
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// IsSignificantMessage reports whether a normalized message is specific enough to
// count as evidence when comparing repositories
func IsSignificantMessage(normalized string) bool {
	if utf8.RuneCountInString(normalized) <= 10 {
		return false
	}
	for _, generic := range []string{"update readme", "initial commit", "first commit"} {
		if strings.HasPrefix(normalized, generic) {
			return false
		}
	}
	return !ptnVersionLike.MatchString(normalized)
}

// TruncateToMinute drops seconds and below, in UTC
func TruncateToMinute(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}

// LocalHistory is commit history read from a local clone
type LocalHistory struct {
	Owner   string
	Name    string
	Commits []*Commit
}
