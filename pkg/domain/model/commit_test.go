package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestNormalizeMessage(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase and trim", input: "  Add Login Page  ", want: "add login page"},
		{name: "strip role prefix", input: "Fix: broken header", want: "broken header"},
		{name: "strip prefix case-insensitive", input: "MERGE: feature branch", want: "feature branch"},
		{name: "prefix without colon is kept", input: "add login", want: "add login"},
		{name: "repeated prefixes", input: "revert: fix: typo in docs", want: "typo in docs"},
		{name: "prefix must be leading", input: "readme fix: typo", want: "readme fix: typo"},
		{name: "no-break space after prefix", input: "fix:\u00a0add: login", want: "login"},
		{name: "em space after prefix", input: "Fix:\u2003update: thing", want: "thing"},
		{name: "empty", input: "", want: ""},
		{name: "truncate to 100 characters", input: strings.Repeat("a", 150), want: strings.Repeat("a", 100)},
		{name: "truncate counts runes", input: strings.Repeat("あ", 120), want: strings.Repeat("あ", 100)},
		{name: "trailing space after truncation", input: strings.Repeat("a", 99) + " bcd", want: strings.Repeat("a", 99)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := model.NormalizeMessage(tc.input)
			gt.V(t, got).Equal(tc.want)

			// normalizing again changes nothing
			gt.V(t, model.NormalizeMessage(got)).Equal(got)
		})
	}
}

func TestNormalizeMessageIdempotent(t *testing.T) {
	inputs := []string{
		"Update: Fix: stuff",
		"initial:   initial: x",
		"  fix:" + strings.Repeat(" word", 40),
		"Merge pull request #12 from owner/branch",
		"create: " + strings.Repeat("x", 99) + " y",
		"\tREMOVE:delete:   trailing   ",
		"fix:\u00a0add: login",
		"Fix:\u2003update: thing",
		"merge:\u3000\u00a0revert:\tdone",
	}
	for _, in := range inputs {
		once := model.NormalizeMessage(in)
		gt.V(t, model.NormalizeMessage(once)).Equal(once)
	}
}

func TestNewCommit(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	c := model.NewCommit("abc", "Fix: login bug\n\nlong body\nmore", "alice", "alice@example.com", ts, "https://github.com/o/r/commit/abc")

	gt.V(t, c.Message).Equal("Fix: login bug")
	gt.V(t, c.NormalizedMessage).Equal("login bug")
	gt.V(t, c.MatchKey()).Equal("login bug")
	gt.V(t, c.Author()).Equal("alice<alice@example.com>")
}

func TestFirstLine(t *testing.T) {
	gt.V(t, model.FirstLine("one\r\ntwo")).Equal("one")
	gt.V(t, model.FirstLine("single")).Equal("single")
	gt.V(t, model.FirstLine("")).Equal("")
}

func TestIsSignificantMessage(t *testing.T) {
	gt.False(t, model.IsSignificantMessage("short"))
	gt.False(t, model.IsSignificantMessage("update readme.md with badges"))
	gt.False(t, model.IsSignificantMessage("initial commit of project"))
	gt.False(t, model.IsSignificantMessage("v1.2.3 release notes"))
	gt.False(t, model.IsSignificantMessage("1.0 release of the library"))
	gt.True(t, model.IsSignificantMessage("implement token refresh flow"))
}

func TestTruncateToMinute(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2024, 3, 1, 21, 30, 59, 999, jst)

	got := model.TruncateToMinute(ts)
	gt.V(t, got).Equal(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
}
