package github

var (
	CommitPhrasesForTest    = commitPhrases
	DistinctiveTermsForTest = distinctiveTerms
	CommitQueriesForTest    = commitQueries
)
