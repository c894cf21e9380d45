package usecase

// Export unexported functions for testing
var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	NameSearchTermsForTest             = nameSearchTerms
	SimilarNameKeywordsForTest         = similarNameKeywords
	SeedCommitsForTest                 = seedCommits
)
