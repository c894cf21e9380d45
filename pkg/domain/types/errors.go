package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
	ErrInvalidURL        = goerr.New("invalid repository URL")
	ErrScanInProgress    = goerr.New("profile scan already in progress")
)
