package server

var GitHubEventToTargetForTest = func(event any) (owner, repo string, ok bool) {
	target := githubEventToTarget(event)
	if target == nil {
		return "", "", false
	}
	return target.Owner, target.Repo, true
}

var ErrorStatusForTest = errorStatus
