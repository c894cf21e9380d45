package types

type ScanStatus string

const (
	ScanStatusPending    ScanStatus = "pending"
	ScanStatusIndexing   ScanStatus = "indexing"
	ScanStatusProcessing ScanStatus = "processing"
	ScanStatusCompleted  ScanStatus = "completed"
	ScanStatusFailed     ScanStatus = "failed"
)

// ScanPhase is the state of a profile scan session
type ScanPhase string

const (
	ScanPhaseIndexing  ScanPhase = "indexing"
	ScanPhaseScanning  ScanPhase = "scanning"
	ScanPhaseMatching  ScanPhase = "matching"
	ScanPhaseCompleted ScanPhase = "completed"
)

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusVerified MatchStatus = "verified"
)

type ConfidenceLevel string

const (
	ConfidenceVeryHigh ConfidenceLevel = "VERY_HIGH"
	ConfidenceHigh     ConfidenceLevel = "HIGH"
	ConfidenceMedium   ConfidenceLevel = "MEDIUM"
	ConfidenceLow      ConfidenceLevel = "LOW"
	ConfidenceVeryLow  ConfidenceLevel = "VERY_LOW"
)

type BlacklistStatus string

const (
	BlacklistConfirmed BlacklistStatus = "confirmed"
)

type ReportStatus string

const (
	ReportStatusPending ReportStatus = "pending"
)
