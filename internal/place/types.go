package place

import "trip-planner/internal/model"

const (
	DefaultSearchLimit = 5
	MaxSearchLimit     = 10
	MaxBatchNames      = 100
)

// --- UseCase Inputs ---

type ResolveInput struct {
	Name        string
	Destination string
}

type SearchInput struct {
	ClientKey   string // caller address used by the throttle
	Query       string
	Destination string
	Limit       int
}

type ResolveBatchInput struct {
	Names       []string
	Destination string
}

// --- UseCase Outputs ---

// ResolveBatchItem carries either a Candidate or an Error for one name.
type ResolveBatchItem struct {
	Index      int
	Name       string
	Candidate  *model.PlaceCandidate
	Error      string
	StatusCode int
}

type ResolveBatchOutput struct {
	Status         model.BatchStatus
	ProcessedCount int
	FailedCount    int
	ResolvedCount  int
	Cancelled      bool
	Items          []ResolveBatchItem
}
