package model

// Snapshot holds the record sets loaded for an export at a single point in
// time. Each view fetches its own copy independently; no cross-view
// consistency is guaranteed.
type Snapshot struct {
	Assessments []*RiskAssessment
	Strategies  []*MitigationStrategy
	Factors     []*RiskFactor
}

// RecordCounts summarizes how many records of each kind a snapshot holds
type RecordCounts struct {
	Assessments int `json:"assessments"`
	Strategies  int `json:"strategies"`
	Factors     int `json:"factors"`
}

// Counts returns the per-set record counts of the snapshot
func (s *Snapshot) Counts() RecordCounts {
	return RecordCounts{
		Assessments: len(s.Assessments),
		Strategies:  len(s.Strategies),
		Factors:     len(s.Factors),
	}
}

// Total returns the number of records across all sets
func (s *Snapshot) Total() int {
	return len(s.Assessments) + len(s.Strategies) + len(s.Factors)
}
