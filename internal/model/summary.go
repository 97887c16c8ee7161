package model

import "time"

// CleanSummary captures metrics from a single cleaning run.
type CleanSummary struct {
	RunID             string
	InputPath         string
	ResultPath        string
	Format            string
	Counties          int
	PhoneNumbers      int
	FacilityNames     int
	Addresses         int
	UnknownAddresses  int
	Malformed         int // skipped under the "skip" policy
	SkippedByType     map[string]int
	DurationLoad      time.Duration
	DurationTransform time.Duration
	DurationWrite     time.Duration
	DurationTotal     time.Duration
}

// Skipped returns the number of raw resources that produced no output.
func (s *CleanSummary) Skipped() int {
	n := s.Malformed
	for _, c := range s.SkippedByType {
		n += c
	}
	return n
}
