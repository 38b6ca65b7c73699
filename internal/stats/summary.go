// Package stats derives gender-distribution statistics from analysis records.
package stats

import "github.com/ovumlab/ovumsort/internal/model"

// FilterAll matches records from every batch.
const FilterAll = "all"

// Summary is the gender distribution over a set of records. Total counts
// only determinate predictions: an Uncertain record is excluded from both
// the numerator and the denominator.
type Summary struct {
	MaleCount   int
	FemaleCount int
	Total       int
	MalePct     float64
	FemalePct   float64
}

// Summarize computes the distribution for records matching batchFilter
// (FilterAll or the empty string matches everything). It always recomputes
// from scratch: the record set grows between calls and the filter changes,
// so nothing here may be cached.
func Summarize(records []model.AnalysisRecord, batchFilter string) Summary {
	var s Summary

	for _, r := range records {
		if batchFilter != "" && batchFilter != FilterAll && r.BatchNumber != batchFilter {
			continue
		}
		// Exact match only; anything else (Uncertain included) is ignored.
		switch r.Gender {
		case model.GenderMale:
			s.MaleCount++
		case model.GenderFemale:
			s.FemaleCount++
		}
	}

	s.Total = s.MaleCount + s.FemaleCount
	if s.Total > 0 {
		s.MalePct = float64(s.MaleCount) / float64(s.Total) * 100
		s.FemalePct = float64(s.FemaleCount) / float64(s.Total) * 100
	}

	return s
}

// Batches returns the distinct batch numbers in first-seen order, for
// building filter choices.
func Batches(records []model.AnalysisRecord) []string {
	seen := make(map[string]bool, len(records))
	var batches []string
	for _, r := range records {
		if !seen[r.BatchNumber] {
			seen[r.BatchNumber] = true
			batches = append(batches, r.BatchNumber)
		}
	}
	return batches
}
