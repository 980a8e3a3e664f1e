// Package analytics holds the pure filter and aggregate transforms behind the
// dashboard charts. Nothing here keeps state between calls.
package analytics

import (
	"cmp"
	"slices"

	"github.com/leapstack-labs/launchdash/internal/dataset"
)

// AllSites is the selector value that aggregates across every launch site.
const AllSites = "ALL"

// SiteSuccess is the number of successful launches for one site.
type SiteSuccess struct {
	Site      string `json:"site"`
	Successes int    `json:"successes"`
}

// SiteSuccessSummary holds one entry per distinct site, ordered by site name.
type SiteSuccessSummary []SiteSuccess

// Total returns the sum of successes over all sites.
func (s SiteSuccessSummary) Total() int {
	n := 0
	for _, e := range s {
		n += e.Successes
	}
	return n
}

// ClassCount is the number of launches with a given outcome class.
type ClassCount struct {
	Class int `json:"class"`
	Count int `json:"count"`
}

// ClassCountSummary holds at most two entries, ordered by count descending.
type ClassCountSummary []ClassCount

// Total returns the number of launches counted.
func (s ClassCountSummary) Total() int {
	n := 0
	for _, e := range s {
		n += e.Count
	}
	return n
}

// SuccessSummary is the pie chart input for a site selection. Exactly one of
// BySite or ByClass is meaningful, depending on whether Site is AllSites.
type SuccessSummary struct {
	Site    string             `json:"site"`
	BySite  SiteSuccessSummary `json:"by_site,omitempty"`
	ByClass ClassCountSummary  `json:"by_class,omitempty"`
}

// IsAllSites reports whether the summary aggregates across sites.
func (s SuccessSummary) IsAllSites() bool {
	return s.Site == AllSites
}

// Success computes the pie chart summary for a site selection. AllSites sums
// the class column per site; a named site counts occurrences of each class.
// The two are different aggregations on purpose.
func Success(records []dataset.LaunchRecord, site string) SuccessSummary {
	if site == AllSites {
		return SuccessSummary{Site: site, BySite: SuccessBySite(records)}
	}
	return SuccessSummary{Site: site, ByClass: ClassCounts(records, site)}
}

// SuccessBySite groups records by site and sums their class values. Sites
// without a success are kept with a zero sum.
func SuccessBySite(records []dataset.LaunchRecord) SiteSuccessSummary {
	sums := make(map[string]int)
	for _, r := range records {
		sums[r.Site] += r.Class
	}

	out := make(SiteSuccessSummary, 0, len(sums))
	for site, n := range sums {
		out = append(out, SiteSuccess{Site: site, Successes: n})
	}
	slices.SortFunc(out, func(a, b SiteSuccess) int {
		return cmp.Compare(a.Site, b.Site)
	})
	return out
}

// ClassCounts counts outcome classes for one site. The result is empty when
// the site has no records.
func ClassCounts(records []dataset.LaunchRecord, site string) ClassCountSummary {
	counts := make(map[int]int)
	for _, r := range records {
		if r.Site == site {
			counts[r.Class]++
		}
	}

	out := make(ClassCountSummary, 0, len(counts))
	for class, n := range counts {
		out = append(out, ClassCount{Class: class, Count: n})
	}
	slices.SortFunc(out, func(a, b ClassCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Class, b.Class)
	})
	return out
}
