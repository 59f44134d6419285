// Package reports reshapes fetched membership records into
// print-friendly buckets. Everything here is pure so the CLI can
// render the same buckets as text or JSON.
package reports

import (
	"fmt"
	"strings"
	"time"

	"lcrassist/lib/scrapers/lcr"
)

// AgeBuckets counts members by integer age.
func AgeBuckets(members []lcr.MemberListPerson) map[int]int {
	out := map[int]int{}
	for _, m := range members {
		out[m.Age]++
	}
	return out
}

// GenderBuckets counts members as Male when sex is "M" in any casing
// and Female otherwise.
func GenderBuckets(members []lcr.MemberListPerson) map[string]int {
	out := map[string]int{}
	for _, m := range members {
		if strings.EqualFold(m.Sex, "M") {
			out["Male"]++
		} else {
			out["Female"]++
		}
	}
	return out
}

// TenureMonths converts an 8-digit YYYYMMDD move-in date into whole
// months of tenure relative to now: days since move-in, truncated to
// weeks, truncated to 4-week months.
func TenureMonths(moveDate string, now time.Time) (int, error) {
	d, err := time.Parse("20060102", moveDate)
	if err != nil {
		return 0, fmt.Errorf("parse move date %q: %w", moveDate, err)
	}
	days := int(now.UTC().Sub(d).Hours()) / 24
	weeks := days / 7
	return weeks / 4, nil
}

// TenureBuckets counts profiles by months of tenure. Profiles with no
// parseable move-in date are skipped.
func TenureBuckets(profiles []lcr.MemberProfile, now time.Time) map[int]int {
	out := map[int]int{}
	for _, p := range profiles {
		if _, ok := p.Individual.ParsedMoveDate(); !ok {
			continue
		}
		months, err := TenureMonths(p.Individual.MoveDate, now)
		if err != nil {
			continue
		}
		out[months]++
	}
	return out
}
