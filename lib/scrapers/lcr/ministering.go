package lcr

import (
	"sort"
	"strings"
)

// FemaleByID derives the sex lookup used by the only-females filter
// from the member list. The member list records sex as "M"/"F" but
// casing has varied, so the comparison is case-insensitive.
func FemaleByID(members []MemberListPerson) map[int64]bool {
	out := make(map[int64]bool, len(members))
	for _, m := range members {
		out[m.LegacyCmisID] = !strings.EqualFold(m.Sex, "M")
	}
	return out
}

// CollectNames flattens quorum -> companionship -> minister/assignment
// into a sorted set of unique names. With onlyFemales set, names whose
// id maps to not-female are excluded; ids absent from the map count as
// female.
func CollectNames(quorums []MinisteringQuorum, onlyFemales bool, femaleByID map[int64]bool) []string {
	seen := map[string]bool{}

	include := func(p MinisteringPerson) {
		if p.Name == "" {
			return
		}
		if onlyFemales {
			female, known := femaleByID[p.LegacyCmisID]
			if known && !female {
				return
			}
		}
		seen[p.Name] = true
	}

	for _, quorum := range quorums {
		for _, companionship := range quorum.Companionships {
			for _, minister := range companionship.Ministers {
				include(minister)
			}
			for _, assignment := range companionship.Assignments {
				include(assignment)
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
