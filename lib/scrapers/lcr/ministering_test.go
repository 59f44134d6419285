package lcr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFemaleByID(t *testing.T) {
	byID := FemaleByID([]MemberListPerson{
		{LegacyCmisID: 1, Sex: "M"},
		{LegacyCmisID: 2, Sex: "F"},
		{LegacyCmisID: 3, Sex: "m"},
	})
	require.Equal(t, map[int64]bool{1: false, 2: true, 3: false}, byID)
}

func TestCollectNames(t *testing.T) {
	quorums := []MinisteringQuorum{
		{
			Name: "Relief Society",
			Companionships: []Companionship{
				{
					Ministers: []MinisteringPerson{
						{Name: "Alice", LegacyCmisID: 1},
						{Name: "Bob", LegacyCmisID: 2},
					},
					Assignments: []MinisteringPerson{
						{Name: "Carol", LegacyCmisID: 3},
					},
				},
			},
		},
		{
			Name: "Elders Quorum",
			Companionships: []Companionship{
				{
					Ministers: []MinisteringPerson{
						// a duplicate across quorums collapses
						{Name: "Alice", LegacyCmisID: 1},
						{Name: ""},
					},
					Assignments: []MinisteringPerson{
						// id missing from the lookup
						{Name: "Dana", LegacyCmisID: 99},
					},
				},
			},
		},
	}
	femaleByID := map[int64]bool{1: true, 2: false, 3: true}

	names := CollectNames(quorums, false, femaleByID)
	require.Equal(t, []string{"Alice", "Bob", "Carol", "Dana"}, names)

	// only-females drops Bob; Dana's unknown id is kept
	names = CollectNames(quorums, true, femaleByID)
	require.Equal(t, []string{"Alice", "Carol", "Dana"}, names)
}
