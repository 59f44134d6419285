package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lcrassist/lib/scrapers/lcr"
)

func TestAgeBuckets(t *testing.T) {
	buckets := AgeBuckets([]lcr.MemberListPerson{
		{Age: 10}, {Age: 10}, {Age: 12},
	})
	require.Equal(t, map[int]int{10: 2, 12: 1}, buckets)
}

func TestGenderBuckets(t *testing.T) {
	buckets := GenderBuckets([]lcr.MemberListPerson{
		{Sex: "M"}, {Sex: "F"}, {Sex: "m"}, {Sex: ""}, {Sex: "MALE"},
	})
	require.Equal(t, map[string]int{"Male": 2, "Female": 3}, buckets)
}

func TestTenureMonths(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// 2023-01-01 to 2024-06-01 is 517 days: 73 weeks, 18 months
	months, err := TenureMonths("20230101", now)
	require.NoError(t, err)
	require.Equal(t, 18, months)

	// less than four weeks rounds down to zero
	months, err = TenureMonths("20240515", now)
	require.NoError(t, err)
	require.Equal(t, 0, months)

	_, err = TenureMonths("not-a-date", now)
	require.Error(t, err)
}

func TestTenureBucketsSkipsUnparseable(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	profile := func(moveDate string) lcr.MemberProfile {
		return lcr.MemberProfile{Individual: lcr.MemberProfileIndividual{MoveDate: moveDate}}
	}

	buckets := TenureBuckets([]lcr.MemberProfile{
		profile("20240101"),
		profile("20240101"),
		profile(""),
		profile("garbage"),
	}, now)
	require.Equal(t, map[int]int{5: 2}, buckets)
}
