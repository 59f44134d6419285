package lcr

import "time"

type MovedInPerson struct {
	Name          string `json:"name"`
	MoveDate      string `json:"moveDate"`
	PriorUnitName string `json:"priorUnitName"`
}

type MovedOutPerson struct {
	Name            string `json:"name"`
	MoveDateDisplay string `json:"moveDateDisplay"`
	NextUnitName    string `json:"nextUnitName"`
}

type Address struct {
	AddressLines []string `json:"addressLines"`
}

type MemberListPerson struct {
	Address      Address `json:"address"`
	Age          int     `json:"age"`
	Convert      bool    `json:"convert"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phoneNumber"`
	Sex          string  `json:"sex"`
	LegacyCmisID int64   `json:"legacyCmisId"`

	NameGivenPreferredLocal  string `json:"nameGivenPreferredLocal"`
	NameFamilyPreferredLocal string `json:"nameFamilyPreferredLocal"`
	NameListPreferredLocal   string `json:"nameListPreferredLocal"`
}

type MemberProfile struct {
	Individual MemberProfileIndividual `json:"individual"`
}

type MemberProfileIndividual struct {
	// 8-digit YYYYMMDD, may be empty
	MoveDate string `json:"moveDate"`
	Mrn      string `json:"mrn"`
	// legacyCmisId elsewhere
	ID      int64 `json:"id"`
	Endowed bool  `json:"endowed"`
}

// MoveDate parses the individual's YYYYMMDD move-in date. ok is false
// when the field is absent or malformed.
func (i MemberProfileIndividual) ParsedMoveDate() (time.Time, bool) {
	if i.MoveDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", i.MoveDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type PhotoImage struct {
	TokenURL string `json:"tokenUrl"`
}

type PhotoInfo struct {
	SpokenName string     `json:"spokenName"`
	Image      PhotoImage `json:"image"`
}

// VisualPerson is a display-ready (name, photo url) pair derived from
// a (household, individual) photo record pair.
type VisualPerson struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type MinisteringPerson struct {
	Name         string `json:"name"`
	LegacyCmisID int64  `json:"legacyCmisId"`
}

type Companionship struct {
	Ministers   []MinisteringPerson `json:"ministers"`
	Assignments []MinisteringPerson `json:"assignments"`
}

type MinisteringQuorum struct {
	Name           string          `json:"name"`
	Companionships []Companionship `json:"companionships"`
}
