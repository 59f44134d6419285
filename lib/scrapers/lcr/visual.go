package lcr

const (
	noIndividualPhoto = "images/nophoto.svg"
	noHouseholdPhoto  = "images/nohousehold.svg"
	placeholderPhoto  = "https://lcr.churchofjesuschrist.org/images/nohousehold.svg"
)

// PairPhotos reduces photo records into display records. Records
// arrive in (household, individual) pairs; per pair the individual
// photo wins, then the household photo, then a fixed placeholder. The
// display name is always the household's spoken name. A trailing
// unpaired record is dropped.
func PairPhotos(photos []PhotoInfo) []VisualPerson {
	result := make([]VisualPerson, 0, len(photos)/2)
	for i := 0; i+1 < len(photos); i += 2 {
		household := photos[i]
		individual := photos[i+1]

		var photoURL string
		switch {
		case individual.Image.TokenURL != noIndividualPhoto:
			photoURL = individual.Image.TokenURL
		case household.Image.TokenURL != noHouseholdPhoto:
			photoURL = household.Image.TokenURL
		default:
			photoURL = placeholderPhoto
		}

		result = append(result, VisualPerson{
			Name:     household.SpokenName,
			PhotoURL: photoURL,
		})
	}
	return result
}
