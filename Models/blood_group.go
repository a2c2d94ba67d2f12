package Models

// The eight ABO/Rh blood groups. The same strings are the join key between
// donors, requests and stock rows.
var BloodGroups = []string{"A+", "A-", "AB+", "AB-", "B+", "B-", "O+", "O-"}

func IsValidBloodGroup(bloodGroup string) bool {
	for _, group := range BloodGroups {
		if group == bloodGroup {
			return true
		}
	}
	return false
}
