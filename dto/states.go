package dto

import "strings"

// IndianStates lists the states and union territories accepted by the intake
// form's address step. The renderer prints whatever the record carries; an
// off-list value only produces a warning.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Jammu and Kashmir",
	"Ladakh", "Lakshadweep", "Puducherry",
}

// IsIndianState reports whether name matches a known state or union
// territory, case-insensitively.
func IsIndianState(name string) bool {
	for _, s := range IndianStates {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
