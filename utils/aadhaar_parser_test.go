package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAadhaarText(t *testing.T) {
	text := `
		Government of India
		Ravi Kumar Sharma
		DOB: 04/07/1990
		Male

		1234 5678 9012
	`

	extract := ParseAadhaarText(text)

	assert.Equal(t, "Ravi Kumar Sharma", extract.Name)
	assert.Equal(t, "04/07/1990", extract.DOB)
	assert.Equal(t, "Male", extract.Gender)
	assert.Equal(t, "9012", extract.AadhaarLast4)
	assert.Equal(t, "ocr", extract.Source)
}

func TestParseAadhaarTextFemale(t *testing.T) {
	text := `
		Unique Identification Authority of India
		Anita Devi
		DOB- 12/01/1985
		Female
		4321 8765 2109
	`

	extract := ParseAadhaarText(text)

	assert.Equal(t, "Anita Devi", extract.Name)
	assert.Equal(t, "12/01/1985", extract.DOB)
	assert.Equal(t, "Female", extract.Gender)
	assert.Equal(t, "2109", extract.AadhaarLast4)
}

func TestParseAadhaarTextEmpty(t *testing.T) {
	extract := ParseAadhaarText("completely unrelated scan")

	assert.Equal(t, "", extract.Name)
	assert.Equal(t, "", extract.DOB)
	assert.Equal(t, "", extract.AadhaarLast4)
}

func TestParsePANText(t *testing.T) {
	text := `
		INCOME TAX DEPARTMENT
		GOVT. OF INDIA
		Name
		RAVI KUMAR SHARMA
		Father's Name
		SURESH SHARMA
		04/07/1990
		ABCDE1234F
	`

	extract := ParsePANText(text)

	assert.Equal(t, "ABCDE1234F", extract.PAN)
	assert.Equal(t, "RAVI KUMAR SHARMA", extract.Name)
	assert.Equal(t, "04/07/1990", extract.DOB)
}
