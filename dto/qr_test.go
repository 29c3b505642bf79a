package dto

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAadhaarQRDecode(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?><PrintLetterBarcodeData uid="123456789012" name="Ravi Kumar Sharma" gender="M" yob="1990" dob="04/07/1990"/>`

	var data AadhaarQRData
	assert.NoError(t, xml.Unmarshal([]byte(raw), &data))

	assert.Equal(t, "123456789012", data.UID)
	assert.Equal(t, "Ravi Kumar Sharma", data.Name)
	assert.Equal(t, "04/07/1990", data.GetDOB())
	assert.Equal(t, "9012", data.GetLast4Digits())
}

func TestAadhaarQRYearOnly(t *testing.T) {
	raw := `<PrintLetterBarcodeData uid="9012" name="Anita Devi" gender="F" yob="1985"/>`

	var data AadhaarQRData
	assert.NoError(t, xml.Unmarshal([]byte(raw), &data))

	assert.Equal(t, "1985", data.GetDOB())
	assert.Equal(t, "9012", data.GetLast4Digits())
}

func TestRenderReady(t *testing.T) {
	app := &Application{
		FullName:      "Ravi Kumar Sharma",
		FatherName:    "Suresh Sharma",
		DOB:           "1990-07-04",
		AadhaarNumber: "123456789012",
	}
	assert.NoError(t, app.RenderReady())

	app.DOB = ""
	err := app.RenderReady()
	assert.ErrorIs(t, err, ErrRecordIncomplete)
	assert.Contains(t, err.Error(), "dob")
}
