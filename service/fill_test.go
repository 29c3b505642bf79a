package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panmitra/form49a-service/dto"
)

func sampleApplication() *dto.Application {
	return &dto.Application{
		ID:            "a2c1",
		ApplicationNo: "PAN2025000123",
		Title:         "shri",
		FullName:      "Ravi Kumar Sharma",
		Gender:        "male",
		DOB:           "1990-07-04",
		FatherName:    "Suresh Sharma",
		City:          "Mumbai",
		State:         "Maharashtra",
		Pincode:       "400001",
		Mobile:        "9876543210",
		Email:         "ravi@example.com",

		CommunicationAddress: "residence",
		AadhaarNumber:        "1234 5678 9012",
		SourceOfIncome:       []string{"salary"},
		CreatedAt:            "2025-03-15T10:30:00Z",
	}
}

func TestFillPage1Identity(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()

	warnings := fillPage1(rec, app)
	assert.Empty(t, warnings)

	assert.True(t, rec.hasMark(page1Coords.TitleShri))
	assert.False(t, rec.hasMark(page1Coords.TitleSmt))
	assert.False(t, rec.hasMark(page1Coords.TitleKumari))

	// Name decomposed from full_name: first name row spells RAVI.
	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	row := page1Coords.FirstName
	assert.Equal(t, "R", rec.textAt(row.x+inset, row.y))
	assert.Equal(t, "A", rec.textAt(row.x+cellPitch+inset, row.y))
	assert.Equal(t, "V", rec.textAt(row.x+2*cellPitch+inset, row.y))
	assert.Equal(t, "I", rec.textAt(row.x+3*cellPitch+inset, row.y))

	// Surname row spells SHARMA, middle row KUMAR.
	assert.Equal(t, "S", rec.textAt(page1Coords.LastName.x+inset, page1Coords.LastName.y))
	assert.Equal(t, "K", rec.textAt(page1Coords.MiddleName.x+inset, page1Coords.MiddleName.y))

	assert.True(t, rec.hasMark(page1Coords.GenderMale))
	assert.False(t, rec.hasMark(page1Coords.GenderFemale))

	// DOB 1990-07-04 lands as 04 / 07 / 1990.
	assert.Equal(t, "0", rec.textAt(page1Coords.DOBDay.x+inset, page1Coords.DOBDay.y))
	assert.Equal(t, "4", rec.textAt(page1Coords.DOBDay.x+cellPitch+inset, page1Coords.DOBDay.y))
	assert.Equal(t, "1", rec.textAt(page1Coords.DOBYear.x+inset, page1Coords.DOBYear.y))

	// Father's surname row spells SHARMA.
	assert.Equal(t, "S", rec.textAt(page1Coords.FatherLast.x+inset, page1Coords.FatherLast.y))

	// No alias: the "no" box is marked.
	assert.True(t, rec.hasMark(page1Coords.OtherNameNo))
	assert.False(t, rec.hasMark(page1Coords.OtherNameYes))
}

func TestFillPage1ExplicitNamePartsWin(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.FirstName = "Anil"
	app.LastName = "Verma"

	fillPage1(rec, app)

	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	assert.Equal(t, "A", rec.textAt(page1Coords.FirstName.x+inset, page1Coords.FirstName.y))
	assert.Equal(t, "V", rec.textAt(page1Coords.LastName.x+inset, page1Coords.LastName.y))
}

func TestFillPage1PartialNamePartsFallBack(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.FirstName = "Ravi"

	fillPage1(rec, app)

	// The missing surname and middle name come from the full name even
	// though the first name is explicit.
	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	assert.Equal(t, "R", rec.textAt(page1Coords.FirstName.x+inset, page1Coords.FirstName.y))
	assert.Equal(t, "S", rec.textAt(page1Coords.LastName.x+inset, page1Coords.LastName.y))
	assert.Equal(t, "K", rec.textAt(page1Coords.MiddleName.x+inset, page1Coords.MiddleName.y))
}

func TestFillPage1UnrecognizedTitle(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.Title = "dr"

	warnings := fillPage1(rec, app)

	assert.False(t, rec.hasMark(page1Coords.TitleShri))
	assert.False(t, rec.hasMark(page1Coords.TitleSmt))
	assert.False(t, rec.hasMark(page1Coords.TitleKumari))

	found := false
	for _, w := range warnings {
		if w.Field == "title" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFillPage1BadDOB(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.DOB = "04/07/1990"

	warnings := fillPage1(rec, app)

	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	assert.Equal(t, "", rec.textAt(page1Coords.DOBDay.x+inset, page1Coords.DOBDay.y))

	found := false
	for _, w := range warnings {
		if w.Field == "dob" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFillPage1OtherName(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.HasOtherName = true
	app.OtherTitle = "smt"
	app.OtherFirst = "Rani"
	app.OtherLast = "Sharma"

	fillPage1(rec, app)

	assert.True(t, rec.hasMark(page1Coords.OtherNameYes))
	assert.False(t, rec.hasMark(page1Coords.OtherNameNo))
	assert.True(t, rec.hasMark(page1Coords.OtherTitleSmt))

	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	assert.Equal(t, "R", rec.textAt(page1Coords.OtherFirstName.x+inset, page1Coords.OtherFirstName.y))
}

func TestFillPage1AddressFallbacks(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.FlatDoorBlock = ""
	app.AddressLine1 = "12-B Marine Drive"

	fillPage1(rec, app)

	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	assert.Equal(t, "1", rec.textAt(page1Coords.AddrFlat.x+inset, page1Coords.AddrFlat.y))

	// Country defaults to India when the record leaves it blank.
	assert.Equal(t, "India", rec.textAt(page1Coords.AddrCountry.x, page1Coords.AddrCountry.y))
}

func TestFillPage1UnknownState(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.State = "Atlantis"

	warnings := fillPage1(rec, app)

	// Still printed, but flagged.
	assert.Equal(t, "Atlantis", rec.textAt(page1Coords.AddrState.x, page1Coords.AddrState.y))
	found := false
	for _, w := range warnings {
		if w.Field == "state" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFillPage2Contact(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()

	warnings := fillPage2(rec, app)
	assert.Empty(t, warnings)

	assert.True(t, rec.hasMark(page2Coords.CommResidence))
	assert.False(t, rec.hasMark(page2Coords.CommOffice))

	// Default country code +91 enters the cells without the plus sign.
	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	assert.Equal(t, "9", rec.textAt(page2Coords.CountryCode.x+inset, page2Coords.CountryCode.y))
	assert.Equal(t, "1", rec.textAt(page2Coords.CountryCode.x+cellPitch+inset, page2Coords.CountryCode.y))

	assert.Equal(t, "9", rec.textAt(page2Coords.Mobile.x+inset, page2Coords.Mobile.y))
	assert.Equal(t, "ravi@example.com", rec.textAt(page2Coords.Email.x, page2Coords.Email.y))

	// Blank applicant status defaults to individual.
	assert.True(t, rec.hasMark(page2Coords.StatusIndividual))
}

func TestFillPage2Aadhaar(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()

	fillPage2(rec, app)

	// All 12 digits land in consecutive cells, grouping spaces stripped.
	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	digits := "123456789012"
	for i, d := range digits {
		x := page2Coords.Aadhaar.x + float64(i)*cellPitch + inset
		assert.Equal(t, string(d), rec.textAt(x, page2Coords.Aadhaar.y))
	}
}

func TestFillPage2Income(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.SourceOfIncome = []string{"salary", "business"}

	warnings := fillPage2(rec, app)
	assert.Empty(t, warnings)

	assert.True(t, rec.hasMark(page2Coords.IncomeSalary))
	assert.True(t, rec.hasMark(page2Coords.IncomeBusiness))
	assert.False(t, rec.hasMark(page2Coords.IncomeCapitalGains))
	assert.False(t, rec.hasMark(page2Coords.IncomeNoIncome))
}

func TestFillPage2UnknownIncomeTag(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()
	app.SourceOfIncome = []string{"lottery"}

	warnings := fillPage2(rec, app)

	found := false
	for _, w := range warnings {
		if w.Field == "source_of_income" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFillPage2OfficeBlockGating(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()

	fillPage2(rec, app)

	inset := (cellPitch - cellFontSize*courierAdvance) / 2
	assert.Equal(t, "", rec.textAt(page2Coords.OfficeName.x+inset, page2Coords.OfficeName.y))

	rec = &recorderCanvas{}
	app.OfficeName = "Acme Ltd"
	app.OfficeCity = "Pune"

	fillPage2(rec, app)

	assert.Equal(t, "A", rec.textAt(page2Coords.OfficeName.x+inset, page2Coords.OfficeName.y))
	assert.Equal(t, "P", rec.textAt(page2Coords.OfficeCity.x+inset, page2Coords.OfficeCity.y))
}

func TestFillPage2Declaration(t *testing.T) {
	rec := &recorderCanvas{}
	app := sampleApplication()

	fillPage2(rec, app)

	assert.Equal(t, "Ravi Kumar Sharma", rec.textAt(page2Coords.DeclarationName.x, page2Coords.DeclarationName.y))
	// Place falls back to the residence city, date to created_at.
	assert.Equal(t, "Mumbai", rec.textAt(page2Coords.DeclarationPlace.x, page2Coords.DeclarationPlace.y))
	assert.Equal(t, "15/03/2025", rec.textAt(page2Coords.DeclarationDate.x, page2Coords.DeclarationDate.y))

	// Proofs default to the Aadhaar card.
	assert.Equal(t, "Aadhaar Card", rec.textAt(page2Coords.ProofIdentity.x, page2Coords.ProofIdentity.y))
	assert.Equal(t, "Aadhaar Card", rec.textAt(page2Coords.ProofDOB.x, page2Coords.ProofDOB.y))
}
