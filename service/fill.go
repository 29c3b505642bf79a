package service

import (
	"strings"

	"github.com/panmitra/form49a-service/dto"
	"github.com/panmitra/form49a-service/utils"
)

const defaultProofDocument = "Aadhaar Card"

// fieldWarnings collects the fields that rendered blank or partial. Field
// mapping itself never fails; the worst case is an empty cell plus a warning.
type fieldWarnings struct {
	list []dto.FieldWarning
}

func (w *fieldWarnings) add(field, reason string) {
	w.list = append(w.list, dto.FieldWarning{Field: field, Reason: reason})
}

// fillPage1 maps the identity, parentage and residence-address fields of the
// record onto page 1 of the form.
func fillPage1(c Canvas, app *dto.Application) []dto.FieldWarning {
	warnings := &fieldWarnings{}
	coords := page1Coords

	// Title checkboxes are mutually exclusive; an unrecognized value marks
	// nothing.
	switch strings.ToLower(app.Title) {
	case "shri":
		fillCheck(c, coords.TitleShri)
	case "smt":
		fillCheck(c, coords.TitleSmt)
	case "kumari":
		fillCheck(c, coords.TitleKumari)
	case "":
	default:
		warnings.add("title", "unrecognized value "+app.Title)
	}

	// Explicit name parts win; each missing part falls back to the split
	// full name independently.
	dFirst, dMiddle, dLast := utils.DecomposeFullName(app.FullName)
	first, middle, last := app.FirstName, app.MiddleName, app.LastName
	if first == "" {
		first = dFirst
	}
	if middle == "" {
		middle = dMiddle
	}
	if last == "" {
		last = dLast
	}
	fillCharBoxes(c, coords.LastName, last)
	fillCharBoxes(c, coords.FirstName, first)
	fillCharBoxes(c, coords.MiddleName, middle)

	printName := app.PanPrintName
	if printName == "" {
		printName = app.FullName
	}
	fillCharBoxes(c, coords.PanPrintName, printName)

	if app.HasOtherName {
		fillCheck(c, coords.OtherNameYes)
		switch strings.ToLower(app.OtherTitle) {
		case "shri":
			fillCheck(c, coords.OtherTitleShri)
		case "smt":
			fillCheck(c, coords.OtherTitleSmt)
		case "kumari":
			fillCheck(c, coords.OtherTitleKumari)
		}
		fillCharBoxes(c, coords.OtherLastName, app.OtherLast)
		fillCharBoxes(c, coords.OtherFirstName, app.OtherFirst)
		fillCharBoxes(c, coords.OtherMiddleName, app.OtherMiddle)
	} else {
		fillCheck(c, coords.OtherNameNo)
	}

	switch strings.ToLower(app.Gender) {
	case "male":
		fillCheck(c, coords.GenderMale)
	case "female":
		fillCheck(c, coords.GenderFemale)
	case "transgender":
		fillCheck(c, coords.GenderTransgender)
	case "":
	default:
		warnings.add("gender", "unrecognized value "+app.Gender)
	}

	if day, month, year, ok := utils.DecomposeISODate(app.DOB); ok {
		fillCharBoxes(c, coords.DOBDay, day)
		fillCharBoxes(c, coords.DOBMonth, month)
		fillCharBoxes(c, coords.DOBYear, year)
	} else if app.DOB != "" {
		warnings.add("dob", "not an ISO date: "+app.DOB)
	}

	if app.IsSingleParent {
		fillCheck(c, coords.SingleParentYes)
	} else {
		fillCheck(c, coords.SingleParentNo)
	}

	fatherFirst, fatherMiddle, fatherLast := utils.DecomposeFullName(app.FatherName)
	fillCharBoxes(c, coords.FatherLast, fatherLast)
	fillCharBoxes(c, coords.FatherFirst, fatherFirst)
	fillCharBoxes(c, coords.FatherMiddle, fatherMiddle)

	fillCharBoxes(c, coords.MotherLast, app.MotherLast)
	fillCharBoxes(c, coords.MotherFirst, app.MotherFirst)
	fillCharBoxes(c, coords.MotherMiddle, app.MotherMiddle)

	switch strings.ToLower(app.ParentOnCard) {
	case "father":
		fillCheck(c, coords.ParentFather)
	case "mother":
		fillCheck(c, coords.ParentMother)
	}

	flat := app.FlatDoorBlock
	if flat == "" {
		flat = app.AddressLine1
	}
	fillCharBoxes(c, coords.AddrFlat, flat)
	fillCharBoxes(c, coords.AddrPremises, app.PremisesBuilding)
	fillCharBoxes(c, coords.AddrRoad, app.RoadStreetLane)
	fillCharBoxes(c, coords.AddrArea, app.AreaLocality)
	fillCharBoxes(c, coords.AddrCity, app.City)
	fillText(c, coords.AddrState, app.State, freeTextSize)
	if app.State != "" && !dto.IsIndianState(app.State) {
		warnings.add("state", "not a recognized state: "+app.State)
	}
	fillCharBoxes(c, coords.AddrPincode, app.Pincode)
	country := app.Country
	if country == "" {
		country = "India"
	}
	fillText(c, coords.AddrCountry, country, freeTextSize)

	return warnings.list
}

// fillPage2 maps the office address, contact, Aadhaar, income and
// declaration fields onto page 2 of the form.
func fillPage2(c Canvas, app *dto.Application) []dto.FieldWarning {
	warnings := &fieldWarnings{}
	coords := page2Coords

	// The office block renders in full or not at all.
	if app.OfficeName != "" || app.OfficeFlat != "" {
		fillCharBoxes(c, coords.OfficeName, app.OfficeName)
		fillCharBoxes(c, coords.OfficeFlat, app.OfficeFlat)
		fillCharBoxes(c, coords.OfficePremises, app.OfficePremises)
		fillCharBoxes(c, coords.OfficeRoad, app.OfficeRoad)
		fillCharBoxes(c, coords.OfficeArea, app.OfficeArea)
		fillCharBoxes(c, coords.OfficeCity, app.OfficeCity)
		fillText(c, coords.OfficeState, app.OfficeState, freeTextSize)
		fillCharBoxes(c, coords.OfficePincode, app.OfficePincode)
		fillText(c, coords.OfficeCountry, app.OfficeCountry, freeTextSize)
	}

	switch strings.ToLower(app.CommunicationAddress) {
	case "residence":
		fillCheck(c, coords.CommResidence)
	case "office":
		fillCheck(c, coords.CommOffice)
	case "":
	default:
		warnings.add("communication_address", "unrecognized value "+app.CommunicationAddress)
	}

	countryCode := app.CountryCode
	if countryCode == "" {
		countryCode = "+91"
	}
	fillCharBoxes(c, coords.CountryCode, strings.ReplaceAll(countryCode, "+", ""))
	if app.STDCode != "" {
		fillCharBoxes(c, coords.STDCode, app.STDCode)
	}
	fillCharBoxes(c, coords.Mobile, app.Mobile)
	fillText(c, coords.Email, app.Email, smallTextSize)

	// Only the individual status has a checkbox on this revision.
	applicantType := app.ApplicantType
	if applicantType == "" {
		applicantType = "individual"
	}
	if strings.ToLower(applicantType) == "individual" {
		fillCheck(c, coords.StatusIndividual)
	}

	fillCharBoxes(c, coords.Aadhaar, utils.NormalizeAadhaar(app.AadhaarNumber))
	if app.AadhaarEnrollmentID != "" {
		fillCharBoxes(c, coords.AadhaarEnrollment, app.AadhaarEnrollmentID)
	}
	if app.NameAsPerAadhaar != "" {
		fillText(c, coords.AadhaarName, app.NameAsPerAadhaar, freeTextSize)
	}

	// Income sources are a multi-select: one independent mark per matched
	// tag, no exclusivity enforced here.
	incomeMarks := map[string]fieldPos{
		"salary":         coords.IncomeSalary,
		"capital_gains":  coords.IncomeCapitalGains,
		"business":       coords.IncomeBusiness,
		"other_sources":  coords.IncomeOther,
		"house_property": coords.IncomeHouse,
		"no_income":      coords.IncomeNoIncome,
	}
	for _, tag := range app.SourceOfIncome {
		if pos, ok := incomeMarks[tag]; ok {
			fillCheck(c, pos)
		} else {
			warnings.add("source_of_income", "unrecognized tag "+tag)
		}
	}

	proofIdentity := app.ProofOfIdentity
	if proofIdentity == "" {
		proofIdentity = defaultProofDocument
	}
	proofAddress := app.ProofOfAddress
	if proofAddress == "" {
		proofAddress = defaultProofDocument
	}
	proofDOB := app.ProofOfDOB
	if proofDOB == "" {
		proofDOB = defaultProofDocument
	}
	fillText(c, coords.ProofIdentity, proofIdentity, smallTextSize)
	fillText(c, coords.ProofAddress, proofAddress, smallTextSize)
	fillText(c, coords.ProofDOB, proofDOB, smallTextSize)

	fillText(c, coords.DeclarationName, app.FullName, freeTextSize)
	place := app.DeclarationPlace
	if place == "" {
		place = app.City
	}
	fillText(c, coords.DeclarationPlace, place, freeTextSize)

	date := app.DeclarationDate
	if date == "" {
		date = utils.DeclarationDate(app.CreatedAt)
		if date == "" && app.CreatedAt != "" {
			warnings.add("declaration_date", "unparseable created_at: "+app.CreatedAt)
		}
	}
	fillText(c, coords.DeclarationDate, date, freeTextSize)

	return warnings.list
}
