package service

// Page geometry and drawing constants for the Form 49A template. All
// coordinates are PDF points measured from the bottom-left of an A4 page and
// are tied to the TemplateRevision asset; replace the whole table when the
// template changes.
const (
	pageWidth  = 595.28
	pageHeight = 841.89

	// One character cell of the grid fields.
	cellPitch    = 12.8
	cellFontSize = 9.0

	freeTextSize  = 8.0
	smallTextSize = 7.0

	// TemplateRevision identifies the blank form asset this coordinate
	// table was measured against.
	TemplateRevision = "49A-2017"
	revisionMarker   = "49A"
)

type fieldPos struct {
	x, y     float64
	maxChars int
}

type imageBox struct {
	x, y, w, h float64
}

func grid(x, y float64, maxChars int) fieldPos { return fieldPos{x: x, y: y, maxChars: maxChars} }
func point(x, y float64) fieldPos              { return fieldPos{x: x, y: y} }

// page1Coords holds every fillable element of page 1.
var page1Coords = struct {
	// Section 1: title checkboxes and name grid
	TitleShri, TitleSmt, TitleKumari fieldPos
	LastName, FirstName, MiddleName  fieldPos

	// Section 2: name to be printed on the card
	PanPrintName fieldPos

	// Section 3: other name
	OtherNameYes, OtherNameNo                       fieldPos
	OtherTitleShri, OtherTitleSmt, OtherTitleKumari fieldPos
	OtherLastName, OtherFirstName, OtherMiddleName  fieldPos

	// Section 4: gender
	GenderMale, GenderFemale, GenderTransgender fieldPos

	// Section 5: date of birth
	DOBDay, DOBMonth, DOBYear fieldPos

	// Section 6: parents
	SingleParentYes, SingleParentNo       fieldPos
	FatherLast, FatherFirst, FatherMiddle fieldPos
	MotherLast, MotherFirst, MotherMiddle fieldPos
	ParentFather, ParentMother            fieldPos

	// Section 7: residence address
	AddrFlat, AddrPremises, AddrRoad, AddrArea, AddrCity fieldPos
	AddrState, AddrPincode, AddrCountry                  fieldPos

	// Photograph, pasted twice
	PhotoLeft, PhotoRight imageBox
}{
	TitleShri:   point(270, 671),
	TitleSmt:    point(352, 671),
	TitleKumari: point(432, 671),

	LastName:   grid(132, 649, 25),
	FirstName:  grid(132, 633, 25),
	MiddleName: grid(132, 617, 25),

	PanPrintName: grid(55, 585, 35),

	OtherNameYes:     point(374, 560),
	OtherNameNo:      point(436, 560),
	OtherTitleShri:   point(270, 541),
	OtherTitleSmt:    point(352, 541),
	OtherTitleKumari: point(432, 541),
	OtherLastName:    grid(132, 524, 25),
	OtherFirstName:   grid(132, 508, 25),
	OtherMiddleName:  grid(132, 492, 25),

	GenderMale:        point(340, 473),
	GenderFemale:      point(418, 473),
	GenderTransgender: point(500, 473),

	DOBDay:   grid(68, 441, 2),
	DOBMonth: grid(112, 441, 2),
	DOBYear:  grid(162, 441, 4),

	SingleParentYes: point(56, 398),
	SingleParentNo:  point(97, 398),
	FatherLast:      grid(132, 367, 25),
	FatherFirst:     grid(132, 351, 25),
	FatherMiddle:    grid(132, 335, 25),
	MotherLast:      grid(132, 303, 25),
	MotherFirst:     grid(132, 287, 25),
	MotherMiddle:    grid(132, 271, 25),
	ParentFather:    point(68, 248),
	ParentMother:    point(160, 248),

	AddrFlat:     grid(132, 202, 25),
	AddrPremises: grid(132, 186, 25),
	AddrRoad:     grid(132, 170, 25),
	AddrArea:     grid(132, 154, 25),
	AddrCity:     grid(132, 138, 25),
	AddrState:    point(55, 118),
	AddrPincode:  grid(340, 118, 6),
	AddrCountry:  point(470, 118),

	PhotoLeft:  imageBox{x: 28, y: pageHeight - 105, w: 71, h: 99},
	PhotoRight: imageBox{x: pageWidth - 100, y: pageHeight - 105, w: 71, h: 99},
}

// page2Coords holds every fillable element of page 2.
var page2Coords = struct {
	// Office address block
	OfficeName, OfficeFlat, OfficePremises, OfficeRoad fieldPos
	OfficeArea, OfficeCity                             fieldPos
	OfficeState, OfficePincode, OfficeCountry          fieldPos

	// Section 8: address for communication
	CommResidence, CommOffice fieldPos

	// Section 9: contact
	CountryCode, STDCode, Mobile, Email fieldPos

	// Section 10: status of applicant
	StatusIndividual fieldPos

	// Section 12: Aadhaar
	Aadhaar, AadhaarEnrollment, AadhaarName fieldPos

	// Section 13: source of income
	IncomeSalary, IncomeCapitalGains, IncomeBusiness fieldPos
	IncomeOther, IncomeHouse, IncomeNoIncome         fieldPos

	// Section 15: document proofs
	ProofIdentity, ProofAddress, ProofDOB fieldPos

	// Section 16: declaration
	DeclarationName, DeclarationPlace, DeclarationDate fieldPos

	Signature imageBox
}{
	OfficeName:     grid(132, 790, 25),
	OfficeFlat:     grid(132, 774, 25),
	OfficePremises: grid(132, 758, 25),
	OfficeRoad:     grid(132, 742, 25),
	OfficeArea:     grid(132, 726, 25),
	OfficeCity:     grid(132, 710, 25),
	OfficeState:    point(55, 690),
	OfficePincode:  grid(340, 690, 6),
	OfficeCountry:  point(470, 690),

	CommResidence: point(353, 660),
	CommOffice:    point(455, 660),

	CountryCode: grid(100, 633, 4),
	STDCode:     grid(195, 633, 5),
	Mobile:      grid(340, 633, 10),
	Email:       point(100, 610),

	StatusIndividual: point(56, 565),

	Aadhaar:           grid(280, 490, 12),
	AadhaarEnrollment: grid(280, 470, 28),
	AadhaarName:       point(55, 445),

	IncomeSalary:       point(56, 370),
	IncomeCapitalGains: point(540, 380),
	IncomeBusiness:     point(56, 355),
	IncomeOther:        point(540, 365),
	IncomeHouse:        point(56, 340),
	IncomeNoIncome:     point(540, 350),

	ProofIdentity: point(200, 200),
	ProofAddress:  point(200, 185),
	ProofDOB:      point(460, 200),

	DeclarationName:  point(65, 155),
	DeclarationPlace: point(100, 125),
	DeclarationDate:  point(65, 105),

	Signature: imageBox{x: 430, y: 80, w: 120, h: 40},
}
