package dto

import "fmt"

type ApplicationStatus string

const (
	StatusPending    ApplicationStatus = "pending"
	StatusPaid       ApplicationStatus = "paid"
	StatusProcessing ApplicationStatus = "processing"
	StatusApproved   ApplicationStatus = "approved"
	StatusRejected   ApplicationStatus = "rejected"
)

type ServiceType string

const (
	ServiceNew          ServiceType = "new"
	ServiceCorrection   ServiceType = "correction"
	ServiceDuplicate    ServiceType = "duplicate"
	ServiceLost         ServiceType = "lost"
	ServiceMinorToMajor ServiceType = "minor-to-major"
	ServiceMarriage     ServiceType = "marriage"
	ServicePAN2         ServiceType = "pan2"
)

// Application mirrors one row of the applications table in the record store.
// Optional columns decode to zero values; the renderer treats those as blank
// fields rather than errors.
type Application struct {
	ID            string            `json:"id"`
	ApplicationNo string            `json:"application_no"`
	ServiceType   ServiceType       `json:"service_type"`
	Status        ApplicationStatus `json:"status"`

	// Identity
	Title         string `json:"title"`
	FullName      string `json:"full_name"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	LastName      string `json:"last_name"`
	PanPrintName  string `json:"pan_print_name"`
	HasOtherName  bool   `json:"has_other_name"`
	OtherTitle    string `json:"other_name_title"`
	OtherFirst    string `json:"other_first_name"`
	OtherMiddle   string `json:"other_middle_name"`
	OtherLast     string `json:"other_last_name"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"` // ISO calendar date YYYY-MM-DD
	ApplicantType string `json:"applicant_status"`
	PANNumber     string `json:"pan_number"`

	// Parentage
	FatherName     string `json:"father_name"`
	MotherFirst    string `json:"mother_first_name"`
	MotherMiddle   string `json:"mother_middle_name"`
	MotherLast     string `json:"mother_last_name"`
	IsSingleParent bool   `json:"is_single_parent"`
	ParentOnCard   string `json:"parent_on_card"`

	// Residence address
	FlatDoorBlock    string `json:"flat_door_block"`
	PremisesBuilding string `json:"premises_building"`
	RoadStreetLane   string `json:"road_street_lane"`
	AreaLocality     string `json:"area_locality"`
	AddressLine1     string `json:"address_line1"`
	AddressLine2     string `json:"address_line2"`
	City             string `json:"city"`
	State            string `json:"state"`
	Pincode          string `json:"pincode"`
	Country          string `json:"country"`

	// Office address (entirely optional; presence of name or flat activates
	// the whole block on the form)
	OfficeName     string `json:"office_name"`
	OfficeFlat     string `json:"office_flat"`
	OfficePremises string `json:"office_premises"`
	OfficeRoad     string `json:"office_road"`
	OfficeArea     string `json:"office_area"`
	OfficeCity     string `json:"office_city"`
	OfficeState    string `json:"office_state"`
	OfficePincode  string `json:"office_pincode"`
	OfficeCountry  string `json:"office_country"`

	// Contact
	CommunicationAddress string `json:"communication_address"`
	CountryCode          string `json:"country_code"`
	STDCode              string `json:"std_code"`
	Mobile               string `json:"mobile"`
	Email                string `json:"email"`

	// Aadhaar
	AadhaarNumber       string `json:"aadhaar_number"`
	AadhaarEnrollmentID string `json:"aadhaar_enrollment_id"`
	NameAsPerAadhaar    string `json:"name_as_per_aadhaar"`

	// Income and proofs
	SourceOfIncome  []string `json:"source_of_income"`
	ProofOfIdentity string   `json:"proof_of_identity"`
	ProofOfAddress  string   `json:"proof_of_address"`
	ProofOfDOB      string   `json:"proof_of_dob"`

	// Declaration
	DeclarationPlace string `json:"declaration_place"`
	DeclarationDate  string `json:"declaration_date"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RenderReady reports whether the record carries the columns the intake form
// marks as mandatory. Everything else may be blank; the renderer degrades to
// empty fields.
func (a *Application) RenderReady() error {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", a.FullName},
		{"father_name", a.FatherName},
		{"dob", a.DOB},
		{"aadhaar_number", a.AadhaarNumber},
	}

	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrRecordIncomplete, f.name)
		}
	}
	return nil
}
