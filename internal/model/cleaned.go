package model

// CleanedDocument is the output file. Field order of every struct here is the
// order fields are written.
type CleanedDocument struct {
	CountyResources []CountyResources `json:"county_resources"`
}

// CountyResources groups one county's cleaned resources by type.
type CountyResources struct {
	County         string               `json:"county"`
	DepartmentName string               `json:"department_name"`
	Population     Population           `json:"population"`
	Link           string               `json:"link"`
	PhoneNumbers   []CleanedPhoneNumber `json:"phone_numbers"`
	FacilityNames  []CleanedFacility    `json:"facility_names"`
	Addresses      []CleanedAddress     `json:"addresses"`
}

type CleanedPhoneNumber struct {
	Number string   `json:"number"`
	Tags   []string `json:"tags"`
}

type CleanedFacility struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// CleanedAddress holds a two-line address or the literal "Unknown".
type CleanedAddress struct {
	Address string   `json:"address"`
	Tags    []string `json:"tags"`
}
