package model

// RawDocument mirrors the scraped input file.
type RawDocument struct {
	Results []CountyResult `json:"results" validate:"dive"`
}

// CountyResult is one county's department record with its unprocessed resources.
// Population round-trips untouched, including null.
type CountyResult struct {
	County         string        `json:"county" validate:"required"`
	DepartmentName string        `json:"department_name"`
	Population     Population    `json:"population"`
	URL            string        `json:"url"`
	Resources      []RawResource `json:"resources" validate:"dive"`
}

// RawResource is a single extracted value tagged with its type.
type RawResource struct {
	Type  string   `json:"type"`
	Value string   `json:"value"`
	Tags  []string `json:"tags"`
}
