package model

// ResourceType describes one kind of raw resource and where its cleaned form lands.
type ResourceType struct {
	Name  string // raw "type" tag, e.g. "phone_number"
	Field string // output list, e.g. "phone_numbers"
}

const (
	TypePhoneNumber  = "phone_number"
	TypeFacilityName = "facility_name"
	TypeAddress      = "address"
)

// AllResourceTypes lists the supported resource types in output order.
var AllResourceTypes = []ResourceType{
	{Name: TypePhoneNumber, Field: "phone_numbers"},
	{Name: TypeFacilityName, Field: "facility_names"},
	{Name: TypeAddress, Field: "addresses"},
}

// ResourceTypeNames returns the raw type tags of AllResourceTypes.
func ResourceTypeNames() []string {
	names := make([]string, len(AllResourceTypes))
	for i, rt := range AllResourceTypes {
		names[i] = rt.Name
	}
	return names
}

// ResourceTypeByName returns the ResourceType for the given raw tag, or ok=false.
func ResourceTypeByName(name string) (ResourceType, bool) {
	for _, rt := range AllResourceTypes {
		if rt.Name == name {
			return rt, true
		}
	}
	return ResourceType{}, false
}
