package model

// ResourceRow is one cleaned resource flattened for columnar output.
type ResourceRow struct {
	RunID          string   `parquet:"run_id"`
	County         string   `parquet:"county"`
	DepartmentName string   `parquet:"department_name"`
	Population     string   `parquet:"population"`
	Link           string   `parquet:"link"`
	ResourceType   string   `parquet:"resource_type"`
	Position       int32    `parquet:"position"`
	Value          string   `parquet:"value"`
	Tags           []string `parquet:"tags,list"`
}

// FlattenResources emits one ResourceRow per cleaned resource, in output order.
// Position is the index within the county's list for that type.
func FlattenResources(doc *CleanedDocument, runID string) []ResourceRow {
	var rows []ResourceRow
	for _, c := range doc.CountyResources {
		base := ResourceRow{
			RunID:          runID,
			County:         c.County,
			DepartmentName: c.DepartmentName,
			Population:     c.Population.String(),
			Link:           c.Link,
		}
		for i, p := range c.PhoneNumbers {
			rows = append(rows, base.with(TypePhoneNumber, i, p.Number, p.Tags))
		}
		for i, f := range c.FacilityNames {
			rows = append(rows, base.with(TypeFacilityName, i, f.Name, f.Tags))
		}
		for i, a := range c.Addresses {
			rows = append(rows, base.with(TypeAddress, i, a.Address, a.Tags))
		}
	}
	return rows
}

func (r ResourceRow) with(typ string, pos int, value string, tags []string) ResourceRow {
	r.ResourceType = typ
	r.Position = int32(pos)
	r.Value = value
	r.Tags = tags
	return r
}
