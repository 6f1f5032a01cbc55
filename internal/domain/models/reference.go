package models

type Country struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

type Department struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type EmploymentType struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ReferenceData is passed explicitly to whatever needs lookup lists.
type ReferenceData struct {
	Countries       []Country        `json:"countries" yaml:"countries"`
	Departments     []Department     `json:"departments" yaml:"departments"`
	EmploymentTypes []EmploymentType `json:"employment_types" yaml:"employment_types"`
}

// Values returns the display names of a reference kind ("country", "department", "employment_type").
func (r ReferenceData) Values(kind string) []string {
	var out []string
	switch kind {
	case "country":
		for _, c := range r.Countries {
			out = append(out, c.Name)
		}
	case "department":
		for _, d := range r.Departments {
			out = append(out, d.Name)
		}
	case "employment_type":
		for _, e := range r.EmploymentTypes {
			out = append(out, e.Name)
		}
	}
	return out
}
