// Package types defines the canonical resume record and the shared
// empty-state defaults used by the normalizer and the response extractor.
package types

// Contact holds identifying and contact information for the candidate.
type Contact struct {
	FullName *string  `json:"full_name" validate:"omitempty,notblank"`
	Email    *string  `json:"email" validate:"omitempty,notblank"`
	Phone    *string  `json:"phone" validate:"omitempty,notblank"`
	Location *string  `json:"location" validate:"omitempty,notblank"`
	Links    []string `json:"links" validate:"dive,notblank"`
}

// Experience is a single employment entry. Dates are YYYY-MM-DD strings or
// nil, never invented by the pipeline.
type Experience struct {
	Title          *string  `json:"title" validate:"omitempty,notblank"`
	Company        *string  `json:"company" validate:"omitempty,notblank"`
	Location       *string  `json:"location" validate:"omitempty,notblank"`
	StartDate      *string  `json:"start_date" validate:"omitempty,notblank"`
	EndDate        *string  `json:"end_date" validate:"omitempty,notblank"`
	Current        bool     `json:"current"`
	Bullets        []string `json:"bullets" validate:"dive,notblank"`
	Technologies   []string `json:"technologies" validate:"dive,notblank"`
	EmploymentType *string  `json:"employment_type" validate:"omitempty,notblank"`
}

// Education is a single education entry.
type Education struct {
	Institution *string `json:"institution" validate:"omitempty,notblank"`
	Degree      *string `json:"degree" validate:"omitempty,notblank"`
	Field       *string `json:"field" validate:"omitempty,notblank"`
	StartDate   *string `json:"start_date" validate:"omitempty,notblank"`
	EndDate     *string `json:"end_date" validate:"omitempty,notblank"`
	GPA         *string `json:"gpa" validate:"omitempty,notblank"`
}

// Project is a single project entry.
type Project struct {
	Name    *string  `json:"name" validate:"omitempty,notblank"`
	Role    *string  `json:"role" validate:"omitempty,notblank"`
	Bullets []string `json:"bullets" validate:"dive,notblank"`
	Stack   []string `json:"stack" validate:"dive,notblank"`
	Link    *string  `json:"link" validate:"omitempty,notblank"`
	Outcome *string  `json:"outcome" validate:"omitempty,notblank"`
}

// Certification is a single certification entry. A certification without a
// name is not a certification; the repair pass drops such entries before the
// final validation attempt.
type Certification struct {
	Name         *string `json:"name" validate:"required,notblank"`
	Issuer       *string `json:"issuer" validate:"omitempty,notblank"`
	DateObtained *string `json:"date_obtained" validate:"omitempty,notblank"`
	CredentialID *string `json:"credential_id" validate:"omitempty,notblank"`
}

// Resume is the canonical validated document record produced by the pipeline.
// Every list field is always present in serialized form (empty list means
// "no data", never null), and every string leaf is either a non-empty trimmed
// string or nil.
type Resume struct {
	Contact         Contact         `json:"contact"`
	Summary         *string         `json:"summary" validate:"omitempty,notblank"`
	Experience      []Experience    `json:"experience" validate:"dive"`
	Education       []Education     `json:"education" validate:"dive"`
	Projects        []Project       `json:"projects" validate:"dive"`
	Skills          []string        `json:"skills" validate:"dive,notblank"`
	Certifications  []Certification `json:"certifications" validate:"dive"`
	Achievements    []string        `json:"achievements" validate:"dive,notblank"`
	Extracurricular []string        `json:"extracurricular" validate:"dive,notblank"`
	Languages       []string        `json:"languages" validate:"dive,notblank"`
	Interests       []string        `json:"interests" validate:"dive,notblank"`
}

// Canonicalize replaces nil slices with empty ones so the record serializes
// with every list field present. It returns the receiver for chaining.
func (r *Resume) Canonicalize() *Resume {
	if r.Contact.Links == nil {
		r.Contact.Links = []string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Bullets == nil {
			r.Experience[i].Bullets = []string{}
		}
		if r.Experience[i].Technologies == nil {
			r.Experience[i].Technologies = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Bullets == nil {
			r.Projects[i].Bullets = []string{}
		}
		if r.Projects[i].Stack == nil {
			r.Projects[i].Stack = []string{}
		}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Achievements == nil {
		r.Achievements = []string{}
	}
	if r.Extracurricular == nil {
		r.Extracurricular = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.Interests == nil {
		r.Interests = []string{}
	}
	return r
}
