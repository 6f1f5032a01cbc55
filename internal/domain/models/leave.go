package models

type SickLeaveEligibility struct {
	EmploymentTypes []string `json:"employment_types"`
	Departments     []string `json:"departments"`
	MinServiceDays  int      `json:"min_service_days"`
}

type SickLeaveEntitlement struct {
	DaysPerYear                  int  `json:"days_per_year"`
	Paid                         bool `json:"paid"`
	CertificateRequiredAfterDays int  `json:"certificate_required_after_days"`
	CarryOver                    bool `json:"carry_over"`
}

// SickLeavePolicy is what the sick-leave setup wizard publishes.
type SickLeavePolicy struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Eligibility SickLeaveEligibility `json:"eligibility"`
	Entitlement SickLeaveEntitlement `json:"entitlement"`
}
