package models

// RegistrationWindow is the date and time range of the registration slot.
type RegistrationWindow struct {
	Date string `json:"date"`
	From string `json:"from"`
	To   string `json:"to"`
}

// RegistrationAudience describes who the semester document addresses.
type RegistrationAudience struct {
	CohortText      string `json:"cohortText"`
	CreditsRuleText string `json:"creditsRuleText"`
}

// Contact is a person reachable by email.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegistrationContacts are the per-facet contact lists.
type RegistrationContacts struct {
	AcademicAdvisors    []Contact `json:"academicAdvisors"`
	Labs                []Contact `json:"labs"`
	Mentors             []Contact `json:"mentors"`
	Exemptions          []Contact `json:"exemptions"`
	RegistrationSupport []Contact `json:"registrationSupport"`
}

// KeyRule is one free-text registration rule, optionally coded.
type KeyRule struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Link is a labelled reference URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// RegistrationGuideline is the typed view of one semester's guideline
// document. The persisted form is a JSONB document merged on save, so
// fields absent from a save payload survive.
type RegistrationGuideline struct {
	SemesterNumber     int                  `json:"semesterNumber"`
	Title              string               `json:"title"`
	RegistrationWindow RegistrationWindow   `json:"registrationWindow"`
	Audience           RegistrationAudience `json:"audience"`
	Contacts           RegistrationContacts `json:"contacts"`
	KeyRules           []KeyRule            `json:"keyRules"`
	Links              []Link               `json:"links"`
}
