package nlp

// Question kinds produced by the course classifier.
const (
	KindLookup   = "lookup"
	KindRelation = "relation"
)

// Relation intents extracted from question phrasing.
const (
	RelationIntentBefore   = "before"
	RelationIntentParallel = "parallel"
	RelationIntentGeneral  = "general"
)

// Lab question intents.
const (
	LabIntentQuery = "lab_query"
	LabIntentNext  = "next_lab"
)

// Lab time windows.
const (
	LabTimeToday    = "today"
	LabTimeTomorrow = "tomorrow"
	LabTimeWeek     = "week"
	LabTimeAll      = "all"
)

// Emotion classifier intents.
const (
	EmotionSupport = "emotional_support"
	EmotionOther   = "other"
)

// Registration facets.
const (
	RegIntentWindow     = "window"
	RegIntentAdvisors   = "advisors"
	RegIntentLabs       = "labs"
	RegIntentLinks      = "links"
	RegIntentCredits    = "credits"
	RegIntentExemptions = "exemptions"
	RegIntentContacts   = "contacts"
	RegIntentMentors    = "mentors"
	RegIntentInternship = "internship"
	RegIntentRules      = "rules"
	RegIntentGeneral    = "general"
)

// CourseClassification is the course classifier output: the question kind
// plus the raw course references to resolve against the yearbook.
type CourseClassification struct {
	Kind    string `json:"kind"`
	CourseA string `json:"courseA"`
	CourseB string `json:"courseB"`
}

// EmotionClassification is the distress classifier output.
type EmotionClassification struct {
	Intent string `json:"intent"`
}

// LabClassification describes a lab-schedule question: which course and
// session, over which time window.
type LabClassification struct {
	Intent  string `json:"intent"`
	Course  string `json:"course"`
	Session string `json:"session"`
	Time    string `json:"time"`
}

// RegistrationClassification carries the registration facet.
type RegistrationClassification struct {
	Intent string `json:"intent"`
}
