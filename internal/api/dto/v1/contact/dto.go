package contact

// ContactRequest represents a raw contact form submission as received on the
// wire. Validation happens in internal/api/validation, not via binding tags,
// so that a malformed field yields a per-field message instead of an abort.
type ContactRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// Submission is a validated, normalized contact form submission.
// It is request-scoped and never persisted.
type Submission struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Company     string
	ServiceType string
	Message     string
}

// FullName returns the submitter's display name.
func (s Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// ServiceTypes is the published service-type enum for the contact form.
var ServiceTypes = []string{
	"ai-strategy",
	"cloud-migration",
	"software-development",
	"data-analytics",
	"security",
	"other",
}

// FormFields lists the accepted form fields, for the GET config response.
var FormFields = []string{
	"firstName",
	"lastName",
	"email",
	"phone",
	"company",
	"serviceType",
	"message",
}

// StatusResponse is returned by GET on the contact endpoint: the caller's
// current rate-limit budget plus the static form configuration.
type StatusResponse struct {
	Success   bool            `json:"success"`
	RateLimit RateLimitStatus `json:"rateLimit"`
	Form      FormConfig      `json:"form"`
}

// RateLimitStatus is an advisory (non-incrementing) view of a client's budget.
type RateLimitStatus struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"` // epoch ms
}

// FormConfig describes the contact form's static configuration.
type FormConfig struct {
	Fields       []string `json:"fields"`
	ServiceTypes []string `json:"serviceTypes"`
	WindowMs     int64    `json:"windowMs"`
}
