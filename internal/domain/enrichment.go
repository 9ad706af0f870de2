package domain

import "strings"

// Kind identifies which enrichment endpoint a request targets
type Kind int

const (
	KindCompany Kind = iota + 1
	KindContact
)

func (k Kind) String() string {
	switch k {
	case KindCompany:
		return "company"
	case KindContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Request is implemented by CompanyRequest and PersonRequest only.
type Request interface {
	Kind() Kind
	// Endpoint is the provider path relative to the API base URL
	Endpoint() string
	// Body is the JSON request body with absent optional fields omitted
	Body() map[string]string
}

// CompanyRequest looks up an organization by its website domain
type CompanyRequest struct {
	Domain      string
	LinkedInURL string
	Name        string
	CountryCode string
}

func (CompanyRequest) Kind() Kind { return KindCompany }

func (CompanyRequest) Endpoint() string { return "/organizations/enrich" }

// Normalize returns a copy with every field trimmed of surrounding whitespace
func (r CompanyRequest) Normalize() CompanyRequest {
	return CompanyRequest{
		Domain:      strings.TrimSpace(r.Domain),
		LinkedInURL: strings.TrimSpace(r.LinkedInURL),
		Name:        strings.TrimSpace(r.Name),
		CountryCode: strings.TrimSpace(r.CountryCode),
	}
}

func (r CompanyRequest) Body() map[string]string {
	n := r.Normalize()
	body := map[string]string{"domain": n.Domain}
	setIfPresent(body, "linkedin_url", n.LinkedInURL)
	setIfPresent(body, "name", n.Name)
	setIfPresent(body, "country", n.CountryCode)
	return body
}

// PersonRequest matches a person by email address
type PersonRequest struct {
	Email       string
	LinkedInURL string
	FirstName   string
	LastName    string
}

func (PersonRequest) Kind() Kind { return KindContact }

func (PersonRequest) Endpoint() string { return "/people/match" }

// Normalize returns a copy with every field trimmed of surrounding whitespace
func (r PersonRequest) Normalize() PersonRequest {
	return PersonRequest{
		Email:       strings.TrimSpace(r.Email),
		LinkedInURL: strings.TrimSpace(r.LinkedInURL),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
	}
}

func (r PersonRequest) Body() map[string]string {
	n := r.Normalize()
	body := map[string]string{"email": n.Email}
	setIfPresent(body, "linkedin_url", n.LinkedInURL)
	setIfPresent(body, "first_name", n.FirstName)
	setIfPresent(body, "last_name", n.LastName)
	return body
}

func setIfPresent(body map[string]string, key, value string) {
	if value != "" {
		body[key] = value
	}
}

// payloadKey is the top-level response key holding the enriched entity
func payloadKey(k Kind) string {
	if k == KindContact {
		return "person"
	}
	return "organization"
}

// successMessage is the header shown above a successful report
func successMessage(k Kind) string {
	if k == KindContact {
		return "Contact data enriched successfully"
	}
	return "Company data enriched successfully"
}
