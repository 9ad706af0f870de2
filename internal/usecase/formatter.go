package usecase

import (
	"strings"

	"github.com/enrichlens/backend/internal/domain"
)

const (
	// FallbackValue is shown for any field the provider left out
	FallbackValue = "N/A"

	successMarker = "✅"
	failureMarker = "❌"
)

// FieldSpec describes one labeled line of a report
type FieldSpec struct {
	Label string
	// Accessor returns the rendered value and whether one was present
	Accessor func(domain.Payload) (string, bool)
	Fallback string
}

// Render returns the value line for p, without the trailing newline
func (f FieldSpec) Render(p domain.Payload) string {
	value, ok := f.Accessor(p)
	if !ok {
		value = f.Fallback
	}
	return "• **" + f.Label + ":** " + value
}

// CompanyFields is the fixed, ordered field list for company reports
var CompanyFields = []FieldSpec{
	keyField("Name", "name"),
	keyField("Domain", "domain"),
	keyField("Website", "website_url"),
	keyField("LinkedIn", "linkedin_url"),
	keyField("Industry", "industry"),
	keyField("Company Size", "estimated_num_employees"),
	locationField(),
	keyField("Founded", "founded_year"),
	keyField("Description", "short_description"),
}

// ContactFields is the fixed, ordered field list for contact reports
var ContactFields = []FieldSpec{
	{
		Label: "Name",
		Accessor: func(p domain.Payload) (string, bool) {
			return p.Text("first_name", FallbackValue) + " " + p.Text("last_name", FallbackValue), true
		},
		Fallback: FallbackValue,
	},
	keyField("Email", "email"),
	keyField("LinkedIn", "linkedin_url"),
	keyField("Title", "title"),
	{
		Label: "Company",
		Accessor: func(p domain.Payload) (string, bool) {
			org := p.Object("organization")
			if org == nil {
				return "", false
			}
			return org.Text("name", FallbackValue), true
		},
		Fallback: FallbackValue,
	},
	locationField(),
	{
		Label: "Phone",
		Accessor: func(p domain.Payload) (string, bool) {
			if _, ok := p.Value("phone_numbers"); !ok {
				return "", false
			}
			// a first entry that is not an object has no raw_number either
			return p.First("phone_numbers").Text("raw_number", FallbackValue), true
		},
		Fallback: FallbackValue,
	},
	keyField("Twitter", "twitter_url"),
	keyField("Bio", "headline"),
}

func keyField(label, key string) FieldSpec {
	return FieldSpec{
		Label: label,
		Accessor: func(p domain.Payload) (string, bool) {
			v, ok := p.Value(key)
			if !ok {
				return "", false
			}
			return domain.Render(v), true
		},
		Fallback: FallbackValue,
	}
}

// locationField joins city, state and country, each with its own fallback
func locationField() FieldSpec {
	return FieldSpec{
		Label: "Location",
		Accessor: func(p domain.Payload) (string, bool) {
			return strings.Join([]string{
				p.Text("city", FallbackValue),
				p.Text("state", FallbackValue),
				p.Text("country", FallbackValue),
			}, ", "), true
		},
		Fallback: FallbackValue,
	}
}

// Format renders a Result as display text. It is a pure function of res.
func Format(res domain.Result) string {
	switch r := res.(type) {
	case domain.Success:
		return formatSuccess(r)
	case domain.Failure:
		return FormatError(r.Message)
	default:
		return FormatError(domain.NewFailure(nil).Message)
	}
}

// FormatError prefixes message with the failure marker
func FormatError(message string) string {
	return failureMarker + " " + message
}

func formatSuccess(s domain.Success) string {
	heading, fields := "📊 **Enriched Company Data:**", CompanyFields
	if s.Kind == domain.KindContact {
		heading, fields = "👤 **Enriched Contact Data:**", ContactFields
	}

	var b strings.Builder
	b.WriteString(successMarker + " " + s.Message + "\n\n")
	b.WriteString(heading + "\n")
	for _, f := range fields {
		b.WriteString(f.Render(s.Payload))
		b.WriteString("\n")
	}
	return b.String()
}
