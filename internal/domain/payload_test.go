package domain

import (
	"errors"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"string", "Acme", true},
		{"false", false, false},
		{"true", true, true},
		{"zero number", json.Number("0"), false},
		{"number", json.Number("2004"), true},
		{"zero float", 0.0, false},
		{"float", 12.5, true},
		{"empty object", map[string]any{}, false},
		{"object", map[string]any{"a": 1}, true},
		{"empty list", []any{}, false},
		{"list", []any{"x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.in))
		})
	}
}

func TestPayloadText(t *testing.T) {
	p := Payload{
		"name":         "Example Corp",
		"blank":        "",
		"founded_year": json.Number("2004"),
		"employees":    float64(1500000),
		"tags":         []any{"saas", "b2b"},
	}

	assert.Equal(t, "Example Corp", p.Text("name", "N/A"))
	assert.Equal(t, "N/A", p.Text("blank", "N/A"))
	assert.Equal(t, "N/A", p.Text("missing", "N/A"))
	assert.Equal(t, "2004", p.Text("founded_year", "N/A"))
	assert.Equal(t, "1500000", p.Text("employees", "N/A"))
	assert.Equal(t, `["saas","b2b"]`, p.Text("tags", "N/A"))
}

func TestPayloadObjectAndFirst(t *testing.T) {
	p := Payload{
		"organization":  map[string]any{"name": "Acme"},
		"phone_numbers": []any{map[string]any{"raw_number": "+1 555 0100"}, map[string]any{"raw_number": "+1 555 0199"}},
		"empty_list":    []any{},
		"scalar_list":   []any{"x"},
		"not_object":    "nope",
	}

	require.NotNil(t, p.Object("organization"))
	assert.Equal(t, "Acme", p.Object("organization").Text("name", "N/A"))
	assert.Nil(t, p.Object("missing"))
	assert.Nil(t, p.Object("not_object"))

	require.NotNil(t, p.First("phone_numbers"))
	assert.Equal(t, "+1 555 0100", p.First("phone_numbers").Text("raw_number", "N/A"))
	assert.Nil(t, p.First("empty_list"))
	assert.Nil(t, p.First("scalar_list"))
	assert.Nil(t, p.First("missing"))
}

func TestResultFrom(t *testing.T) {
	t.Run("success extracts organization", func(t *testing.T) {
		envelope := map[string]any{"organization": map[string]any{"name": "Example Corp"}}

		res := ResultFrom(KindCompany, envelope, nil)

		success, ok := res.(Success)
		require.True(t, ok)
		assert.Equal(t, "Company data enriched successfully", success.Message)
		assert.Equal(t, "Example Corp", success.Payload["name"])
	})

	t.Run("success with missing key yields empty payload", func(t *testing.T) {
		res := ResultFrom(KindContact, map[string]any{"organization": map[string]any{}}, nil)

		success, ok := res.(Success)
		require.True(t, ok)
		assert.Equal(t, "Contact data enriched successfully", success.Message)
		assert.NotNil(t, success.Payload)
		assert.Empty(t, success.Payload)
	})

	t.Run("null payload yields empty payload", func(t *testing.T) {
		res := ResultFrom(KindContact, map[string]any{"person": nil}, nil)

		success, ok := res.(Success)
		require.True(t, ok)
		assert.Empty(t, success.Payload)
	})

	t.Run("api error keeps status and body", func(t *testing.T) {
		err := fmt.Errorf("enrich company: %w", &APIError{StatusCode: 401, Body: `{"error":"invalid key"}`})

		res := ResultFrom(KindCompany, nil, err)

		failure, ok := res.(Failure)
		require.True(t, ok)
		assert.Equal(t, `API Error: 401 - {"error":"invalid key"}`, failure.Message)
	})

	t.Run("transport error embeds cause", func(t *testing.T) {
		err := &TransportError{Err: errors.New("dial tcp: connection refused")}

		res := ResultFrom(KindCompany, nil, err)

		failure, ok := res.(Failure)
		require.True(t, ok)
		assert.Equal(t, "Request failed: dial tcp: connection refused", failure.Message)
		assert.ErrorIs(t, failure.Err, ErrTransport)
	})

	t.Run("anything else is unexpected", func(t *testing.T) {
		res := ResultFrom(KindContact, nil, errors.New("invalid character 'x'"))

		failure, ok := res.(Failure)
		require.True(t, ok)
		assert.Equal(t, "Unexpected error: invalid character 'x'", failure.Message)
	})

	t.Run("nil error failure is never blank", func(t *testing.T) {
		failure := NewFailure(nil)
		assert.NotEmpty(t, failure.Message)
	})
}

func TestRequestBody(t *testing.T) {
	t.Run("company omits blank optionals and renames fields", func(t *testing.T) {
		req := CompanyRequest{Domain: " example.com ", Name: "  Example Corp ", CountryCode: "   "}

		assert.Equal(t, map[string]string{"domain": "example.com", "name": "Example Corp"}, req.Body())
		assert.Equal(t, KindCompany, req.Kind())
		assert.Equal(t, "/organizations/enrich", req.Endpoint())
	})

	t.Run("company includes every present optional", func(t *testing.T) {
		req := CompanyRequest{
			Domain:      "example.com",
			LinkedInURL: "https://linkedin.com/company/example",
			Name:        "Example Corp",
			CountryCode: "US",
		}

		assert.Equal(t, map[string]string{
			"domain":       "example.com",
			"linkedin_url": "https://linkedin.com/company/example",
			"name":         "Example Corp",
			"country":      "US",
		}, req.Body())
	})

	t.Run("person carries only person fields", func(t *testing.T) {
		req := PersonRequest{Email: "jane@example.com", FirstName: "Jane", LastName: " Doe "}

		assert.Equal(t, map[string]string{
			"email":      "jane@example.com",
			"first_name": "Jane",
			"last_name":  "Doe",
		}, req.Body())
		assert.Equal(t, KindContact, req.Kind())
		assert.Equal(t, "/people/match", req.Endpoint())
	})
}
