package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/enrichlens/backend/internal/domain"
)

// User-facing pre-flight messages, shown after the failure marker
const (
	msgAPIKeyRequired  = "Error: Please enter your Apollo API key"
	msgDomainRequired  = "Error: Company domain is required"
	msgDomainInvalid   = "Error: Please enter a valid domain (e.g., example.com)"
	msgEmailRequired   = "Error: Email address is required"
	msgEmailInvalid    = "Error: Please enter a valid email address"
	msgCompanyLinkedIn = "Error: Please enter a valid LinkedIn URL (e.g., https://linkedin.com/company/example)"
	msgContactLinkedIn = "Error: Please enter a valid LinkedIn URL (e.g., https://linkedin.com/in/username)"
)

// Report is the display text of one enrichment call
type Report struct {
	Text string
	// OK is true only when the provider returned data
	OK bool
}

// EnrichmentService validates input, calls the provider and formats the outcome
type EnrichmentService struct {
	enricher domain.Enricher
	logger   *slog.Logger
}

// NewEnrichmentService creates a new enrichment service with dependencies
func NewEnrichmentService(enricher domain.Enricher, logger *slog.Logger) *EnrichmentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EnrichmentService{
		enricher: enricher,
		logger:   logger,
	}
}

// EnrichCompanyData enriches a company and returns the display text
func (s *EnrichmentService) EnrichCompanyData(ctx context.Context, apiKey string, req domain.CompanyRequest) string {
	return s.CompanyReport(ctx, apiKey, req).Text
}

// EnrichContactData enriches a contact and returns the display text
func (s *EnrichmentService) EnrichContactData(ctx context.Context, apiKey string, req domain.PersonRequest) string {
	return s.ContactReport(ctx, apiKey, req).Text
}

// CompanyReport runs pre-flight checks, then the company lookup.
// Flow: key -> domain present -> domain shape -> linkedin shape -> provider -> format
func (s *EnrichmentService) CompanyReport(ctx context.Context, apiKey string, req domain.CompanyRequest) Report {
	if msg := checkCompany(apiKey, req); msg != "" {
		s.logger.Debug("company enrichment rejected", "domain", req.Domain, "reason", msg)
		return Report{Text: FormatError(msg)}
	}
	req = req.Normalize()

	res := s.enricher.EnrichCompany(ctx, strings.TrimSpace(apiKey), req)
	s.logResult(domain.KindCompany, req.Domain, res)
	return newReport(res)
}

// ContactReport runs pre-flight checks, then the person match.
func (s *EnrichmentService) ContactReport(ctx context.Context, apiKey string, req domain.PersonRequest) Report {
	if msg := checkContact(apiKey, req); msg != "" {
		s.logger.Debug("contact enrichment rejected", "reason", msg)
		return Report{Text: FormatError(msg)}
	}
	req = req.Normalize()

	res := s.enricher.EnrichContact(ctx, strings.TrimSpace(apiKey), req)
	s.logResult(domain.KindContact, "", res)
	return newReport(res)
}

// checkCompany returns the first failing pre-flight message, or "".
// Blankness is judged after trimming; shape checks see the raw input.
func checkCompany(apiKey string, req domain.CompanyRequest) string {
	switch {
	case strings.TrimSpace(apiKey) == "":
		return msgAPIKeyRequired
	case strings.TrimSpace(req.Domain) == "":
		return msgDomainRequired
	case !ValidateDomain(req.Domain):
		return msgDomainInvalid
	case !linkedInAcceptable(req.LinkedInURL):
		return msgCompanyLinkedIn
	}
	return ""
}

// checkContact returns the first failing pre-flight message, or ""
func checkContact(apiKey string, req domain.PersonRequest) string {
	switch {
	case strings.TrimSpace(apiKey) == "":
		return msgAPIKeyRequired
	case strings.TrimSpace(req.Email) == "":
		return msgEmailRequired
	case !ValidateEmail(req.Email):
		return msgEmailInvalid
	case !linkedInAcceptable(req.LinkedInURL):
		return msgContactLinkedIn
	}
	return ""
}

// linkedInAcceptable treats a blank URL as absent and validates anything else as given
func linkedInAcceptable(url string) bool {
	return strings.TrimSpace(url) == "" || ValidateLinkedInURL(url)
}

func newReport(res domain.Result) Report {
	_, ok := res.(domain.Success)
	return Report{Text: Format(res), OK: ok}
}

// logResult records the outcome without the payload, which may hold personal data
func (s *EnrichmentService) logResult(kind domain.Kind, subject string, res domain.Result) {
	switch r := res.(type) {
	case domain.Success:
		s.logger.Info("enrichment succeeded", "kind", kind.String(), "subject", subject, "fields", len(r.Payload))
	case domain.Failure:
		s.logger.Warn("enrichment failed", "kind", kind.String(), "subject", subject, "error", r.Message)
	}
}
