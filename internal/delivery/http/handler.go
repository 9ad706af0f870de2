package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/enrichlens/backend/internal/domain"
	"github.com/enrichlens/backend/internal/usecase"
)

// apiKeyHeader lets callers pass their key without putting it in the body
const apiKeyHeader = "X-Api-Key"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	enrichmentService *usecase.EnrichmentService
	defaultAPIKey     string
}

// NewHandler creates a new HTTP handler. defaultAPIKey is used when a
// request carries no key of its own.
func NewHandler(enrichmentService *usecase.EnrichmentService, defaultAPIKey string) *Handler {
	return &Handler{
		enrichmentService: enrichmentService,
		defaultAPIKey:     defaultAPIKey,
	}
}

// companyEnrichRequest is the JSON body for company enrichment
type companyEnrichRequest struct {
	APIKey      string `json:"apiKey"`
	Domain      string `json:"domain"`
	LinkedInURL string `json:"linkedinUrl"`
	CompanyName string `json:"companyName"`
	CountryCode string `json:"countryCode"`
}

func (r companyEnrichRequest) toDomain() domain.CompanyRequest {
	return domain.CompanyRequest{
		Domain:      r.Domain,
		LinkedInURL: r.LinkedInURL,
		Name:        r.CompanyName,
		CountryCode: r.CountryCode,
	}
}

// contactEnrichRequest is the JSON body for contact enrichment
type contactEnrichRequest struct {
	APIKey      string `json:"apiKey"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedinUrl"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

func (r contactEnrichRequest) toDomain() domain.PersonRequest {
	return domain.PersonRequest{
		Email:       r.Email,
		LinkedInURL: r.LinkedInURL,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
	}
}

// validateRequest is the JSON body for the validation endpoint
type validateRequest struct {
	Domain      string `json:"domain"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedinUrl"`
}

// enrichResponse wraps report text for the front-end
type enrichResponse struct {
	Result  string `json:"result"`
	Success bool   `json:"success"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "enrichlens-backend",
		"version": "1.0.0",
	})
}

// EnrichCompany handles company enrichment requests
func (h *Handler) EnrichCompany(c *gin.Context) {
	if h.enrichmentService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Enrichment service not configured"})
		return
	}

	var req companyEnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report := h.enrichmentService.CompanyReport(c.Request.Context(), h.resolveAPIKey(c, req.APIKey), req.toDomain())
	c.JSON(http.StatusOK, enrichResponse{Result: report.Text, Success: report.OK})
}

// EnrichContact handles contact enrichment requests
func (h *Handler) EnrichContact(c *gin.Context) {
	if h.enrichmentService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Enrichment service not configured"})
		return
	}

	var req contactEnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report := h.enrichmentService.ContactReport(c.Request.Context(), h.resolveAPIKey(c, req.APIKey), req.toDomain())
	c.JSON(http.StatusOK, enrichResponse{Result: report.Text, Success: report.OK})
}

// Validate reports which of the supplied identifiers are well formed, judged
// as the enrichment endpoints judge them. Absent domain or email count as
// invalid; a blank LinkedIn URL is valid.
func (h *Handler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"domain":      usecase.ValidateDomain(req.Domain),
		"email":       usecase.ValidateEmail(req.Email),
		"linkedinUrl": strings.TrimSpace(req.LinkedInURL) == "" || usecase.ValidateLinkedInURL(req.LinkedInURL),
	})
}

// badRequest reports an unreadable JSON body
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: %v", domain.ErrInvalidRequest, err)})
}

// resolveAPIKey prefers the header, then the body, then the configured default
func (h *Handler) resolveAPIKey(c *gin.Context, bodyKey string) string {
	if key := strings.TrimSpace(c.GetHeader(apiKeyHeader)); key != "" {
		return key
	}
	if key := strings.TrimSpace(bodyKey); key != "" {
		return key
	}
	return h.defaultAPIKey
}
