package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enrichlens/backend/internal/domain"
	"github.com/enrichlens/backend/internal/usecase"
)

// errReportFailed makes the process exit non-zero after the report is printed
var errReportFailed = errors.New("enrichment failed")

func companyCmd(debug *bool) *cobra.Command {
	var apiKey string
	var req domain.CompanyRequest

	c := &cobra.Command{
		Use:   "company",
		Short: "Enrich a company by domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd.ErrOrStderr(), *debug)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("api-key") {
				apiKey = rt.cfg.Apollo.APIKey
			}

			report := rt.service.CompanyReport(cmd.Context(), apiKey, req)
			return printReport(cmd, report)
		},
	}

	c.Flags().StringVar(&req.Domain, "domain", "", "Company domain, e.g. example.com (required)")
	c.Flags().StringVar(&req.LinkedInURL, "linkedin-url", "", "Company LinkedIn URL (optional)")
	c.Flags().StringVar(&req.Name, "name", "", "Company name (optional)")
	c.Flags().StringVar(&req.CountryCode, "country", "", "Country code (optional)")
	c.Flags().StringVar(&apiKey, "api-key", "", "Apollo API key (defaults to the configured key)")
	return c
}

func contactCmd(debug *bool) *cobra.Command {
	var apiKey string
	var req domain.PersonRequest

	c := &cobra.Command{
		Use:   "contact",
		Short: "Enrich a contact by email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd.ErrOrStderr(), *debug)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("api-key") {
				apiKey = rt.cfg.Apollo.APIKey
			}

			report := rt.service.ContactReport(cmd.Context(), apiKey, req)
			return printReport(cmd, report)
		},
	}

	c.Flags().StringVar(&req.Email, "email", "", "Email address (required)")
	c.Flags().StringVar(&req.LinkedInURL, "linkedin-url", "", "Personal LinkedIn URL (optional)")
	c.Flags().StringVar(&req.FirstName, "first-name", "", "First name (optional)")
	c.Flags().StringVar(&req.LastName, "last-name", "", "Last name (optional)")
	c.Flags().StringVar(&apiKey, "api-key", "", "Apollo API key (defaults to the configured key)")
	return c
}

func printReport(cmd *cobra.Command, report usecase.Report) error {
	fmt.Fprintln(cmd.OutOrStdout(), report.Text)
	if !report.OK {
		return errReportFailed
	}
	return nil
}
