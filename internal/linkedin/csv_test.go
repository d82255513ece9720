package linkedin

import (
	"testing"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/apperrors"
)

func TestParseCSVDropsRowsMissingRequiredFields(t *testing.T) {
	csv := "title,company,location\nBackend Engineer,Microsoft,Seattle WA\n,OnlyCompany,Nowhere"

	jobs, err := ParseCSV(csv)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Title != "Backend Engineer" || jobs[0].Company != "Microsoft" || jobs[0].Location != "Seattle WA" {
		t.Errorf("unexpected job: %+v", jobs[0])
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	_, err := ParseCSV("title,company,location")
	if !apperrors.IsInvalidInput(err) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	if _, err := ParseCSV(""); !apperrors.IsInvalidInput(err) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestParseCSVHeaderAliases(t *testing.T) {
	csv := "Job Title,Company Name,Job URL,Type,ignored\nSRE,Cloudflare,https://example.com/1,Contract,whatever"

	jobs, err := ParseCSV(csv)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	job := jobs[0]
	if job.Title != "SRE" {
		t.Errorf("title = %q", job.Title)
	}
	if job.Company != "Cloudflare" {
		t.Errorf("company = %q", job.Company)
	}
	if job.JobURL != "https://example.com/1" {
		t.Errorf("jobUrl = %q", job.JobURL)
	}
	if job.EmploymentType != "Contract" {
		t.Errorf("employmentType = %q", job.EmploymentType)
	}
}

func TestParseCSVShortRow(t *testing.T) {
	// Rows with fewer cells than headers read empty values, not panics.
	csv := "title,company,location\nEngineer,Acme"

	jobs, err := ParseCSV(csv)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Location != "" {
		t.Errorf("location = %q, want empty", jobs[0].Location)
	}
}

func TestParseCSVWhitespaceValuesTrimmed(t *testing.T) {
	csv := "title, company \n  Engineer ,  Acme  "

	jobs, err := ParseCSV(csv)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Title != "Engineer" || jobs[0].Company != "Acme" {
		t.Errorf("unexpected job: %+v", jobs[0])
	}
}
