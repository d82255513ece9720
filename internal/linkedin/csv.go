package linkedin

import (
	"strings"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/apperrors"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

// ParseCSV converts exported CSV text into parsed job records. The first
// non-empty line is the header; recognized header names (and their
// aliases) map columns onto fields, everything else is ignored. Values
// are split on plain commas — quoted fields are not supported. Rows
// missing a title or company are dropped silently so one sparse row
// never blocks a bulk import.
func ParseCSV(csvText string) ([]models.ParsedJob, error) {
	lines := nonEmptyLines(csvText)
	if len(lines) < 2 {
		return nil, apperrors.InvalidInput("CSV must have at least a header row and one data row")
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	var jobs []models.ParsedJob
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		var job models.ParsedJob

		for i, header := range headers {
			value := ""
			if i < len(values) {
				value = strings.TrimSpace(values[i])
			}

			switch header {
			case "title", "position", "job title":
				job.Title = value
			case "company", "company name":
				job.Company = value
			case "location":
				job.Location = value
			case "url", "job url", "link":
				job.JobURL = value
			case "description":
				job.Description = value
			case "employment type", "type":
				job.EmploymentType = value
			}
		}

		if job.Title != "" && job.Company != "" {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}
