package linkedin

import (
	"regexp"
	"strings"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/apperrors"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/models"
)

var (
	jobURLPattern     = regexp.MustCompile(`linkedin\.com/jobs/view/(\d+)`)
	profileURLPattern = regexp.MustCompile(`linkedin\.com/in/([a-zA-Z0-9-]+)`)

	usStatePattern = regexp.MustCompile(`\b(CA|NY|TX|FL|WA|IL|PA|OH|NC|GA|VA|MI|IN|TN|MO|MD|WI|MN|CO|AL|SC|LA|KY|OR|OK|CT|AR|MS|KS|UT|NV|NM|WV|NE|ID|HI|AK|DE|MT|ND|SD|VT|NH|RI|WY|DC)\b`)
	cityPattern    = regexp.MustCompile(`(?i)\b(United States|USA|Canada|Remote|New York|San Francisco|Los Angeles|Chicago|Boston|Seattle|Austin|Denver|Miami|Atlanta|Dallas|Houston|Phoenix|Philadelphia|San Diego|Portland|Nashville)\b`)

	employmentPattern = regexp.MustCompile(`(?i)full.time|part.time|contract|freelance|internship|temporary|permanent`)

	atPrefixPattern   = regexp.MustCompile(`(?i)^at\s+`)
	dotSuffixPattern  = regexp.MustCompile(`\s+·.*$`)
	pipeSuffixPattern = regexp.MustCompile(`\s*\|.*$`)
)

const maxDescriptionLen = 500

// ExtractJobID pulls the numeric job id out of a LinkedIn job URL,
// returning "" when the URL doesn't match.
func ExtractJobID(url string) string {
	if m := jobURLPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// ExtractProfileUsername pulls the username out of a LinkedIn profile URL.
func ExtractProfileUsername(url string) string {
	if m := profileURLPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// ParseJobURL handles the URL-only import path. LinkedIn does not allow
// scraping job pages, so no live fetch happens here: the caller gets an
// empty record carrying the URL and fills the fields in manually.
func ParseJobURL(jobURL string) (models.ParsedJob, error) {
	if ExtractJobID(jobURL) == "" {
		return models.ParsedJob{}, apperrors.InvalidInput("invalid LinkedIn job URL", "jobUrl")
	}
	return models.ParsedJob{JobURL: jobURL}, nil
}

// ParseJobFromText extracts a job record from text pasted off a LinkedIn
// posting. Pasted postings carry no markup, so this is a best-effort
// line-position heuristic: the first plain line is the title, the next
// the company, and location/employment type are claimed by pattern.
// Malformed input never fails; undetected fields come back empty.
func ParseJobFromText(text, jobURL string) models.ParsedJob {
	lines := nonEmptyLines(text)

	var title, company, location, employmentType string

	for _, line := range lines {
		lower := strings.ToLower(line)

		// Job title is usually the first substantial line. Lines with
		// "@", "·", "linkedin" or URLs are chrome from the page, not a title.
		if title == "" && len(line) > 2 &&
			!strings.Contains(line, "@") && !strings.Contains(line, "·") &&
			!strings.Contains(lower, "linkedin") && !strings.Contains(line, "http") {
			title = line
			continue
		}

		// Company name follows the title, often as "at Acme · Full-time".
		if title != "" && company == "" && len(line) > 1 &&
			!strings.Contains(lower, "linkedin") && !strings.Contains(line, "http") {
			company = cleanCompanyLine(line)
			continue
		}

		if location == "" && (strings.Contains(line, ",") ||
			strings.Contains(lower, "remote") ||
			usStatePattern.MatchString(line) ||
			cityPattern.MatchString(line)) {
			location = line
			continue
		}

		if employmentType == "" && employmentPattern.MatchString(line) {
			employmentType = line
			continue
		}
	}

	// Fallbacks when the scan claimed nothing: first line as title,
	// second line as company.
	if title == "" && len(lines) > 0 {
		title = lines[0]
	}
	if company == "" && len(lines) > 1 {
		second := lines[1]
		if !strings.Contains(strings.ToLower(second), "linkedin") && !strings.Contains(second, "http") {
			company = cleanCompanyLine(second)
		}
	}

	return models.ParsedJob{
		Title:          title,
		Company:        company,
		Location:       location,
		Description:    descriptionFrom(lines),
		JobURL:         jobURL,
		EmploymentType: employmentType,
	}
}

// descriptionFrom joins everything past the header lines. The start
// index is the first long or "we are"/"seeking"/"description" line,
// clamped to [2,3] so the title/company lines are always skipped.
func descriptionFrom(lines []string) string {
	start := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if len(line) > 50 ||
			strings.Contains(lower, "description") ||
			strings.Contains(lower, "we are") ||
			strings.Contains(lower, "seeking") {
			start = i
			break
		}
	}
	if start < 2 {
		start = 2
	}
	if start > 3 {
		start = 3
	}
	if start >= len(lines) {
		return ""
	}

	description := strings.Join(lines[start:], "\n")
	if runes := []rune(description); len(runes) > maxDescriptionLen {
		description = string(runes[:maxDescriptionLen])
	}
	return description
}

func cleanCompanyLine(line string) string {
	line = atPrefixPattern.ReplaceAllString(line, "")
	line = dotSuffixPattern.ReplaceAllString(line, "")
	line = pipeSuffixPattern.ReplaceAllString(line, "")
	return line
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
