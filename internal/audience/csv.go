package audience

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ValidationError reports malformed tabular input. It fails the run
// before any row reaches the classification core.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("audience input: %s", e.Reason)
}

// Required input columns, matched case-insensitively.
const (
	columnName  = "Name"
	columnTitle = "Title"
)

// LoadCSV reads (Name, Title) rows from path. Both columns are required;
// extra columns are ignored. Rows keep file order.
func LoadCSV(path string) (*Profiles, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses audience rows from the reader.
func ReadCSV(r io.Reader) (*Profiles, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ValidationError{Reason: "empty input"}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	nameIdx, titleIdx := -1, -1
	for i, column := range header {
		column = strings.TrimSpace(column)
		if nameIdx < 0 && strings.EqualFold(column, columnName) {
			nameIdx = i
		}
		if titleIdx < 0 && strings.EqualFold(column, columnTitle) {
			titleIdx = i
		}
	}

	if nameIdx < 0 || titleIdx < 0 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("input must have %q and %q columns", columnName, columnTitle),
		}
	}

	profiles := &Profiles{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		profile := &Profile{}
		if nameIdx < len(record) {
			profile.Name = strings.TrimSpace(record[nameIdx])
		}
		if titleIdx < len(record) {
			profile.Title = strings.TrimSpace(record[titleIdx])
		}

		profiles.Items = append(profiles.Items, profile)
	}

	return profiles, nil
}

// WriteCSV writes the scored collection to path with the full column set.
func (p *Profiles) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"name", "title", "company", "role_function", "seniority",
		"company_type", "geo", "score", "score_reason", "excluded",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, profile := range p.Items {
		record := []string{
			profile.Name,
			profile.Title,
			profile.Company,
			profile.RoleFunction,
			profile.Seniority,
			profile.CompanyType,
			profile.Geo,
			strconv.Itoa(profile.Score),
			profile.ScoreReason,
			strconv.FormatBool(profile.Excluded),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

// WriteCSV writes the prospect list to path.
func (p *Prospects) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"name", "title", "company", "role_function", "seniority",
		"score", "outreach_priority", "score_reason",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, prospect := range p.Items {
		record := []string{
			prospect.Name,
			prospect.Title,
			prospect.Company,
			prospect.RoleFunction,
			prospect.Seniority,
			strconv.Itoa(prospect.Score),
			prospect.OutreachPriority,
			prospect.ScoreReason,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}
