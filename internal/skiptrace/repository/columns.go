package repository

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Columns maps contact fields to CSV header names.
type Columns struct {
	FirstName   string `yaml:"first_name"`
	MiddleName  string `yaml:"middle_name"`
	LastName    string `yaml:"last_name"`
	Address     string `yaml:"street_address"`
	City        string `yaml:"city"`
	State       string `yaml:"state"`
	Zip         string `yaml:"zip"`
	MobilePhone string `yaml:"mobile_phone"`
	Landline    string `yaml:"landline"`
	Email       string `yaml:"email"`
}

// DefaultColumns returns the header names of the foreclosure export.
func DefaultColumns() Columns {
	return Columns{
		FirstName:   "First Name",
		MiddleName:  "Middle Name",
		LastName:    "Last Name",
		Address:     "Street Address",
		City:        "City",
		State:       "State",
		Zip:         "Zip",
		MobilePhone: "Mobile Phone",
		Landline:    "Landline",
		Email:       "Email",
	}
}

// LoadColumns reads a YAML column mapping. Keys left out keep their default.
// An empty path returns the defaults.
func LoadColumns(path string) (Columns, error) {
	cols := DefaultColumns()
	if strings.TrimSpace(path) == "" {
		return cols, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Columns{}, fmt.Errorf("failed to read columns file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cols); err != nil {
		return Columns{}, fmt.Errorf("failed to parse columns file: %w", err)
	}
	if err := cols.validate(); err != nil {
		return Columns{}, err
	}
	return cols, nil
}

func (c Columns) inputs() []string {
	return []string{c.FirstName, c.LastName, c.Address, c.City, c.State, c.Zip}
}

func (c Columns) outputs() []string {
	return []string{c.MobilePhone, c.Landline, c.Email}
}

func (c Columns) validate() error {
	seen := make(map[string]bool)
	for _, name := range append(c.inputs(), c.outputs()...) {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("column mapping: empty column name")
		}
		if seen[name] {
			return fmt.Errorf("column mapping: %q used twice", name)
		}
		seen[name] = true
	}
	return nil
}
