// Package seeds loads demo organizations, users and contracts from a YAML
// fixture.
package seeds

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixture is the document read by the seed command. Organizations are
// referenced from contracts by their contact email.
type Fixture struct {
	Organizations []OrganizationFixture `yaml:"organizations"`
	Contracts     []ContractFixture     `yaml:"contracts"`
}

type OrganizationFixture struct {
	Name         string        `yaml:"name"`
	Type         string        `yaml:"type"`
	ContactEmail string        `yaml:"contact_email"`
	Quotas       *QuotaFixture `yaml:"quotas"`
	Users        []UserFixture `yaml:"users"`
}

type QuotaFixture struct {
	MaxRobots    int `yaml:"max_robots"`
	MaxCustomers int `yaml:"max_customers"`
	MaxEngineers int `yaml:"max_engineers"`
}

type UserFixture struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type ContractFixture struct {
	Provider  string `yaml:"provider"`
	Customer  string `yaml:"customer"`
	Status    string `yaml:"status"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

// LoadFile reads and parses the fixture at path.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture and rejects unknown keys.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	known := make(map[string]bool, len(f.Organizations))
	for i, org := range f.Organizations {
		if org.ContactEmail == "" {
			return fmt.Errorf("organizations[%d]: contact_email is required", i)
		}
		if known[org.ContactEmail] {
			return fmt.Errorf("organizations[%d]: duplicate contact_email %s", i, org.ContactEmail)
		}
		known[org.ContactEmail] = true
	}
	for i, c := range f.Contracts {
		if !known[c.Provider] || !known[c.Customer] {
			return fmt.Errorf("contracts[%d]: provider and customer must name seeded organizations", i)
		}
		switch c.Status {
		case "", "pending", "active":
		default:
			return fmt.Errorf("contracts[%d]: status must be pending or active", i)
		}
		if _, err := parseDate(c.StartDate); err != nil {
			return fmt.Errorf("contracts[%d]: %w", i, err)
		}
		if _, err := parseDate(c.EndDate); err != nil {
			return fmt.Errorf("contracts[%d]: %w", i, err)
		}
	}
	return nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}
