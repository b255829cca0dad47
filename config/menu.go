package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"burger-cli/models"
)

// Default values for optional menu fields.
const (
	DefaultSurchargeRate   = 0.1
	DefaultSurchargePasses = 2
	DefaultSauce           = "ketchup and mustard"
)

var ErrInvalidMenu = errors.New("invalid menu")

// LoadMenu reads a YAML menu file. An empty path yields the built-in menu.
func LoadMenu(path string) (*models.Menu, error) {
	if path == "" {
		return DefaultMenu()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return ParseMenu(data)
}

// menuFile is the on-disk shape of a menu. Surcharge fields are pointers so
// an explicit 0 is kept and only a missing key falls back to the default.
type menuFile struct {
	Prices    map[string]float64 `yaml:"prices"`
	Buns      []string           `yaml:"buns"`
	Meats     []string           `yaml:"meats"`
	Cheeses   []string           `yaml:"cheeses"`
	Sauce     string             `yaml:"sauce"`
	Surcharge struct {
		Rate   *float64 `yaml:"rate"`
		Passes *int     `yaml:"passes"`
	} `yaml:"surcharge"`
}

// Only the braced ${VAR} form is expanded; a bare $ is left as written.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		return []byte(os.Getenv(string(ref[2 : len(ref)-1])))
	})
}

// ParseMenu expands ${VAR} references, decodes the YAML, applies defaults and validates.
func ParseMenu(data []byte) (*models.Menu, error) {
	var f menuFile
	if err := yaml.Unmarshal(expandEnv(data), &f); err != nil {
		return nil, fmt.Errorf("parse menu yaml: %w", err)
	}
	m := f.menu()
	if err := validateMenu(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMenu, err)
	}
	return m, nil
}

// menu converts the decoded file, filling in defaults for absent fields.
func (f *menuFile) menu() *models.Menu {
	m := &models.Menu{
		Prices:  f.Prices,
		Buns:    f.Buns,
		Meats:   f.Meats,
		Cheeses: f.Cheeses,
		Sauce:   f.Sauce,
		Surcharge: models.Surcharge{
			Rate:   DefaultSurchargeRate,
			Passes: DefaultSurchargePasses,
		},
	}
	if m.Prices == nil {
		m.Prices = map[string]float64{}
	}
	if strings.TrimSpace(m.Sauce) == "" {
		m.Sauce = DefaultSauce
	}
	if f.Surcharge.Rate != nil {
		m.Surcharge.Rate = *f.Surcharge.Rate
	}
	if f.Surcharge.Passes != nil {
		m.Surcharge.Passes = *f.Surcharge.Passes
	}
	return m
}

func validateMenu(m *models.Menu) error {
	for name, price := range m.Prices {
		if price < 0 {
			return fmt.Errorf("prices.%s must be >= 0, got %v", name, price)
		}
	}
	if err := validateAllowList("buns", m.Buns); err != nil {
		return err
	}
	if err := validateAllowList("meats", m.Meats); err != nil {
		return err
	}
	if err := validateAllowList("cheeses", m.Cheeses); err != nil {
		return err
	}
	if m.Surcharge.Rate < 0 {
		return fmt.Errorf("surcharge.rate must be >= 0, got %v", m.Surcharge.Rate)
	}
	if m.Surcharge.Passes < 0 {
		return fmt.Errorf("surcharge.passes must be >= 0, got %d", m.Surcharge.Passes)
	}
	return nil
}

func validateAllowList(field string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%s is required", field)
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			return fmt.Errorf("%s contains an empty entry", field)
		}
		if seen[key] {
			return fmt.Errorf("%s contains %q twice", field, v)
		}
		seen[key] = true
	}
	return nil
}
