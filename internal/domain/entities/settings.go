package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// MalformedPolicyFail aborts the whole run on the first malformed manifest.
	MalformedPolicyFail = "fail"
	// MalformedPolicySkip logs the malformed manifest and continues with the rest.
	MalformedPolicySkip = "skip"

	FormatText = "text"
	FormatJSON = "json"
)

// Settings is the optional configuration file of pkgdiff, written in YAML or,
// with a .toml extension, in TOML.
type Settings struct {
	Sections    map[string]string `toml:"sections"     yaml:"sections"`     // section name -> category
	Groups      [][]string        `toml:"groups"       yaml:"groups"`       // category groups reported separately
	OnMalformed string            `toml:"on_malformed" yaml:"on_malformed"` // "fail" or "skip"
	Format      string            `toml:"format"       yaml:"format"`       // "text" or "json"
	Highest     bool              `toml:"highest"      yaml:"highest"`

	sectionTable   *SectionTable
	categoryGroups [][]Category
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no file is found.
func DefaultSettings() *Settings {
	settings := &Settings{
		OnMalformed:  MalformedPolicyFail,
		Format:       FormatText,
		sectionTable: DefaultSectionTable(),
	}
	return settings
}

// NewSettings reads and validates the configuration file at path.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		unmarshal = toml.Unmarshal
	}
	if unmarshalErr := unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.OnMalformed = expandEnv(settings.OnMalformed)
	settings.Format = expandEnv(settings.Format)
	if settings.OnMalformed == "" {
		settings.OnMalformed = MalformedPolicyFail
	}
	if settings.Format == "" {
		settings.Format = FormatText
	}

	if validateErr := settings.resolve(); validateErr != nil {
		return nil, validateErr
	}
	return &settings, nil
}

// resolve validates the raw values and builds the section table and groups.
func (s *Settings) resolve() error {
	switch s.OnMalformed {
	case MalformedPolicyFail, MalformedPolicySkip:
	default:
		return fmt.Errorf("on_malformed must be %q or %q, got %q",
			MalformedPolicyFail, MalformedPolicySkip, s.OnMalformed)
	}

	s.sectionTable = DefaultSectionTable()
	if len(s.Sections) > 0 {
		sections := make(map[string]Category, len(s.Sections))
		for name, categoryName := range s.Sections {
			category, err := ParseCategory(expandEnv(categoryName))
			if err != nil {
				return fmt.Errorf("sections.%s: %w", name, err)
			}
			sections[expandEnv(name)] = category
		}
		table, err := NewSectionTable(sections)
		if err != nil {
			return fmt.Errorf("invalid sections: %w", err)
		}
		s.sectionTable = table
	}

	s.categoryGroups = nil
	for i, group := range s.Groups {
		if len(group) == 0 {
			return fmt.Errorf("groups[%d] must have at least one category", i)
		}
		categories := make([]Category, 0, len(group))
		for _, name := range group {
			category, err := ParseCategory(name)
			if err != nil {
				return fmt.Errorf("groups[%d]: %w", i, err)
			}
			categories = append(categories, category)
		}
		s.categoryGroups = append(s.categoryGroups, categories)
	}
	return nil
}

// SectionTable returns the section to category bijection in effect.
func (s *Settings) SectionTable() *SectionTable {
	if s.sectionTable == nil {
		return DefaultSectionTable()
	}
	return s.sectionTable
}

// CategoryGroups returns the configured category groups; nil means a single
// group with every category.
func (s *Settings) CategoryGroups() [][]Category {
	return s.categoryGroups
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}
	locations = append(locations, filepath.Join(xdg.ConfigHome, "pkgdiff"))

	patterns := []string{
		".pkgdiff.yaml",
		".pkgdiff.yml",
		"pkgdiff.yaml",
		"pkgdiff.yml",
		".pkgdiff.toml",
		"pkgdiff.toml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands ${ENV_VAR} references.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
