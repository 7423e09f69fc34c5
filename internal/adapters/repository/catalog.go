package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/staffer/internal/domain/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the raw data set served by a Store.
type Catalog struct {
	Projects  []model.Project
	Employees []model.Employee
}

type employeeRecord struct {
	ID                string         `koanf:"id"`
	Name              string         `koanf:"name"`
	CL                int            `koanf:"cl"`
	Location          string         `koanf:"location"`
	AvailabilityHours int            `koanf:"availability_hours"`
	LastRating        float64        `koanf:"last_rating"`
	Skills            map[string]int `koanf:"skills"`
}

type projectRecord struct {
	ID                string         `koanf:"id"`
	Role              string         `koanf:"role"`
	Description       string         `koanf:"description"`
	RequiredCL        int            `koanf:"required_cl"`
	RequiredHours     int            `koanf:"required_hours"`
	RemoteAllowed     bool           `koanf:"remote_allowed"`
	Location          string         `koanf:"location"`
	KnowledgeTransfer string         `koanf:"knowledge_transfer"`
	SkillsNeeded      map[string]int `koanf:"skills_needed"`
}

type catalogFile struct {
	Employees []employeeRecord `koanf:"employees"`
	Projects  []projectRecord  `koanf:"projects"`
}

// bytesProvider feeds an in-memory document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("bytes provider does not support Read")
}

// DefaultCatalog returns the embedded demo catalog.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a YAML catalog from path.
func LoadCatalog(path string) (Catalog, error) {
	return loadCatalog(file.Provider(path))
}

// ParseCatalog parses a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	return loadCatalog(bytesProvider(data))
}

func loadCatalog(p koanf.Provider) (Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(p, yaml.Parser()); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var raw catalogFile
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := Catalog{
		Projects:  make([]model.Project, len(raw.Projects)),
		Employees: make([]model.Employee, len(raw.Employees)),
	}
	for i, r := range raw.Projects {
		c.Projects[i] = model.Project{
			ID:                strings.TrimSpace(r.ID),
			Role:              r.Role,
			Description:       r.Description,
			RequiredCL:        r.RequiredCL,
			RequiredHours:     r.RequiredHours,
			RemoteAllowed:     r.RemoteAllowed,
			Location:          r.Location,
			KnowledgeTransfer: r.KnowledgeTransfer,
			SkillsNeeded:      r.SkillsNeeded,
		}
	}
	for i, r := range raw.Employees {
		c.Employees[i] = model.Employee{
			ID:                strings.TrimSpace(r.ID),
			Name:              r.Name,
			CL:                r.CL,
			Location:          r.Location,
			AvailabilityHours: r.AvailabilityHours,
			LastRating:        r.LastRating,
			Skills:            r.Skills,
		}
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks ids are present and unique and values are in range.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Projects))
	for _, p := range c.Projects {
		if err := validateID("project", p.ID, seen); err != nil {
			return err
		}
		if p.RequiredHours < 0 {
			return fmt.Errorf("%w: project %s: negative required hours", ErrInvalidCatalog, p.ID)
		}
		if err := validateSkills("project", p.ID, p.SkillsNeeded); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(c.Employees))
	for _, e := range c.Employees {
		if err := validateID("employee", e.ID, seen); err != nil {
			return err
		}
		if e.AvailabilityHours < 0 {
			return fmt.Errorf("%w: employee %s: negative availability", ErrInvalidCatalog, e.ID)
		}
		if e.LastRating < 0 || e.LastRating > model.MaxRating {
			return fmt.Errorf("%w: employee %s: rating %.2f out of range", ErrInvalidCatalog, e.ID, e.LastRating)
		}
		if err := validateSkills("employee", e.ID, e.Skills); err != nil {
			return err
		}
	}
	return nil
}

func validateID(kind, id string, seen map[string]struct{}) error {
	if id == "" {
		return fmt.Errorf("%w: %s with empty id", ErrInvalidCatalog, kind)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: %w: %s %s", ErrInvalidCatalog, ErrDuplicateID, kind, id)
	}
	seen[id] = struct{}{}
	return nil
}

func validateSkills(kind, id string, skills map[string]int) error {
	for name, level := range skills {
		if level < 0 {
			return fmt.Errorf("%w: %s %s: negative level for %q", ErrInvalidCatalog, kind, id, name)
		}
	}
	return nil
}
