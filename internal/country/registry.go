package country

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCountry is returned when a lookup does not match any entry.
var ErrUnknownCountry = errors.New("unknown country")

//go:embed countries.yaml
var embeddedTable []byte

type tableFile struct {
	Fallback  string        `yaml:"fallback"`
	Countries []tableRecord `yaml:"countries"`
}

type tableRecord struct {
	Name           string      `yaml:"name"`
	ISO            string      `yaml:"iso"`
	CallingCode    int         `yaml:"calling_code"`
	ExitPrefix     *string     `yaml:"exit_prefix"`
	NationalPrefix *string     `yaml:"national_prefix"`
	Sovereign      string      `yaml:"sovereign"`
	Continents     []Continent `yaml:"continents"`
}

// Registry is a read-only, ordered catalogue of countries. The order of
// All is the canonical enumeration order used to resolve ambiguous
// calling codes and prefixes. A Registry is safe for concurrent use.
type Registry struct {
	entries  []*Country
	byName   map[string]*Country
	fallback *Country
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded country table.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load(embeddedTable)
		if err != nil {
			panic(fmt.Sprintf("country: invalid embedded table: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Load builds a registry from a YAML country table. Entries keep the
// order in which they appear in the document.
func Load(data []byte) (*Registry, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode country table: %w", err)
	}
	if len(file.Countries) == 0 {
		return nil, errors.New("country table is empty")
	}

	reg := &Registry{
		entries: make([]*Country, 0, len(file.Countries)),
		byName:  make(map[string]*Country, len(file.Countries)),
	}

	for i, rec := range file.Countries {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, fmt.Errorf("country #%d has no name", i)
		}
		key := strings.ToUpper(name)
		if _, exists := reg.byName[key]; exists {
			return nil, fmt.Errorf("duplicate country %q", name)
		}
		c := &Country{
			name:           name,
			iso:            strings.ToLower(strings.TrimSpace(rec.ISO)),
			callingCode:    rec.CallingCode,
			exitPrefix:     valueOr(rec.ExitPrefix, defaultExitPrefix),
			nationalPrefix: valueOr(rec.NationalPrefix, defaultNationalPrefix),
			continents:     rec.Continents,
			position:       i,
		}
		reg.entries = append(reg.entries, c)
		reg.byName[key] = c
	}

	for i, rec := range file.Countries {
		if rec.Sovereign == "" {
			continue
		}
		sovereign, ok := reg.byName[strings.ToUpper(rec.Sovereign)]
		if !ok {
			return nil, fmt.Errorf("country %q refers to unknown sovereign %q", rec.Name, rec.Sovereign)
		}
		reg.entries[i].sovereign = sovereign
	}

	if file.Fallback != "" {
		fallback, ok := reg.byName[strings.ToUpper(file.Fallback)]
		if !ok {
			return nil, fmt.Errorf("fallback country %q: %w", file.Fallback, ErrUnknownCountry)
		}
		reg.fallback = fallback
	} else {
		reg.fallback = reg.entries[0]
	}

	return reg, nil
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return strings.TrimSpace(*v)
}

// All returns the countries in canonical enumeration order.
func (r *Registry) All() []*Country {
	out := make([]*Country, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of countries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ByCallingCode returns the first country, in canonical order, that uses
// the given calling code.
func (r *Registry) ByCallingCode(code int) (*Country, bool) {
	for _, c := range r.entries {
		if c.callingCode == code {
			return c, true
		}
	}
	return nil, false
}

// ByName returns the country whose canonical name matches, ignoring case.
func (r *Registry) ByName(name string) (*Country, error) {
	if c, ok := r.byName[strings.ToUpper(strings.TrimSpace(name))]; ok && name != "" {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, name)
}

// MustByName is like ByName but panics when the country is unknown.
func (r *Registry) MustByName(name string) *Country {
	c, err := r.ByName(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ByLocale returns the country matching the region of the given tag.
// The region may be inferred by x/text when the tag carries none.
func (r *Registry) ByLocale(tag language.Tag) (*Country, bool) {
	region, conf := tag.Region()
	if conf == language.No {
		return nil, false
	}
	iso := strings.ToLower(region.String())
	for _, c := range r.entries {
		if c.iso == iso {
			return c, true
		}
	}
	return nil, false
}

// Fallback returns the country used when nothing else can be inferred.
func (r *Registry) Fallback() *Country {
	return r.fallback
}
