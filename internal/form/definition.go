// internal/form/definition.go
//
// Forms subsystem: YAML definition loader.
//
// Context
//   Admin forms are declared in YAML next to the component that owns them
//   and embedded into the binary.  A definition names the form, groups its
//   fields into fieldsets, and carries per-field help text and HTML5 hints.
//   Server-side input policy belongs to the component; the definition only
//   describes presentation and which keys a submission may carry.
//
// Workflow
//   •  Parse decodes one YAML document and checks structural rules.
//   •  LoadFS reads a definition from an fs.FS (usually an embed.FS).
//   •  Register / Get keep a process-wide registry keyed by ID.
//
// Style
//   Full sentences, two spaces after periods, Oxford commas.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"
)

// Supported field types.
var fieldTypes = map[string]bool{
	"text":     true,
	"textarea": true,
	"email":    true,
	"url":      true,
	"number":   true,
	"checkbox": true,
}

// FormDef represents one form definition loaded from YAML.
//
// ID should be namespaced by component, e.g. "llmstxt/settings".
type FormDef struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Submit string     `yaml:"submit"` // Button label.  Defaults to "Save Changes".
	Groups []GroupDef `yaml:"groups"`
}

// GroupDef renders as one <fieldset>.
type GroupDef struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes a single input control.
type FieldDef struct {
	Name        string `yaml:"name"`
	Label       string `yaml:"label"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"` // Help text under the control.
	Placeholder string `yaml:"placeholder"`
	Rows        int    `yaml:"rows"`      // textarea only.
	Min         *int   `yaml:"min"`       // number only.
	Max         *int   `yaml:"max"`       // number only.
	MaxLength   int    `yaml:"maxlength"` // text-like only, 0 means unset.
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*FormDef)
)

// Register adds fd to the registry, replacing any definition with the same
// ID.
func Register(fd *FormDef) {
	registryMu.Lock()
	registry[fd.ID] = fd
	registryMu.Unlock()
}

// Get returns a registered FormDef by ID.
func Get(id string) (*FormDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fd, ok := registry[id]
	return fd, ok
}

// LoadFS parses the definition stored at name inside fsys.
func LoadFS(fsys fs.FS, name string) (*FormDef, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read form %s: %w", name, err)
	}
	fd, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("form %s: %w", name, err)
	}
	return fd, nil
}

// Parse decodes and validates one YAML definition.
func Parse(raw []byte) (*FormDef, error) {
	var fd FormDef
	if err := yaml.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if err := fd.validate(); err != nil {
		return nil, err
	}
	if fd.Submit == "" {
		fd.Submit = "Save Changes"
	}
	return &fd, nil
}

// Fields returns every field in definition order.
func (fd *FormDef) Fields() []FieldDef {
	var out []FieldDef
	for _, g := range fd.Groups {
		out = append(out, g.Fields...)
	}
	return out
}

func (fd *FormDef) validate() error {
	if fd.ID == "" {
		return fmt.Errorf("missing required 'id'")
	}
	if len(fd.Groups) == 0 {
		return fmt.Errorf("%s: must have at least one group", fd.ID)
	}

	seen := make(map[string]struct{})
	for gi := range fd.Groups {
		g := &fd.Groups[gi]
		if g.ID == "" {
			g.ID = fmt.Sprintf("group%d", gi+1)
		}
		for _, f := range g.Fields {
			if err := f.validate(); err != nil {
				return fmt.Errorf("%s: %w", fd.ID, err)
			}
			if _, dup := seen[f.Name]; dup {
				return fmt.Errorf("%s: duplicate field name '%s'", fd.ID, f.Name)
			}
			seen[f.Name] = struct{}{}
		}
	}
	return nil
}

func (f FieldDef) validate() error {
	switch {
	case f.Name == "":
		return fmt.Errorf("field missing 'name'")
	case f.Label == "":
		return fmt.Errorf("field '%s' missing 'label'", f.Name)
	case !fieldTypes[f.Type]:
		return fmt.Errorf("field '%s' has unsupported type %q", f.Name, f.Type)
	case f.MaxLength < 0:
		return fmt.Errorf("field '%s' maxlength cannot be negative", f.Name)
	case f.Min != nil && f.Max != nil && *f.Min > *f.Max:
		return fmt.Errorf("field '%s' min greater than max", f.Name)
	}
	return nil
}
