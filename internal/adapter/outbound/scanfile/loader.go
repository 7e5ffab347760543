// Package scanfile loads the serialized output of the upstream source
// parser: one file per scanned unit (plugin), carrying its
// scope-partitioned signature descriptions, comment blocks and adoption
// metadata. JSON and YAML are both accepted, selected by extension.
package scanfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"docaudit/internal/domain/valueobject"
	"docaudit/internal/port/outbound"
)

// File is the wire form of one scanned unit.
type File struct {
	Plugin          string                 `json:"plugin"          yaml:"plugin"`
	AdoptionTracked bool                   `json:"adoptionTracked" yaml:"adoptionTracked"`
	MissingExports  []string               `json:"missingExports"  yaml:"missingExports"`
	Deprecated      []string               `json:"deprecated"      yaml:"deprecated"`
	Scopes          map[string][]Signature `json:"scopes"          yaml:"scopes"`
}

// Signature is the wire form of one function-like declaration.
type Signature struct {
	Label      string      `json:"label"                yaml:"label"`
	Path       string      `json:"path"                 yaml:"path"`
	Line       int         `json:"line"                 yaml:"line"`
	ReturnType string      `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	References int         `json:"references"           yaml:"references"`
	Comment    *Comment    `json:"comment,omitempty"    yaml:"comment,omitempty"`
	RawComment string      `json:"rawComment,omitempty" yaml:"rawComment,omitempty"`
	Parameters []Parameter `json:"parameters"           yaml:"parameters"`
}

// Comment is the structured comment-source wire form.
type Comment struct {
	Blocks []outbound.CommentBlock `json:"blocks" yaml:"blocks"`
}

// Parameter is the wire form of one positional parameter.
type Parameter struct {
	Name string `json:"name"           yaml:"name"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
	Type Type   `json:"type"           yaml:"type"`
}

// Type is the wire form of a declared type.
type Type struct {
	Kind     string   `json:"kind,omitempty"     yaml:"kind,omitempty"`
	Text     string   `json:"text,omitempty"     yaml:"text,omitempty"`
	Nullable bool     `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Members  []Member `json:"members,omitempty"  yaml:"members,omitempty"`
}

// Member is the wire form of one structural-type member.
type Member struct {
	Name string `json:"name"           yaml:"name"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
	Type Type   `json:"type"           yaml:"type"`
}

// Unit is the decoded, validated form handed to the builder.
type Unit struct {
	Plugin          string
	AdoptionTracked bool
	MissingExports  []string
	Deprecated      []string
	Scopes          map[valueobject.Scope][]outbound.SignatureSource
}

// Load reads and validates one scan file.
func Load(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scan file %s: %w", path, err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing scan file %s: %w", path, err)
	}
	return file.toUnit()
}

func (f *File) toUnit() (*Unit, error) {
	unit := &Unit{
		Plugin:          f.Plugin,
		AdoptionTracked: f.AdoptionTracked,
		MissingExports:  f.MissingExports,
		Deprecated:      f.Deprecated,
		Scopes:          make(map[valueobject.Scope][]outbound.SignatureSource, len(f.Scopes)),
	}

	for name, signatures := range f.Scopes {
		scope, err := valueobject.NewScope(name)
		if err != nil {
			return nil, err
		}
		sources := make([]outbound.SignatureSource, 0, len(signatures))
		for _, sig := range signatures {
			source, err := sig.toSource()
			if err != nil {
				return nil, fmt.Errorf("signature %q: %w", sig.Label, err)
			}
			sources = append(sources, source)
		}
		unit.Scopes[scope] = sources
	}
	return unit, nil
}

func (s *Signature) toSource() (outbound.SignatureSource, error) {
	location, err := valueobject.NewSourceLocation(s.Path, s.Line)
	if err != nil {
		return outbound.SignatureSource{}, err
	}

	source := outbound.SignatureSource{
		Label:      s.Label,
		Location:   location,
		ReturnType: s.ReturnType,
		References: s.References,
		Comment:    s.commentSource(),
	}
	for _, param := range s.Parameters {
		converted, err := param.toSource(s.Path, s.Line)
		if err != nil {
			return outbound.SignatureSource{}, fmt.Errorf("parameter %q: %w", param.Name, err)
		}
		source.Parameters = append(source.Parameters, converted)
	}
	return source, nil
}

// commentSource picks the comment-source variant: structured blocks when
// the extractor produced them, otherwise raw leading text when present.
func (s *Signature) commentSource() outbound.CommentSource {
	if s.Comment != nil {
		return outbound.TagBlockList{Blocks: s.Comment.Blocks}
	}
	if s.RawComment != "" {
		return outbound.RawCommentNode{LeadingText: s.RawComment}
	}
	return nil
}

func (p *Parameter) toSource(defaultPath string, defaultLine int) (outbound.ParameterSource, error) {
	location, err := locationOrDefault(defaultPath, p.Line, defaultLine)
	if err != nil {
		return outbound.ParameterSource{}, err
	}
	declared, err := p.Type.toSource(defaultPath, defaultLine)
	if err != nil {
		return outbound.ParameterSource{}, err
	}
	return outbound.ParameterSource{Name: p.Name, Type: declared, Location: location}, nil
}

func (t *Type) toSource(defaultPath string, defaultLine int) (outbound.TypeSource, error) {
	kind, err := valueobject.NewTypeKind(t.Kind)
	if err != nil {
		return outbound.TypeSource{}, err
	}
	source := outbound.TypeSource{Kind: kind, Text: t.Text, Nullable: t.Nullable}
	for _, member := range t.Members {
		location, err := locationOrDefault(defaultPath, member.Line, defaultLine)
		if err != nil {
			return outbound.TypeSource{}, err
		}
		memberType, err := member.Type.toSource(defaultPath, defaultLine)
		if err != nil {
			return outbound.TypeSource{}, fmt.Errorf("member %q: %w", member.Name, err)
		}
		source.Members = append(source.Members, outbound.MemberSource{
			Name:     member.Name,
			Type:     memberType,
			Location: location,
		})
	}
	return source, nil
}

func locationOrDefault(path string, line, defaultLine int) (valueobject.SourceLocation, error) {
	if line == 0 {
		line = defaultLine
	}
	return valueobject.NewSourceLocation(path, line)
}
