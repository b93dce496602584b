// Package rules loads host-supplied overrides for the conversion tables: a
// YAML file can remap tags to fixed block types, unmap tags entirely, and
// grow or drop per-tag attribute allow-list entries.
package rules

import (
	"fmt"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"blockpress/internal/converter"
)

var (
	tagPattern       = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	attrPattern      = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	blockNamePattern = regexp.MustCompile(`^([a-z][a-z0-9-]*/)?[a-z][a-z0-9-]*$`)
)

// File is the parsed rules document.
type File struct {
	// Mappings adds or replaces fixed tag→block-type entries.
	Mappings map[string]string `yaml:"mappings"`
	// Unmap removes mapping entries; those tags fall back to the generic
	// paragraph/html rules.
	Unmap []string `yaml:"unmap"`
	// AllowList adds attribute names to a tag's allow-list.
	AllowList map[string][]string `yaml:"allowlist"`
	// DropAllowList removes a tag's allow-list entry entirely.
	DropAllowList []string `yaml:"drop_allowlist"`
}

// Load reads and validates a rules file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates rules YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal rules file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules file: %w", err)
	}
	return &f, nil
}

// Validate checks that every tag, attribute, and block-type name is
// well-formed. Tag and attribute names are lowercase.
func (f *File) Validate() error {
	for tag, name := range f.Mappings {
		if err := validateTag(tag); err != nil {
			return fmt.Errorf("mappings[%s]: %w", tag, err)
		}
		if err := validation.Validate(name,
			validation.Required,
			validation.Match(blockNamePattern),
		); err != nil {
			return fmt.Errorf("mappings[%s]: block type %q: %w", tag, name, err)
		}
	}

	for _, tag := range f.Unmap {
		if err := validateTag(tag); err != nil {
			return fmt.Errorf("unmap: %w", err)
		}
	}

	for tag, attrs := range f.AllowList {
		if err := validateTag(tag); err != nil {
			return fmt.Errorf("allowlist[%s]: %w", tag, err)
		}
		for _, attr := range attrs {
			if err := validation.Validate(attr,
				validation.Required,
				validation.Match(attrPattern),
			); err != nil {
				return fmt.Errorf("allowlist[%s]: attribute %q: %w", tag, attr, err)
			}
		}
	}

	for _, tag := range f.DropAllowList {
		if err := validateTag(tag); err != nil {
			return fmt.Errorf("drop_allowlist: %w", err)
		}
	}

	return nil
}

func validateTag(tag string) error {
	return validation.Validate(tag,
		validation.Required,
		validation.Match(tagPattern).Error("must be a lowercase tag name"),
	)
}

// Apply installs the overrides on a converter. Removal runs before addition
// so a rules file can drop a default and replace it in one document.
func (f *File) Apply(c *converter.Converter) {
	for _, tag := range f.Unmap {
		c.RemoveMapping(tag)
	}
	for tag, name := range f.Mappings {
		c.SetMapping(tag, converter.FixedMapping(name))
	}
	for _, tag := range f.DropAllowList {
		c.RemoveAllowedAttrs(tag)
	}
	for tag, attrs := range f.AllowList {
		c.AllowAttrs(tag, attrs...)
	}
}
