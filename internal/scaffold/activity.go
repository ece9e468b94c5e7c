// Package scaffold creates new activity documents from a blueprint.
package scaffold

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Activity statuses accepted in front-matter.
const (
	StatusDraft  = "draft"
	StatusReady  = "ready"
	StatusReview = "review"
)

const (
	// DefaultSlug is used when neither a slug nor a title is given
	DefaultSlug = "new-activity"

	// DefaultOrder is the sidebar position of a new activity
	DefaultOrder = 100
)

// Tags is a tag list. In YAML it may be a sequence or a comma-separated string.
type Tags []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = list
	case yaml.ScalarNode:
		*t = ParseTags(node.Value)
	default:
		return fmt.Errorf("line %d: tags must be a list or a comma-separated string", node.Line)
	}
	return nil
}

// ParseTags splits a comma-separated tag string, dropping empty entries.
func ParseTags(s string) Tags {
	var tags Tags
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Activity describes a new activity.
type Activity struct {
	Slug         string `yaml:"slug"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Level        string `yaml:"level"`
	Duration     string `yaml:"duration"`
	Tags         Tags   `yaml:"tags"`
	Status       string `yaml:"status"`
	Order        *int   `yaml:"order"`
	SidebarLabel string `yaml:"sidebarLabel"`
}

// ParseActivity decodes an activity description.
func ParseActivity(data []byte) (*Activity, error) {
	var a Activity
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse activity: %w", err)
	}
	return &a, nil
}

// LoadActivity reads an activity description from a YAML file.
func LoadActivity(path string) (*Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity file: %w", err)
	}
	return ParseActivity(data)
}

// Normalize fills defaults and validates the status.
func (a *Activity) Normalize() error {
	a.Slug = strings.TrimSpace(a.Slug)
	a.Title = strings.TrimSpace(a.Title)

	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if a.Slug == "" {
		a.Slug = DefaultSlug
	}
	if a.Title == "" {
		a.Title = a.Slug
	}

	switch a.Status {
	case "":
		a.Status = StatusDraft
	case StatusDraft, StatusReady, StatusReview:
	default:
		return fmt.Errorf("invalid status %q: must be one of %s, %s, %s", a.Status, StatusDraft, StatusReady, StatusReview)
	}

	if a.Order == nil {
		order := DefaultOrder
		a.Order = &order
	}
	if a.SidebarLabel == "" {
		a.SidebarLabel = a.Title
	}
	return nil
}
