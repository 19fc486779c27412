package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// overrides is the shape of content/site.yaml. Any list left out keeps the
// built-in content.
type overrides struct {
	Title        string           `yaml:"title"`
	Tagline      string           `yaml:"tagline"`
	Nav          []NavItem        `yaml:"nav"`
	Testimonials []Testimonial    `yaml:"testimonials"`
	Projects     []Project        `yaml:"projects"`
	Packages     []ServicePackage `yaml:"packages"`
	AddOns       []ServiceAddOn   `yaml:"addOns"`
}

// ApplyOverrides merges the file at path into site. A missing file is not an
// error.
func ApplyOverrides(site *Site, path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading overrides file %s: %w", path, err)
	}

	var o overrides
	if err := yaml.UnmarshalStrict(raw, &o); err != nil {
		return fmt.Errorf("error unmarshalling overrides file %s: %w", path, err)
	}

	if o.Title != "" {
		site.Title = o.Title
	}
	if o.Tagline != "" {
		site.Tagline = o.Tagline
	}
	if len(o.Nav) > 0 {
		site.Nav = o.Nav
	}
	if len(o.Testimonials) > 0 {
		site.Testimonials = o.Testimonials
	}
	if len(o.Projects) > 0 {
		site.Projects = o.Projects
	}
	if len(o.Packages) > 0 {
		site.Packages = o.Packages
	}
	if len(o.AddOns) > 0 {
		site.AddOns = o.AddOns
	}
	return nil
}
