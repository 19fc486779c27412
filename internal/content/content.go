// Package content holds the typed, read-only data the site is rendered from.
// Nothing in this package mutates a Site after it has been built; filters
// return derived slices.
package content

import (
	"html/template"
	"time"
)

// AllTag is the filter sentinel meaning "no filtering".
const AllTag = "All"

type NavItem struct {
	Label    string `yaml:"label"`
	Path     string `yaml:"path"`
	IsButton bool   `yaml:"isButton"`
}

type Testimonial struct {
	Quote   string `yaml:"quote"`
	Author  string `yaml:"author"`
	Company string `yaml:"company"`
}

// BlogPost is a single article. Slug is the external identifier used in
// /blog/{slug}; ID is an internal key.
type BlogPost struct {
	ID         string
	Title      string
	Excerpt    string
	CoverImage string
	Date       time.Time
	Slug       string
	Tags       []string
	Body       template.HTML
	SourcePath string
}

type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ImagePath   string   `yaml:"imagePath"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
}

type ServicePackage struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Price    string   `yaml:"price"`
	Summary  string   `yaml:"summary"`
	Features []string `yaml:"features"`
	Featured bool     `yaml:"featured"`
}

type ServiceAddOn struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
}

type Hero struct {
	Eyebrow   string
	Title     string
	Highlight string
	Subtitle  string
	CTA       NavItem
	Secondary NavItem
	Image     string
}

// ProcessStep is one step of the "how we work" sequence on the home page.
type ProcessStep struct {
	Number      int
	Title       string
	Description string
	Icon        string
}

type ApproachStep struct {
	Title       string
	Description string
	Icon        string
}

// Milestone is a point on the about-page journey timeline.
type Milestone struct {
	Year        string
	Title       string
	Description string
}

// Site aggregates every content data module.
type Site struct {
	Title        string
	Tagline      string
	Nav          []NavItem
	FooterNav    []NavItem
	Socials      []NavItem
	Hero         Hero
	AboutHero    Hero
	Testimonials []Testimonial
	Posts        []*BlogPost
	Projects     []Project
	Packages     []ServicePackage
	AddOns       []ServiceAddOn
	Process      []ProcessStep
	Approach     []ApproachStep
	Journey      []Milestone
}

// PostBySlug resolves a blog detail page.
func (s *Site) PostBySlug(slug string) (*BlogPost, bool) {
	for _, p := range s.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return nil, false
}

// RecentPosts returns at most n posts in their stored order.
func (s *Site) RecentPosts(n int) []*BlogPost {
	if n >= len(s.Posts) {
		return s.Posts
	}
	return s.Posts[:n]
}
