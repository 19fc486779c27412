package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	blogDir       = "blog"
	overridesFile = "site.yaml"
)

var dateFormats = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// postMatter is the front matter accepted on a blog post.
type postMatter struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Excerpt string   `yaml:"excerpt"`
	Summary string   `yaml:"summary"`
	Cover   string   `yaml:"cover"`
	Slug    string   `yaml:"slug"`
	Tags    []string `yaml:"tags"`
}

// NewMarkdown returns the converter used for post bodies.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
}

// LoadPosts reads every *.md file under dir. Posts come back sorted by date,
// newest first, undated posts last. A missing dir yields no posts.
func LoadPosts(dir string, log *zap.Logger) ([]*BlogPost, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	md := NewMarkdown()
	var posts []*BlogPost
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", path, err)
		}
		post, err := parsePost(md, path, raw, log)
		if err != nil {
			return err
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortPosts(posts)
	return posts, nil
}

func parsePost(md goldmark.Markdown, path string, raw []byte, log *zap.Logger) (*BlogPost, error) {
	var fm postMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		log.Warn("could not parse front matter, treating as plain markdown", zap.String("path", path), zap.Error(err))
		body = raw
		fm = postMatter{}
	}

	var html bytes.Buffer
	if err := md.Convert(body, &html); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	post := &BlogPost{
		ID:         fm.ID,
		Title:      fm.Title,
		Excerpt:    fm.Excerpt,
		CoverImage: fm.Cover,
		Slug:       fm.Slug,
		Tags:       fm.Tags,
		Body:       template.HTML(html.String()),
		SourcePath: path,
	}
	if post.Title == "" {
		post.Title = titleFromFilename(base)
	}
	if post.Slug == "" {
		post.Slug = strings.ToLower(strings.ReplaceAll(base, "_", "-"))
	}
	if post.ID == "" {
		post.ID = post.Slug
	}
	if post.Excerpt == "" {
		post.Excerpt = fm.Summary
	}
	if fm.Date != "" {
		if post.Date, err = parseDate(fm.Date); err != nil {
			log.Warn("could not parse date, use YYYY-MM-DD or RFC3339", zap.String("path", path), zap.String("date", fm.Date))
		}
	}
	return post, nil
}

func titleFromFilename(base string) string {
	t := strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(t)
}

func parseDate(s string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

func sortPosts(posts []*BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date.IsZero() {
			return false
		}
		if posts[j].Date.IsZero() {
			return true
		}
		return posts[i].Date.After(posts[j].Date)
	})
}

// Load builds a Site from the defaults, then applies site.yaml overrides and
// markdown posts found under dir.
func Load(dir string, log *zap.Logger) (*Site, error) {
	site := Default()

	if err := ApplyOverrides(site, filepath.Join(dir, overridesFile)); err != nil {
		return nil, err
	}

	posts, err := LoadPosts(filepath.Join(dir, blogDir), log)
	if err != nil {
		return nil, fmt.Errorf("error during content collection walk: %w", err)
	}
	if len(posts) > 0 {
		site.Posts = posts
	}

	log.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("posts", len(site.Posts)),
		zap.Int("projects", len(site.Projects)),
		zap.Int("testimonials", len(site.Testimonials)),
	)
	return site, nil
}
