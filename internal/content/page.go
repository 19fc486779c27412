package content

// Page is the per-route head metadata shared by every layout.
type Page struct {
	Title       string
	Description string
	Path        string
	OGImage     string
}

// Static route paths. The router and the navigation both use these.
const (
	PathHome      = "/"
	PathAbout     = "/about"
	PathServices  = "/services"
	PathPortfolio = "/portfolio"
	PathBlog      = "/blog"
	PathContact   = "/contact"
	PathSubscribe = "/subscribe"
)

// PostPath is the detail route for a blog slug.
func PostPath(slug string) string {
	return PathBlog + "/" + slug
}
