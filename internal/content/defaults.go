package content

import (
	"html/template"
	"time"
)

// Default returns the built-in content. Each call builds a fresh Site.
func Default() *Site {
	return &Site{
		Title:   "The Copy Social",
		Tagline: "Words that work as hard as you do.",
		Nav: []NavItem{
			{Label: "Home", Path: PathHome},
			{Label: "About", Path: PathAbout},
			{Label: "Services", Path: PathServices},
			{Label: "Portfolio", Path: PathPortfolio},
			{Label: "Blog", Path: PathBlog},
			{Label: "Let's Talk", Path: PathContact, IsButton: true},
		},
		FooterNav: []NavItem{
			{Label: "About", Path: PathAbout},
			{Label: "Services", Path: PathServices},
			{Label: "Blog", Path: PathBlog},
			{Label: "Newsletter", Path: PathSubscribe},
			{Label: "Contact", Path: PathContact},
		},
		Socials: []NavItem{
			{Label: "linkedin", Path: "https://www.linkedin.com/"},
			{Label: "instagram", Path: "https://www.instagram.com/"},
		},
		Hero: Hero{
			Eyebrow:   "Copywriting & content strategy",
			Title:     "Copy that sounds like you,",
			Highlight: "only sharper.",
			Subtitle:  "Website copy, email sequences and brand voice guides for small businesses that would rather be doing the work than writing about it.",
			CTA:       NavItem{Label: "Book a discovery call", Path: PathContact, IsButton: true},
			Secondary: NavItem{Label: "See the work", Path: PathPortfolio},
			Image:     "/static/images/hero.jpg",
		},
		AboutHero: Hero{
			Eyebrow:  "About",
			Title:    "Hi, I write the words",
			Subtitle: "Ten years of agency copy, one stubborn belief: clear beats clever.",
			CTA:      NavItem{Label: "Work with me", Path: PathContact, IsButton: true},
			Image:    "/static/images/portrait.jpg",
		},
		Testimonials: []Testimonial{
			{Quote: "Our sign-ups doubled the month the new homepage went live. The copy finally says what we actually do.", Author: "Maya R.", Company: "Fieldnote Studio"},
			{Quote: "She found our voice faster than we did. The style guide is now the most-used doc in the company.", Author: "Dev P.", Company: "Northbound Coffee"},
			{Quote: "Clear, on time and somehow fun. The welcome sequence pays for itself every week."},
			{Quote: "I dreaded writing my about page for two years. It took one call.", Author: "Lena K."},
		},
		Posts: defaultPosts(),
		Projects: []Project{
			{ID: "fieldnote", Title: "Fieldnote Studio", Description: "Homepage and service pages rewrite for a design studio.", ImagePath: "/static/images/work/fieldnote.jpg", Tags: []string{"Website"}, Link: "https://example.com/fieldnote"},
			{ID: "northbound", Title: "Northbound Coffee", Description: "Brand voice guide and packaging copy.", ImagePath: "/static/images/work/northbound.jpg", Tags: []string{"Brand Voice", "Packaging"}},
			{ID: "tidewell", Title: "Tidewell Yoga", Description: "Seven-email welcome sequence for new members.", ImagePath: "/static/images/work/tidewell.jpg", Tags: []string{"Email"}},
			{ID: "ledgerly", Title: "Ledgerly", Description: "Product launch landing page and onboarding microcopy.", ImagePath: "", Tags: []string{"Website", "Email"}},
		},
		Packages: []ServicePackage{
			{ID: "starter", Name: "Spark", Price: "$750", Summary: "One page, done properly.", Features: []string{"Single landing or about page", "One round of revisions", "SEO title and meta description"}},
			{ID: "website", Name: "Full Site", Price: "$2,400", Summary: "Every core page in one consistent voice.", Features: []string{"Up to five pages", "Voice discovery session", "Two rounds of revisions", "Launch checklist"}, Featured: true},
			{ID: "email", Name: "Inbox", Price: "$1,200", Summary: "A welcome sequence that sells without shouting.", Features: []string{"Five to seven emails", "Subject line variants", "Platform-ready formatting"}},
		},
		AddOns: []ServiceAddOn{
			{Name: "Brand voice guide", Price: "$600", Description: "A short, usable guide to how your brand sounds."},
			{Name: "Rush delivery", Price: "+25%", Description: "First drafts in five business days."},
			{Name: "Content refresh", Price: "$300", Description: "Tighten and update one existing page."},
		},
		Process: []ProcessStep{
			{Number: 1, Title: "Discover", Description: "A relaxed call about your business, your customers and what is not working.", Icon: "chat"},
			{Number: 2, Title: "Draft", Description: "Research, outline and a first draft in your voice.", Icon: "pen"},
			{Number: 3, Title: "Refine", Description: "We edit together until every line earns its place.", Icon: "sparkle"},
			{Number: 4, Title: "Launch", Description: "Final files, formatting and a checklist for going live.", Icon: "rocket"},
		},
		Approach: []ApproachStep{
			{Title: "Listen first", Description: "The best lines usually come from how your customers already talk.", Icon: "ear"},
			{Title: "Say one thing", Description: "Each page gets a single job and copy that does it.", Icon: "target"},
			{Title: "Keep it human", Description: "No buzzwords, no filler, nothing you would not say out loud.", Icon: "heart"},
		},
		Journey: []Milestone{
			{Year: "2014", Title: "Agency beginnings", Description: "Junior copywriter on retail and hospitality accounts."},
			{Year: "2018", Title: "Senior writer", Description: "Led voice work for a dozen consumer brands."},
			{Year: "2021", Title: "Going independent", Description: "Started The Copy Social to work directly with small businesses."},
			{Year: "Today", Title: "Still writing", Description: "Website, email and brand voice projects for founders who care about words."},
		},
	}
}

func defaultPosts() []*BlogPost {
	date := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	return []*BlogPost{
		{
			ID:         "post-3",
			Title:      "Your about page is not about you",
			Excerpt:    "The most-visited page on most small business sites is doing the least work. Here is how to fix it.",
			CoverImage: "/static/images/blog/about-page.jpg",
			Date:       date(2024, time.March, 12),
			Slug:       "about-page-not-about-you",
			Tags:       []string{"Website", "Strategy"},
			Body:       template.HTML("<p>Visitors read your about page to decide whether you understand them.</p><h2 id=\"lead-with-them\">Lead with them</h2><p>Open with the problem you solve, then earn the right to talk about yourself.</p>"),
		},
		{
			ID:         "post-2",
			Title:      "Five subject lines that get opened",
			Excerpt:    "Patterns from a year of welcome-sequence testing.",
			CoverImage: "/static/images/blog/subject-lines.jpg",
			Date:       date(2024, time.January, 23),
			Slug:       "five-subject-lines",
			Tags:       []string{"Email"},
			Body:       template.HTML("<p>Curiosity beats cleverness, and specificity beats both.</p>"),
		},
		{
			ID:      "post-1",
			Title:   "What a brand voice guide is for",
			Excerpt: "It is not a poster. It is a tool your whole team should open weekly.",
			Date:    date(2023, time.October, 5),
			Slug:    "brand-voice-guide",
			Tags:    []string{"Brand Voice", "Strategy"},
			Body:    template.HTML("<p>A good voice guide answers one question: how would we say this?</p>"),
		},
	}
}
