package content

import "slices"

func isAll(tag string) bool {
	return tag == "" || tag == AllTag
}

// FilterPosts returns the posts tagged with tag, preserving order. "All" and
// the empty string return posts unchanged.
func FilterPosts(posts []*BlogPost, tag string) []*BlogPost {
	if isAll(tag) {
		return posts
	}
	out := make([]*BlogPost, 0, len(posts))
	for _, p := range posts {
		if slices.Contains(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

// FilterProjects is FilterPosts for portfolio projects.
func FilterProjects(projects []Project, tag string) []Project {
	if isAll(tag) {
		return projects
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if slices.Contains(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

// PostTags lists the distinct tags across posts in first-seen order,
// prefixed with AllTag.
func PostTags(posts []*BlogPost) []string {
	sets := make([][]string, len(posts))
	for i, p := range posts {
		sets[i] = p.Tags
	}
	return tags(sets)
}

// ProjectTags is PostTags for projects.
func ProjectTags(projects []Project) []string {
	sets := make([][]string, len(projects))
	for i, p := range projects {
		sets[i] = p.Tags
	}
	return tags(sets)
}

func tags(sets [][]string) []string {
	out := []string{AllTag}
	seen := map[string]bool{AllTag: true}
	for _, set := range sets {
		for _, t := range set {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
