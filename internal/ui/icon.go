package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// iconPaths holds the 24x24 outline paths for every icon the site uses.
var iconPaths = map[string]string{
	"chat":        "M8 10h8M8 14h5M21 12a9 9 0 0 1-13.5 7.8L3 21l1.2-4.5A9 9 0 1 1 21 12z",
	"pen":         "M16.5 3.5l4 4L8 20H4v-4L16.5 3.5z",
	"sparkle":     "M12 3l1.8 5.2L19 10l-5.2 1.8L12 17l-1.8-5.2L5 10l5.2-1.8L12 3z",
	"rocket":      "M5 15c-1.5 1.5-2 5-2 5s3.5-.5 5-2m1-8a14 14 0 0 1 11-6 14 14 0 0 1-6 11l-4 2-3-3 2-4z",
	"ear":         "M6 9a6 6 0 1 1 12 0c0 3-2 4-3 5.5S14 18 12 20a3 3 0 0 1-4-1",
	"target":      "M12 21a9 9 0 1 0 0-18 9 9 0 0 0 0 18zm0-4a5 5 0 1 0 0-10 5 5 0 0 0 0 10zm0-4a1 1 0 1 0 0-2 1 1 0 0 0 0 2z",
	"heart":       "M12 20s-7-4.4-7-10a4 4 0 0 1 7-2.6A4 4 0 0 1 19 10c0 5.6-7 10-7 10z",
	"arrow-left":  "M15 18l-6-6 6-6",
	"arrow-right": "M9 18l6-6-6-6",
	"check":       "M5 12l5 5L20 7",
	"alert":       "M12 8v5m0 3h.01M10.3 3.9L2 18a2 2 0 0 0 1.7 3h16.6a2 2 0 0 0 1.7-3L13.7 3.9a2 2 0 0 0-3.4 0z",
	"quote":       "M7 7h4v4c0 3-1.5 5-4 6M14 7h4v4c0 3-1.5 5-4 6",
	"menu":        "M4 6h16M4 12h16M4 18h16",
	"mail":        "M4 6h16v12H4zM4 7l8 6 8-6",
	"linkedin":    "M6 9v9M6 6v.01M10 18v-5a3 3 0 0 1 6 0v5M10 9v9",
	"instagram":   "M7 3h10a4 4 0 0 1 4 4v10a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4V7a4 4 0 0 1 4-4zm5 13a4 4 0 1 0 0-8 4 4 0 0 0 0 8zm5-9v.01",
}

// HasIcon reports whether name resolves to an icon.
func HasIcon(name string) bool {
	_, ok := iconPaths[name]
	return ok
}

// Icon renders a named icon. Unknown names render nothing.
func Icon(name, class string) g.Node {
	d, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.El("svg",
		Class(strings.TrimSpace("icon "+class)),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "1.75"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Aria("hidden", "true"),
		g.El("path", g.Attr("d", d)),
	)
}
