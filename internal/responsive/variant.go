// Package responsive mounts one of two sibling section implementations
// depending on the device classification.
package responsive

import (
	"context"

	g "maragu.dev/gomponents"

	"github.com/Gamikaru/thecopysocial/internal/device"
)

// Kind names the implementation a Variant selected.
type Kind string

const (
	Desktop Kind = "desktop"
	Mobile  Kind = "mobile"
)

// Select is the pure branching rule.
func Select(isMobile bool) Kind {
	if isMobile {
		return Mobile
	}
	return Desktop
}

// Variant pairs a desktop and a mobile rendering of the same props. Both
// sides share P, so the selector forwards props without touching them.
type Variant[P any] struct {
	Name    string
	Desktop func(P) g.Node
	Mobile  func(P) g.Node
}

// Render mounts exactly one side.
func (v Variant[P]) Render(isMobile bool, props P) g.Node {
	if Select(isMobile) == Mobile {
		return v.Mobile(props)
	}
	return v.Desktop(props)
}

// RenderFor reads the device attached to ctx.
func (v Variant[P]) RenderFor(ctx context.Context, props P) g.Node {
	return v.Render(device.FromContext(ctx).IsMobile(), props)
}
