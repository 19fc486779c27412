package responsive

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/device"
)

type props struct {
	Title string
	Items []string
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestVariant(t *testing.T) {
	var desktopGot, mobileGot *props
	v := Variant[*props]{
		Name: "test",
		Desktop: func(p *props) g.Node {
			desktopGot = p
			return h.Div(h.Class("desktop"), g.Text(p.Title))
		},
		Mobile: func(p *props) g.Node {
			mobileGot = p
			return h.Div(h.Class("mobile"), g.Text(p.Title))
		},
	}
	p := &props{Title: "Hello", Items: []string{"a"}}

	out := render(t, v.Render(false, p))
	assert.Equal(t, `<div class="desktop">Hello</div>`, out)
	assert.Same(t, p, desktopGot)
	assert.Nil(t, mobileGot)

	out = render(t, v.Render(true, p))
	assert.Equal(t, `<div class="mobile">Hello</div>`, out)
	assert.Same(t, p, mobileGot)
}

func TestRenderFor(t *testing.T) {
	v := Variant[string]{
		Desktop: func(s string) g.Node { return g.Text("D:" + s) },
		Mobile:  func(s string) g.Node { return g.Text("M:" + s) },
	}
	ctx := device.WithContext(context.Background(), device.New(360, 768))
	assert.Equal(t, "M:x", render(t, v.RenderFor(ctx, "x")))
	assert.Equal(t, "D:x", render(t, v.RenderFor(context.Background(), "x")))
}

func TestSelect(t *testing.T) {
	assert.Equal(t, Mobile, Select(true))
	assert.Equal(t, Desktop, Select(false))
}
