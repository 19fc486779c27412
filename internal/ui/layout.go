package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/device"
	"github.com/Gamikaru/thecopysocial/internal/form"
)

type LayoutProps struct {
	Page       content.Page
	Site       *content.Site
	BaseURL    string
	Mobile     bool
	Breakpoint int
	// Newsletter is the footer signup state; nil renders a fresh form and
	// HideNewsletter drops it entirely.
	Newsletter     *form.Newsletter
	HideNewsletter bool
}

// Layout wraps body in the document shell shared by every page.
func Layout(p LayoutProps, body ...g.Node) g.Node {
	title := p.Site.Title
	if p.Page.Title != "" {
		title = p.Page.Title + " | " + p.Site.Title
	}
	newsletter := p.Newsletter
	if newsletter == nil {
		newsletter = form.NewNewsletter()
	}

	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				g.If(p.Page.Description != "", Meta(Name("description"), Content(p.Page.Description))),
				g.If(p.BaseURL != "", Link(Rel("canonical"), Href(p.BaseURL+p.Page.Path))),
				Meta(g.Attr("property", "og:title"), Content(title)),
				g.If(p.Page.OGImage != "", Meta(g.Attr("property", "og:image"), Content(p.Page.OGImage))),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
			),
			Body(
				c.Classes{"is-mobile": p.Mobile, "is-desktop": !p.Mobile},
				Data("mobile", strconv.FormatBool(p.Mobile)),
				Data("breakpoint", strconv.Itoa(p.Breakpoint)),
				SiteNav(p.Site.Title, p.Site.Nav, p.Page.Path, p.Mobile),
				Main(ID("main"), g.Group(body)),
				SiteFooter(p.Site, newsletter, p.HideNewsletter),
				Script(g.Raw(pageScript)),
			),
		),
	)
}

// SiteNav is a bar of links on desktop and a disclosure menu on mobile.
func SiteNav(brandName string, items []content.NavItem, current string, mobile bool) g.Node {
	links := g.Map(items, func(item content.NavItem) g.Node {
		if item.IsButton {
			return LinkButton(item, true)
		}
		return A(
			c.Classes{"nav-link": true, "is-active": item.Path == current},
			Href(item.Path),
			g.If(item.Path == current, Aria("current", "page")),
			g.Text(item.Label),
		)
	})
	brand := A(Class("brand"), Href(content.PathHome), g.Text(brandName))

	if mobile {
		return Header(Class("site-header is-mobile"),
			brand,
			g.El("details", Class("mobile-menu"),
				g.El("summary", Aria("label", "Menu"), Icon("menu", "")),
				Nav(Class("mobile-nav"), links),
			),
		)
	}
	return Header(Class("site-header"),
		brand,
		Nav(Class("desktop-nav"), links),
	)
}

func SiteFooter(site *content.Site, newsletter *form.Newsletter, hideNewsletter bool) g.Node {
	return Footer(Class("site-footer"),
		g.If(!hideNewsletter, Div(Class("footer-newsletter"),
			Heading(3, "", g.Text("Notes on writing that sells")),
			P(g.Text("One short email a month. No fluff, unsubscribe any time.")),
			NewsletterForm(newsletter, content.PathSubscribe, true),
		)),
		Divider(),
		Nav(Class("footer-nav"), g.Map(site.FooterNav, func(item content.NavItem) g.Node {
			return A(Href(item.Path), g.Text(item.Label))
		})),
		Div(Class("socials"), g.Map(site.Socials, func(item content.NavItem) g.Node {
			return A(Href(item.Path), Rel("noopener noreferrer"), Target("_blank"), Aria("label", item.Label),
				Icon(item.Label, "social-icon"))
		})),
		P(Class("fine-print"), g.Text(site.Tagline)),
	)
}

// pageScript reports the viewport width through the width cookie, reloads
// when a resize crosses the breakpoint the page was rendered for, and drives
// the carousel. show() keeps the prev, next and dot links pointing at the
// neighbours of the visible slide, and refuses changes for data-transition
// milliseconds after each one. Auto-advance refused that way retries once
// the transition ends.
var pageScript = `(function(){
var b=document.body,bp=+b.dataset.breakpoint,m=b.dataset.mobile==="true",t;
function report(){document.cookie="` + device.WidthCookie + `="+window.innerWidth+";path=/;max-age=31536000;samesite=lax";}
report();
window.addEventListener("resize",function(){clearTimeout(t);t=setTimeout(function(){report();if((window.innerWidth<bp)!==m)location.reload();},250);});
document.querySelectorAll("[data-carousel]").forEach(function(el){
var n=+el.dataset.count,iv=+el.dataset.interval,tr=+el.dataset.transition,ret=el.dataset.return,f=el.querySelector(".carousel-swipe"),x0=null,x1=null,busy=false;
var s=el.querySelectorAll(".carousel-slide"),d=el.querySelectorAll(".carousel-dot"),pv=el.querySelector(".carousel-prev"),nx=el.querySelector(".carousel-next"),a=+el.dataset.active;
function link(i){return ret+"?` + CarouselParam + `="+((i+n)%n)+"` + carouselAnchor + `";}
function show(i){i=(i+n)%n;if(busy||i===a)return false;
s[a].classList.remove("is-active");s[a].setAttribute("aria-hidden","true");if(d[a]){d[a].classList.remove("is-active");d[a].removeAttribute("aria-current");}
a=i;s[a].classList.add("is-active");s[a].removeAttribute("aria-hidden");if(d[a]){d[a].classList.add("is-active");d[a].setAttribute("aria-current","true");}
if(pv)pv.href=link(a-1);if(nx)nx.href=link(a+1);if(f)f.active.value=a;
if(tr>0){busy=true;setTimeout(function(){busy=false;},tr);}
return true;}
if(n>1&&iv>0)setInterval(function(){if(!show(a+1)&&busy)setTimeout(function(){show(a+1);},tr);},iv);
if(pv)pv.addEventListener("click",function(e){e.preventDefault();show(a-1);});
if(nx)nx.addEventListener("click",function(e){e.preventDefault();show(a+1);});
d.forEach(function(dot,i){dot.addEventListener("click",function(e){e.preventDefault();show(i);});});
el.addEventListener("touchstart",function(e){x0=e.touches[0].clientX;x1=null;},{passive:true});
el.addEventListener("touchmove",function(e){x1=e.touches[0].clientX;},{passive:true});
el.addEventListener("touchend",function(){if(f&&x0!==null&&x1!==null){f.startX.value=Math.round(x0);f.endX.value=Math.round(x1);f.submit();}x0=x1=null;});
});
document.querySelectorAll("form[data-state]").forEach(function(f){f.addEventListener("submit",function(){var s=f.querySelector("button[type=submit]");if(s){setTimeout(function(){s.disabled=true;s.setAttribute("aria-busy","true");},0);}f.dataset.state="submitting";});});
})();`
