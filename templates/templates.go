// Package templates holds the embedded page views and email templates.
// Views are html/template files exposed as templ components so handlers
// render them the same way as any other component.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"farida_law_site_go/models"

	"github.com/a-h/templ"
)

//go:embed emails/*.html emails/*.txt views/*.html views/partials/*.html
var FS embed.FS

// Page names, one per view file under views/
const (
	PageHome         = "home"
	PageAbout        = "about"
	PagePractice     = "practice-areas"
	PageReviews      = "reviews"
	PageConsultation = "consultation-request"
	PageIntake       = "client-intake"
	PageNotFound     = "not-found"
)

// PageData is what every view receives
type PageData struct {
	SEO        *models.SEO
	Site       *models.Site
	Path       string
	Nonce      string
	CSRFToken  string
	CSSVersion string
	JSVersion  string
	Year       int
	Form       *FormView
}

// FormView is the render state of one lead form
type FormView struct {
	Kind         models.FormKind
	InstanceID   string
	Action       string
	Status       models.SubmissionStatus
	Values       models.FormValues
	Errors       map[string]string
	ErrorMessage string
	ShowFallback bool
	Challenge    models.Challenge
	InjuryTypes  []string
	EmailDomains []string
	Office       models.ContactInfo
}

// Error returns the message for field, or ""
func (f *FormView) Error(field string) string {
	if f == nil {
		return ""
	}
	return f.Errors[field]
}

// Sending reports whether the submit control must be disabled
func (f *FormView) Sending() bool {
	return f != nil && f.Status == models.StatusSending
}

var funcs = template.FuncMap{
	"isActive": func(current, href string) bool {
		return current == href
	},
	"telHref": func(e164 string) template.URL {
		return template.URL("tel:" + e164)
	},
	"mailtoHref": func(email string) template.URL {
		return template.URL("mailto:" + email)
	},
	"jsonld": func(doc string) template.JS {
		return template.JS(doc)
	},
	"join": strings.Join,
	"inc":  func(i int) int { return i + 1 },
}

var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	p, err := parsePages(FS)
	if err != nil {
		panic(err)
	}
	return p
}

// parsePages builds one template set per page: the layout and partials
// plus that page's "content" definition.
func parsePages(fsys fs.FS) (map[string]*template.Template, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(fsys, "views/layout.html", "views/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	names := []string{PageHome, PageAbout, PagePractice, PageReviews, PageConsultation, PageIntake, PageNotFound}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(fsys, "views/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", name, err)
		}
		out[name] = t.Lookup("layout")
	}
	return out, nil
}

// Page returns the component for a named page
func Page(name string, data PageData) (templ.Component, error) {
	t, ok := pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	return templ.FromGoHTML(t, data), nil
}

// Home renders the landing page
func Home(data PageData) templ.Component { return mustPage(PageHome, data) }

// About renders the attorney page
func About(data PageData) templ.Component { return mustPage(PageAbout, data) }

// PracticeAreas renders the practice area listing
func PracticeAreas(data PageData) templ.Component { return mustPage(PagePractice, data) }

// Reviews renders the testimonials page
func Reviews(data PageData) templ.Component { return mustPage(PageReviews, data) }

// Consultation renders the consultation request form page
func Consultation(data PageData) templ.Component { return mustPage(PageConsultation, data) }

// Intake renders the client intake form page
func Intake(data PageData) templ.Component { return mustPage(PageIntake, data) }

// NotFound renders the 404 page
func NotFound(data PageData) templ.Component { return mustPage(PageNotFound, data) }

func mustPage(name string, data PageData) templ.Component {
	c, err := Page(name, data)
	if err != nil {
		panic(err)
	}
	return c
}
