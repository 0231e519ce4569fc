package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"github.com/changesci/changes-web/internal"
	"github.com/changesci/changes-web/pkg/layout"
)

var log = internal.GetLogger()

var LayoutTemplates = []string{
	"templates/layout/*.html",
}

// flashTemplate is also parsed for partial renders so notices can be
// swapped in out of band
const flashTemplate = "templates/layout/flash.html"

//go:embed static/css/* static/js/*
var StaticFS embed.FS

//go:embed templates/*
var TemplatesFS embed.FS

func NewPage(
	title, subTitle, path string,
	templates []string,
	breadCrumbs []BreadCrumb,
	data interface{},
) *Page {
	return &Page{
		Title:       title,
		SubTitle:    subTitle,
		MenuItems:   menuItems,
		Templates:   templates,
		Path:        path,
		Slug:        slugify(title),
		BreadCrumbs: breadCrumbs,
		Data:        data,
		Status:      http.StatusOK,
	}
}

type BreadCrumb struct {
	Title string
	Path  string
}

type Page struct {
	Title       string
	SubTitle    string
	MenuItems   []MenuItem
	Templates   []string
	Path        string
	Slug        string
	BreadCrumbs []BreadCrumb
	Data        interface{}
	Status      int
	// Layout is nil when the layout failed to activate
	Layout  *layout.Controller
	Notices []layout.Notice
}

// WithLayout attaches the layout view-model and the notices to show
func (p *Page) WithLayout(c *layout.Controller, notices []layout.Notice) *Page {
	p.Layout = c
	p.Notices = notices
	return p
}

// WithStatus sets the HTTP status the page is served with
func (p *Page) WithStatus(status int) *Page {
	p.Status = status
	return p
}

// HTMLTitle is the document title, e.g. "Builds · Changes"
func (p *Page) HTMLTitle() string {
	siteTitle := "Changes"
	if p.Layout != nil && p.Layout.PageTitle != "" {
		siteTitle = p.Layout.PageTitle
	}
	if p.Title == "" {
		return siteTitle
	}
	return p.Title + " · " + siteTitle
}

func (p *Page) Render(w http.ResponseWriter, r *http.Request) {
	// If HX-Request header is set, render content template only
	// If the page was loaded directly, render full layout
	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true" {
		p.renderPartial(w)
	} else {
		p.renderFull(w)
	}
}

func (p *Page) renderPartial(w http.ResponseWriter) {
	templates := append([]string{flashTemplate}, p.Templates...)

	tmpl, err := template.New(p.Title).Funcs(TemplateFuncs()).ParseFS(
		TemplatesFS,
		templates...,
	)
	if err != nil {
		log.Errorf("Failed to parse template: %s", err)
		http.Error(w, "Failed to parse template", http.StatusInternalServerError)
		return
	}

	if p.Path != "" {
		w.Header().Set("HX-Push", p.Path)
	}

	// Render template content only, plus any notices
	names := []string{"Content"}
	if len(p.Notices) > 0 {
		names = append(names, "FlashSwap")
	}
	p.execute(w, tmpl, names...)
}

func (p *Page) renderFull(w http.ResponseWriter) {
	templates := append(append([]string{}, LayoutTemplates...), p.Templates...)

	tmpl, err := template.New(p.Title).Funcs(TemplateFuncs()).ParseFS(
		TemplatesFS,
		templates...,
	)
	if err != nil {
		log.Errorf("Failed to parse template: %s", err)
		http.Error(w, "Failed to parse template", http.StatusInternalServerError)
		return
	}

	// Render full layout
	p.execute(w, tmpl, "Layout")
}

// execute renders into a buffer first so a template error can still
// produce a clean 500
func (p *Page) execute(w http.ResponseWriter, tmpl *template.Template, names ...string) {
	var buf bytes.Buffer
	for _, name := range names {
		if err := tmpl.ExecuteTemplate(&buf, name, p); err != nil {
			log.Errorf("Failed to execute template: %s", err)
			http.Error(w, "Failed to execute template", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	status := p.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Debugf("Failed to write page: %s", err)
	}
}

var nonAlpha = regexp.MustCompile("[^a-zA-Z]+")

// slugify converts a string to an alpha-only lowercase string
func slugify(s string) string {
	processedString := nonAlpha.ReplaceAllString(s, "")
	return strings.ToLower(processedString)
}
