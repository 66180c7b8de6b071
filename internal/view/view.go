package view

import (
	"bytes"
	"fmt"
	"go-admin-dashboard/internal/service"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
)

// View represents a collection of parsed HTML templates.
type View struct {
	templates map[string]*template.Template
}

// New creates a new View by parsing all templates from the given filesystem.
// funcs are added on top of the built-in template functions.
func New(templateFS fs.FS, funcs template.FuncMap) (*View, error) {
	v := &View{
		templates: make(map[string]*template.Template),
	}

	fm := baseFuncs()
	for name, fn := range funcs {
		fm[name] = fn
	}

	// First, get all the layout files
	layouts, err := fs.Glob(templateFS, "templates/layouts/*.html")
	if err != nil {
		return nil, err
	}

	// Then, get all the page files
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	// For each page, parse it with the layout files
	for _, page := range pages {
		files := append(append([]string{}, layouts...), page)
		// The name of the template is the base name of the page file
		name := filepath.Base(page)
		ts, err := template.New(name).Funcs(fm).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		v.templates[name] = ts
	}

	return v, nil
}

// Has reports whether a page template with the given name was parsed.
func (v *View) Has(name string) bool {
	_, ok := v.templates[name]
	return ok
}

// Render executes a specific template by name.
func (v *View) Render(w io.Writer, r *http.Request, name string, data map[string]interface{}) error {
	ts, ok := v.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	data["DarkMode"] = IsDarkMode(r.Context())
	data["User"] = ProfileFrom(r.Context())
	data["CurrentPath"] = r.URL.Path

	// Execute the template into a buffer first to catch any errors
	// before writing to the response writer.
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		return err
	}

	if rw, ok := w.(http.ResponseWriter); ok && rw.Header().Get("Content-Type") == "" {
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	_, err := buf.WriteTo(w)
	return err
}

// RichTextFuncs exposes rt to templates as "markdown" and "plain".
func RichTextFuncs(rt *service.RichText) template.FuncMap {
	return template.FuncMap{
		"markdown": rt.Render,
		"plain":    rt.Plain,
	}
}

func baseFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":    FormatDate,
		"categoryClass": CategoryClass,
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"hasPrefix":     strings.HasPrefix,
		"dict":          dict,
	}
}

// dict builds a map from alternating keys and values, for passing several
// values to a nested template.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// FormatDate renders a stored date as "02 January 2006". Unparseable values
// are returned unchanged.
func FormatDate(s string) string {
	t := service.ParseDate(s)
	if t.IsZero() {
		return s
	}
	return t.Format("02 January 2006")
}

// CategoryClass returns the badge CSS class for an achievement or news category.
func CategoryClass(category string) string {
	switch strings.ToLower(category) {
	case "international":
		return "badge badge-international"
	case "national":
		return "badge badge-national"
	case "campus":
		return "badge badge-campus"
	case "events":
		return "badge badge-events"
	case "news":
		return "badge badge-news"
	default:
		return "badge"
	}
}
