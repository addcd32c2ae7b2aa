package response

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every screen template receives.
type Page struct {
	Title  string
	Active string
	Notice string
	Error  string
	Body   any
}

var pages = parsePages("employees.html", "employee_summary.html", "attendance.html", "attendance_summary.html")

func parsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return out
}

// HTML renders page inside the shared layout. The page is rendered to a
// buffer first so a template failure never sends a half-written body.
func HTML(w http.ResponseWriter, statusCode int, name string, page Page) {
	tmpl, ok := pages[name]
	if !ok {
		slog.Error("Unknown page template", "template", name)
		http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		slog.Error("Failed to render page", "template", name, "error", err)
		http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}
