package loader

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

// Fragment templates, one per repeated entry. Text goes through "field" so
// the text policy decides between escaping and trusted markup; attribute
// values are escaped by html/template.
const fragmentSource = `
{{define "nav-item" -}}
<li><a href="{{safeURL .Href}}" class="nav-link">{{field "menuItems.label" .Label}}</a></li>
{{- end}}

{{define "highlight" -}}
<div class="highlight-item"><i class="{{.Icon}}"></i> <span>{{field "highlights.text" .Text}}</span></div>
{{- end}}

{{define "cta-button" -}}
<a href="{{safeURL .Href}}" class="btn btn-{{.Type}}"{{if .External}} target="_blank"{{end}}>
{{- if .Icon}}<i class="{{.Icon}}"></i> {{end}}{{field "cta.buttons.text" .Text}}</a>
{{- end}}

{{define "social-link" -}}
<a href="{{safeURL .URL}}" target="_blank" aria-label="{{.Platform}}"><i class="{{.Icon}}"></i></a>
{{- end}}

{{define "paragraph" -}}
<p>{{field "paragraphs" .}}</p>
{{- end}}

{{define "statistic" -}}
<div class="stat-item"><h3>{{field "statistics.value" .Value}}</h3><p>{{field "statistics.label" .Label}}</p></div>
{{- end}}

{{define "timeline-item" -}}
<div class="timeline-item"><div class="timeline-content">
<div class="timeline-header"><div><h3 class="timeline-title">{{field "experiences.title" .Title}}</h3><p class="timeline-company">{{field "experiences.company" .Company}}</p></div><span class="timeline-period">{{field "experiences.period" .Period}}</span></div>
<div class="timeline-description"><p>{{field "experiences.description" .Description}}</p>
{{- with .Responsibilities}}<ul>{{range .}}<li>{{field "experiences.responsibilities" .}}</li>{{end}}</ul>{{end -}}
</div></div></div>
{{- end}}

{{define "skill-category" -}}
<div class="skill-category"><h3><i class="{{.Icon}}"></i> {{field "categories.category" .Category}}</h3>
<div class="skill-list">{{range .Skills}}<span class="skill-tag">{{field "categories.skills" .}}</span>{{end}}</div></div>
{{- end}}

{{define "project-card" -}}
<div class="project-card"><div class="project-image">
{{- if .Image}}<img src="{{safeURL .Image}}" alt="{{.Title}}" style="width: 100%; height: 100%; object-fit: cover;">
{{- else}}<i class="{{or .Icon "fas fa-code"}}"></i>{{end -}}
</div><div class="project-content">
<h3 class="project-title">{{field "projects.title" .Title}}</h3>
<p class="project-description">{{field "projects.description" .Description}}</p>
<div class="project-tech">{{range .Technologies}}<span class="tech-badge">{{field "projects.technologies" .}}</span>{{end}}</div>
<div class="project-links">
{{- with .GitHub}}<a href="{{safeURL .}}" target="_blank" class="project-link"><i class="fab fa-github"></i> View Code</a>{{end}}
{{- with .Demo}}<a href="{{safeURL .}}" target="_blank" class="project-link"><i class="fas fa-external-link-alt"></i> Live Demo</a>{{end -}}
</div></div></div>
{{- end}}

{{define "education-item" -}}
<div class="education-item"><div class="education-header"><div><h3 class="education-degree">{{field "education.degree" .Degree}}</h3><p class="education-school">{{field "education.school" .School}}</p></div><span class="education-period">{{field "education.period" .Period}}</span></div>
{{- with .Details}}<p class="timeline-description">{{field "education.details" .}}</p>{{end -}}
</div>
{{- end}}

{{define "cert-item" -}}
<div class="cert-item"><strong>{{field "certifications.name" .Name}}</strong>
{{- with .Issuer}}<p style="font-size: 0.875rem; margin-top: 0.25rem; opacity: 0.8;">{{field "certifications.issuer" .}}</p>{{end -}}
</div>
{{- end}}

{{define "contact-item" -}}
<div class="contact-item"><i class="{{.Icon}}"></i><div><h3>{{field "contactInfo.label" .Label}}</h3>
{{- if .Href}}<a href="{{safeURL .Href}}">{{field "contactInfo.value" .Value}}</a>{{else}}<p>{{field "contactInfo.value" .Value}}</p>{{end -}}
</div></div>
{{- end}}

{{define "contact-form" -}}
<form class="contact-form" id="contactForm">
{{- range .Fields}}<div class="form-group">
{{- if eq .Type "textarea"}}<textarea id="{{.ID}}" name="{{.ID}}"{{with .Rows}} rows="{{.}}"{{end}} placeholder="{{.Placeholder}}"{{if .Required}} required{{end}}></textarea>
{{- else}}<input type="{{.Type}}" id="{{.ID}}" name="{{.ID}}" placeholder="{{.Placeholder}}"{{if .Required}} required{{end}}>{{end -}}
</div>{{end -}}
<button type="submit" class="btn btn-{{.Submit.Type}}">{{field "form.submitButton.text" .Submit.Text}}</button></form>
{{- end}}

{{define "footer-link" -}}
<a href="{{safeURL .URL}}" target="_blank">{{field "links.text" .Text}}</a>
{{- end}}
`

var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"field": func(string, any) (template.HTML, error) {
		return "", fmt.Errorf("field called outside a render pass")
	},
	"safeURL": safeURL,
}).Parse(fragmentSource))

// fragment executes one named fragment.
func (p *pass) fragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// safeURL passes web, mail, phone, relative and fragment links through and
// turns anything else (javascript:, data:, ...) into "#".
func safeURL(raw string) template.URL {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "#") {
		return template.URL(s)
	}
	u, err := url.Parse(s)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return template.URL(s)
	}
	return "#"
}
