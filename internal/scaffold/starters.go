package scaffold

// starterSource holds one JSON document per section. Values pass through
// the json func so owner details are always valid string literals.
const starterSource = `
{{define "site-config" -}}
{
  "meta": {
    "title": {{json (printf "%s | %s" .Name .Title)}},
    "description": {{json (printf "Portfolio of %s, %s" .Name .Title)}},
    "author": {{json .Name}},
    "keywords": "portfolio, software, engineering"
  }
}
{{end}}

{{define "navigation" -}}
{
  "brand": {"name": {{json .Name}}, "href": "#home"},
  "menuItems": [
    {"_instructions": "One entry per menu link. href points at a section id."},
    {"href": "#about", "label": "About"},
    {"href": "#experience", "label": "Experience"},
    {"href": "#skills", "label": "Skills"},
    {"href": "#projects", "label": "Projects"},
    {"href": "#education", "label": "Education"},
    {"href": "#contact", "label": "Contact"}
  ]
}
{{end}}

{{define "hero" -}}
{
  "greeting": "Hi, I'm",
  "name": {{json .Name}},
  "title": {{json .Title}},
  "summary": "I build <strong>reliable</strong> software. Replace this with a short introduction.",
  "highlights": [
    {"_instructions": "Short one-line facts shown under the summary. icon is a Font Awesome class."},
    {"icon": "fas fa-map-marker-alt", "text": "Somewhere on Earth"}
  ],
  "cta": {
    "buttons": [
      {"text": "View Projects", "type": "primary", "href": "#projects"},
      {"text": "Get in Touch", "type": "secondary", "href": "#contact", "icon": "fas fa-envelope"}
    ]
  },
  "socialLinks": [
    {"_instructions": "url opens in a new tab; platform becomes the aria-label."},
    {"url": "https://github.com/", "icon": "fab fa-github", "platform": "GitHub"}
  ]
}
{{end}}

{{define "about" -}}
{
  "sectionTitle": "About Me",
  "paragraphs": [
    "Write a few paragraphs about yourself here."
  ],
  "statistics": [
    {"_instructions": "Headline numbers. value may be a number or a string."},
    {"value": "5+", "label": "Years of Experience"},
    {"value": 10, "label": "Projects Shipped"}
  ]
}
{{end}}

{{define "experience" -}}
{
  "sectionTitle": "Experience",
  "experiences": [
    {"_instructions": "Newest first. responsibilities is optional."},
    {
      "title": {{json .Title}},
      "company": "Company",
      "period": "2020 - Present",
      "description": "What the role was about.",
      "responsibilities": ["Something you owned", "Something you improved"]
    }
  ]
}
{{end}}

{{define "skills" -}}
{
  "sectionTitle": "Skills",
  "categories": [
    {"_instructions": "Each category needs a skills list, even an empty one."},
    {"category": "Languages", "icon": "fas fa-code", "skills": ["Go", "SQL"]},
    {"category": "Tools", "icon": "fas fa-tools", "skills": ["Git", "Docker"]}
  ]
}
{{end}}

{{define "projects" -}}
{
  "sectionTitle": "Projects",
  "projects": [
    {"_instructions": "technologies is required. github and demo add links; image replaces the icon."},
    {
      "title": "Example Project",
      "description": "What it does and why it matters.",
      "technologies": ["Go"],
      "github": "https://github.com/",
      "icon": "fas fa-code"
    }
  ]
}
{{end}}

{{define "education" -}}
{
  "sectionTitle": "Education",
  "certificationsTitle": "Certifications",
  "education": [
    {"_instructions": "details is optional."},
    {"degree": "B.Sc. Computer Science", "school": "University", "period": "2014 - 2018"}
  ],
  "certifications": [
    {"_instructions": "issuer is optional."},
    {"name": "Example Certification", "issuer": "Issuer"}
  ]
}
{{end}}

{{define "contact" -}}
{
  "sectionTitle": "Get In Touch",
  "contactInfo": [
    {"_instructions": "With href set the value renders as a link."},
    {"label": "Email", "value": {{json .Email}}, "icon": "fas fa-envelope", "href": {{json (printf "mailto:%s" .Email)}}}
  ],
  "form": {
    "fields": [
      {"type": "text", "id": "name", "placeholder": "Your Name", "required": true},
      {"type": "email", "id": "email", "placeholder": "Your Email", "required": true},
      {"type": "textarea", "id": "message", "placeholder": "Your Message", "rows": 5, "required": true}
    ],
    "submitButton": {"text": "Send Message", "type": "primary"},
    "successMessage": "Thank you for your message! I'll get back to you soon."
  }
}
{{end}}

{{define "footer" -}}
{
  "copyright": {"year": {{.Year}}, "name": {{json .Name}}, "text": "All rights reserved."},
  "links": [
    {"_instructions": "Footer links open in a new tab."},
    {"url": "https://github.com/", "text": "GitHub"}
  ]
}
{{end}}
`
