// Package content defines the section documents served by the data provider
// and the fetchers that retrieve them.
//
// Documents are decoded in two steps. Unmarshalling a document only keeps
// its nested objects and lists as raw JSON; each one is decoded when the
// renderer reaches it, so a malformed sub-part fails there and the parts
// rendered before it stay on the page. Text fields accept any JSON value.
package content

// SiteConfig is data/site-config.json.
type SiteConfig struct {
	Meta Object[Meta] `json:"meta"`
}

// Meta holds document-level metadata.
type Meta struct {
	Title       Text `json:"title"`
	Description Text `json:"description"`
	Author      Text `json:"author"`
	Keywords    Text `json:"keywords"`
}

// Navigation is data/navigation.json.
type Navigation struct {
	Brand     Object[Brand]  `json:"brand"`
	MenuItems List[MenuItem] `json:"menuItems"`
}

// Brand is the site name link in the navbar.
type Brand struct {
	Name Text   `json:"name"`
	Href string `json:"href"`
}

// MenuItem is one navigation link.
type MenuItem struct {
	Href  string `json:"href"`
	Label Text   `json:"label"`
}

// Hero is data/hero.json.
type Hero struct {
	Greeting    Text             `json:"greeting"`
	Name        Text             `json:"name"`
	Title       Text             `json:"title"`
	Summary     Text             `json:"summary"`
	Highlights  List[Highlight]  `json:"highlights"`
	CTA         Object[CTA]      `json:"cta"`
	SocialLinks List[SocialLink] `json:"socialLinks"`
}

// Highlight is an icon and a short line of text under the hero summary.
type Highlight struct {
	Icon string `json:"icon"`
	Text Text   `json:"text"`
}

// CTA groups the call-to-action buttons.
type CTA struct {
	Buttons List[Button] `json:"buttons"`
}

// Button is a call-to-action link styled as a button.
type Button struct {
	Text     Text   `json:"text"`
	Type     string `json:"type"`
	Href     string `json:"href"`
	Icon     string `json:"icon,omitempty"`
	External Flag   `json:"external,omitempty"`
}

// SocialLink is an icon link to a social profile.
type SocialLink struct {
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Platform string `json:"platform"`
}

// About is data/about.json.
type About struct {
	SectionTitle *Text           `json:"sectionTitle"`
	Paragraphs   List[Text]      `json:"paragraphs"`
	Statistics   List[Statistic] `json:"statistics"`
}

// Statistic is a headline number with a label.
type Statistic struct {
	Value Text `json:"value"`
	Label Text `json:"label"`
}

// Experience is data/experience.json, either a bare array of entries or
// {"sectionTitle": ..., "experiences": [...]}.
type Experience struct {
	SectionTitle *Text
	Entries      List[ExperienceEntry]
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Experience) UnmarshalJSON(b []byte) error {
	title, items, err := decodeSequence[ExperienceEntry](b, "experiences")
	if err != nil {
		return err
	}
	e.SectionTitle, e.Entries = title, items
	return nil
}

// ExperienceEntry is one position on the timeline.
type ExperienceEntry struct {
	Title            Text   `json:"title"`
	Company          Text   `json:"company"`
	Period           Text   `json:"period"`
	Description      Text   `json:"description"`
	Responsibilities []Text `json:"responsibilities,omitempty"`
}

// Skills is data/skills.json, either a bare array of categories or
// {"sectionTitle": ..., "categories": [...]}.
type Skills struct {
	SectionTitle *Text
	Categories   List[SkillCategory]
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Skills) UnmarshalJSON(b []byte) error {
	title, items, err := decodeSequence[SkillCategory](b, "categories")
	if err != nil {
		return err
	}
	s.SectionTitle, s.Categories = title, items
	return nil
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Category Text   `json:"category"`
	Icon     string `json:"icon"`
	Skills   []Text `json:"skills"`
}

// Projects is data/projects.json, either a bare array of projects or
// {"sectionTitle": ..., "projects": [...]}.
type Projects struct {
	SectionTitle *Text
	Entries      List[Project]
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Projects) UnmarshalJSON(b []byte) error {
	title, items, err := decodeSequence[Project](b, "projects")
	if err != nil {
		return err
	}
	p.SectionTitle, p.Entries = title, items
	return nil
}

// Project is one project card.
type Project struct {
	Title        Text   `json:"title"`
	Description  Text   `json:"description"`
	Technologies []Text `json:"technologies"`
	GitHub       string `json:"github,omitempty"`
	Demo         string `json:"demo,omitempty"`
	Image        string `json:"image,omitempty"`
	Icon         string `json:"icon,omitempty"`
}

// Education is data/education.json.
type Education struct {
	SectionTitle        *Text                `json:"sectionTitle"`
	CertificationsTitle Text                 `json:"certificationsTitle,omitempty"`
	Education           List[EducationEntry] `json:"education"`
	Certifications      List[Certification]  `json:"certifications"`
}

// EducationEntry is one degree.
type EducationEntry struct {
	Degree  Text `json:"degree"`
	School  Text `json:"school"`
	Period  Text `json:"period"`
	Details Text `json:"details,omitempty"`
}

// Certification is one certificate.
type Certification struct {
	Name   Text `json:"name"`
	Issuer Text `json:"issuer,omitempty"`
}

// Contact is data/contact.json.
type Contact struct {
	SectionTitle *Text             `json:"sectionTitle"`
	ContactInfo  List[ContactInfo] `json:"contactInfo"`
	Form         Object[Form]      `json:"form"`
}

// ContactInfo is a labelled contact detail. With Href set the value renders
// as a link.
type ContactInfo struct {
	Label Text   `json:"label"`
	Value Text   `json:"value"`
	Icon  string `json:"icon"`
	Href  string `json:"href,omitempty"`
}

// Form describes the contact form that is built at render time.
type Form struct {
	Fields         List[FormField] `json:"fields"`
	SubmitButton   *SubmitButton   `json:"submitButton"`
	SuccessMessage Text            `json:"successMessage"`
}

// FormField is one input of the contact form. Type "textarea" renders a
// textarea; any other type renders an input of that type.
type FormField struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Placeholder Text   `json:"placeholder"`
	Required    Flag   `json:"required,omitempty"`
	Rows        Text   `json:"rows,omitempty"`
}

// SubmitButton is the contact form submit button.
type SubmitButton struct {
	Text Text   `json:"text"`
	Type string `json:"type"`
}

// Footer is data/footer.json.
type Footer struct {
	Copyright Object[Copyright] `json:"copyright"`
	Links     List[FooterLink]  `json:"links"`
}

// Copyright renders as "© {year} {name}. {text}".
type Copyright struct {
	Year Text `json:"year"`
	Name Text `json:"name"`
	Text Text `json:"text"`
}

// FooterLink is a footer link that opens in a new tab.
type FooterLink struct {
	URL  string `json:"url"`
	Text Text   `json:"text"`
}
