package loader

import "github.com/srikarvechalapu/folio/internal/content"

// Experience rebuilds the timeline. Both the bare array and the
// {"experiences": [...]} document shapes are accepted.
func Experience() Loader {
	return section[content.Experience]{name: "experience", render: renderExperience}
}

func renderExperience(p *pass, e *content.Experience) error {
	p.setTitle(e.SectionTitle)
	c := p.doc.ByID("experienceTimeline")
	if c.Length() == 0 {
		return nil
	}
	c.Empty()
	return appendEach(p, c, "timeline-item", "experiences", e.Entries)
}
