package loader

import "github.com/srikarvechalapu/folio/internal/content"

// About sets the section title and rebuilds the paragraphs and statistics.
func About() Loader {
	return section[content.About]{name: "about", render: renderAbout}
}

func renderAbout(p *pass, a *content.About) error {
	p.setTitle(a.SectionTitle)

	if c := p.doc.ByID("aboutText"); c.Length() > 0 {
		if !a.Paragraphs.Present() {
			return p.missing("paragraphs")
		}
		c.Empty()
		if err := appendEach(p, c, "paragraph", "paragraphs", a.Paragraphs); err != nil {
			return err
		}
	}

	if c := p.doc.ByID("aboutStats"); c.Length() > 0 {
		if !a.Statistics.Present() {
			return p.missing("statistics")
		}
		c.Empty()
		if err := appendEach(p, c, "statistic", "statistics", a.Statistics); err != nil {
			return err
		}
	}
	return nil
}
