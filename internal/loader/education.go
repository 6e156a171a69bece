package loader

import "github.com/srikarvechalapu/folio/internal/content"

// DefaultCertificationsTitle heads the certification list when the document
// names none.
const DefaultCertificationsTitle = "Certifications"

// Education rebuilds the degree and certification grids.
func Education() Loader {
	return section[content.Education]{name: "education", render: renderEducation}
}

func renderEducation(p *pass, e *content.Education) error {
	p.setTitle(e.SectionTitle)

	certTitle := e.CertificationsTitle.String()
	if certTitle == "" {
		certTitle = DefaultCertificationsTitle
	}
	p.doc.Find("#education .certifications h3").SetText(certTitle)

	if c := p.doc.ByID("educationGrid"); c.Length() > 0 {
		if !e.Education.Present() {
			return p.missing("education")
		}
		c.Empty()
		if err := appendEach(p, c, "education-item", "education", e.Education); err != nil {
			return err
		}
	}

	if c := p.doc.ByID("certGrid"); c.Length() > 0 {
		if !e.Certifications.Present() {
			return p.missing("certifications")
		}
		c.Empty()
		if err := appendEach(p, c, "cert-item", "certifications", e.Certifications); err != nil {
			return err
		}
	}
	return nil
}
