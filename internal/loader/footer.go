package loader

import (
	"fmt"

	"github.com/srikarvechalapu/folio/internal/content"
)

// Footer writes the copyright line and rebuilds the footer links.
func Footer() Loader {
	return section[content.Footer]{name: "footer", render: renderFooter}
}

func renderFooter(p *pass, f *content.Footer) error {
	if c := p.doc.ByID("footerCopyright"); c.Length() > 0 {
		if !f.Copyright.Present() {
			return p.missing("copyright")
		}
		cr, err := f.Copyright.Get()
		if err != nil {
			return p.partError("copyright", err)
		}
		c.SetText(fmt.Sprintf("© %s %s. %s", cr.Year, cr.Name, cr.Text))
	}

	if c := p.doc.ByID("footerLinks"); c.Length() > 0 {
		if !f.Links.Present() {
			return p.missing("links")
		}
		c.Empty()
		if err := appendEach(p, c, "footer-link", "links", f.Links); err != nil {
			return err
		}
	}
	return nil
}
