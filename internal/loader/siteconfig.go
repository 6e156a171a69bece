package loader

import "github.com/srikarvechalapu/folio/internal/content"

// SiteConfig sets the document title and the description, author and
// keywords meta tags.
func SiteConfig() Loader {
	return section[content.SiteConfig]{name: "site-config", render: renderSiteConfig}
}

func renderSiteConfig(p *pass, cfg *content.SiteConfig) error {
	if !cfg.Meta.Present() {
		return p.missing("meta")
	}
	m, err := cfg.Meta.Get()
	if err != nil {
		return p.partError("meta", err)
	}
	p.doc.SetTitle(m.Title.String())
	for name, value := range map[string]content.Text{
		"description": m.Description,
		"author":      m.Author,
		"keywords":    m.Keywords,
	} {
		p.doc.Find(`meta[name="`+name+`"]`).SetAttr("content", value.String())
	}
	return nil
}
