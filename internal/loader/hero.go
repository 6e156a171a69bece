package loader

import "github.com/srikarvechalapu/folio/internal/content"

// Hero fills the greeting, name, title and summary slots and rebuilds the
// highlight, call-to-action and social link containers.
func Hero() Loader {
	return section[content.Hero]{name: "hero", render: renderHero}
}

func renderHero(p *pass, h *content.Hero) error {
	for _, f := range []struct {
		id, field string
		value     content.Text
	}{
		{"heroGreeting", "greeting", h.Greeting},
		{"heroName", "name", h.Name},
		{"heroTitle", "title", h.Title},
		{"heroSummary", "summary", h.Summary},
	} {
		if err := p.setField(p.doc.ByID(f.id), f.field, f.value.String()); err != nil {
			return err
		}
	}

	if c := p.doc.ByID("heroHighlights"); c.Length() > 0 {
		if !h.Highlights.Present() {
			return p.missing("highlights")
		}
		c.Empty()
		if err := appendEach(p, c, "highlight", "highlights", h.Highlights); err != nil {
			return err
		}
	}

	if c := p.doc.ByID("heroCTA"); c.Length() > 0 {
		cta, err := h.CTA.Get()
		if err != nil {
			return p.partError("cta", err)
		}
		if !cta.Buttons.Present() {
			return p.missing("cta.buttons")
		}
		c.Empty()
		if err := appendEach(p, c, "cta-button", "cta.buttons", cta.Buttons); err != nil {
			return err
		}
	}

	if c := p.doc.ByID("heroSocial"); c.Length() > 0 {
		if !h.SocialLinks.Present() {
			return p.missing("socialLinks")
		}
		c.Empty()
		if err := appendEach(p, c, "social-link", "socialLinks", h.SocialLinks); err != nil {
			return err
		}
	}
	return nil
}
