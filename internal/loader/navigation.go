package loader

import "github.com/srikarvechalapu/folio/internal/content"

// Navigation fills the brand link and rebuilds the menu. Fresh links are
// handed to the Binder so they close the mobile menu and scroll smoothly.
func Navigation() Loader {
	return section[content.Navigation]{name: "navigation", render: renderNavigation}
}

func renderNavigation(p *pass, nav *content.Navigation) error {
	if brand := p.doc.Find(".nav-brand a"); brand.Length() > 0 {
		if !nav.Brand.Present() {
			return p.missing("brand")
		}
		b, err := nav.Brand.Get()
		if err != nil {
			return p.partError("brand", err)
		}
		if err := p.setField(brand, "brand.name", b.Name.String()); err != nil {
			return err
		}
		brand.SetAttr("href", string(safeURL(b.Href)))
	}

	menu := p.doc.ByID("navMenu")
	if menu.Length() == 0 {
		return nil
	}
	if !nav.MenuItems.Present() {
		return p.missing("menuItems")
	}
	menu.Empty()
	err := appendEach(p, menu, "nav-item", "menuItems", nav.MenuItems)
	if p.env.Binder != nil {
		p.env.Binder.BindNavLinks(menu.Find(".nav-link"))
	}
	return err
}
