package loader

import (
	"errors"
	"fmt"

	"github.com/srikarvechalapu/folio/internal/content"
)

// Projects rebuilds the project card grid. A card links "View Code" to
// github and "Live Demo" to demo when present, and shows the image or else
// the icon.
func Projects() Loader {
	return section[content.Projects]{name: "projects", render: renderProjects}
}

func renderProjects(p *pass, ps *content.Projects) error {
	p.setTitle(ps.SectionTitle)
	c := p.doc.ByID("projectsGrid")
	if c.Length() == 0 {
		return nil
	}
	c.Empty()
	err := ps.Entries.Each(func(i int, proj content.Project) error {
		if proj.Technologies == nil {
			return p.missing(fmt.Sprintf("projects[%d].technologies", i))
		}
		if err := p.appendFragment(c, "project-card", proj); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrMissingField) {
		return p.partError("projects", err)
	}
	return err
}
