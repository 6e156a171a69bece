package loader

import (
	"errors"
	"fmt"

	"github.com/srikarvechalapu/folio/internal/content"
)

// Skills rebuilds the category grid.
func Skills() Loader {
	return section[content.Skills]{name: "skills", render: renderSkills}
}

func renderSkills(p *pass, s *content.Skills) error {
	p.setTitle(s.SectionTitle)
	c := p.doc.ByID("skillsGrid")
	if c.Length() == 0 {
		return nil
	}
	c.Empty()
	err := s.Categories.Each(func(i int, cat content.SkillCategory) error {
		if cat.Skills == nil {
			return p.missing(fmt.Sprintf("categories[%d].skills", i))
		}
		if err := p.appendFragment(c, "skill-category", cat); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrMissingField) {
		return p.partError("categories", err)
	}
	return err
}
