package loader

import (
	"github.com/srikarvechalapu/folio/internal/content"
	"github.com/srikarvechalapu/folio/internal/dom"
)

// Contact rebuilds the contact details and generates the contact form. The
// form never leaves the page: submitting it shows the success message and
// resets the fields.
func Contact() Loader {
	return section[content.Contact]{name: "contact", render: renderContact}
}

type contactForm struct {
	Fields []content.FormField
	Submit *content.SubmitButton
}

func renderContact(p *pass, c *content.Contact) error {
	p.setTitle(c.SectionTitle)

	if info := p.doc.ByID("contactInfo"); info.Length() > 0 {
		if !c.ContactInfo.Present() {
			return p.missing("contactInfo")
		}
		info.Empty()
		if err := appendEach(p, info, "contact-item", "contactInfo", c.ContactInfo); err != nil {
			return err
		}
	}

	container := p.doc.ByID("contactFormContainer")
	if container.Length() == 0 {
		return nil
	}
	if !c.Form.Present() {
		return p.missing("form")
	}
	form, err := c.Form.Get()
	if err != nil {
		return p.partError("form", err)
	}
	switch {
	case !form.Fields.Present():
		return p.missing("form.fields")
	case form.SubmitButton == nil:
		return p.missing("form.submitButton")
	}
	fields, err := form.Fields.Visible()
	if err != nil {
		return p.partError("form.fields", err)
	}
	frag, err := p.fragment("contact-form", contactForm{
		Fields: fields,
		Submit: form.SubmitButton,
	})
	if err != nil {
		return err
	}
	container.SetHtml(frag)

	el := container.Find("form#contactForm")
	message := form.SuccessMessage.String()
	el.SetAttr("data-success-message", message)
	p.doc.OnEach(el, dom.EventSubmit, func(ev *dom.Event) {
		ev.PreventDefault()
		p.doc.Alert(message)
		p.doc.Reset(el)
	})
	return nil
}
