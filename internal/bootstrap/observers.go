package bootstrap

import (
	"fmt"

	"github.com/srikarvechalapu/folio/internal/progress"
)

// ProgressObserver forwards section progress to a progress.Reporter.
func ProgressObserver(r progress.Reporter) Observer {
	return &progressObserver{r: r}
}

type progressObserver struct {
	r    progress.Reporter
	done int
}

func (p *progressObserver) Started(total int) { p.r.Start(total) }

func (p *progressObserver) SectionDone(o Outcome, total int) {
	p.done++
	p.r.Update(p.done, fmt.Sprintf("%s %s", o.Section, o.Status))
}

func (p *progressObserver) Finished(*Report) { p.r.Finish() }
