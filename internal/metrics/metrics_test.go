package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikarvechalapu/folio/internal/bootstrap"
)

func TestRecorderCountsOutcomes(t *testing.T) {
	r := NewRecorder()
	ok := bootstrap.Outcome{Section: "hero", Status: bootstrap.StatusOK, Duration: 2 * time.Millisecond}
	bad := bootstrap.Outcome{Section: "skills", Status: bootstrap.StatusFailed, Err: errors.New("boom")}

	r.Started(2)
	r.SectionDone(ok, 2)
	r.SectionDone(bad, 2)
	r.Finished(&bootstrap.Report{StartedAt: time.Unix(1700000000, 0), Outcomes: []bootstrap.Outcome{ok, bad}})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.sectionLoads.WithLabelValues("hero", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.sectionLoads.WithLabelValues("skills", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.builds.WithLabelValues("partial")))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(r.lastBuild))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.SectionDone(bootstrap.Outcome{Section: "about", Status: bootstrap.StatusOK}, 1)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `folio_section_loads_total{section="about",status="ok"} 1`)
}
