package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDealMetrics(reg)

	m.RecordDealCreated("Россия", 5000)
	m.RecordDealCreated("Россия", 1500)
	m.RecordClaim(ClaimResultWon, 3*time.Millisecond)
	m.RecordClaim(ClaimResultConflict, time.Millisecond)
	m.RecordClaim(ClaimResultConflict, time.Millisecond)
	m.RecordCheckSubmitted("deal")
	m.RecordRequisiteResolution(false)
	m.RecordChangeEvent("deals")
	m.RecordNotifyError("deal.created")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.DealsCreatedTotal.WithLabelValues("Россия")))
	assert.Equal(t, float64(6500), testutil.ToFloat64(m.DealsCreatedAmountTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DealClaimsTotal.WithLabelValues(ClaimResultWon)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DealClaimsTotal.WithLabelValues(ClaimResultConflict)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ChecksSubmittedTotal.WithLabelValues("deal")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequisiteResolutionTotal.WithLabelValues("false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ChangeEventsTotal.WithLabelValues("deals")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotifyErrorsTotal.WithLabelValues("deal.created")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ClaimDuration))
}

func TestDealMetrics_NilSafe(t *testing.T) {
	var m *DealMetrics

	assert.NotPanics(t, func() {
		m.RecordDealCreated("Россия", 1)
		m.RecordClaim(ClaimResultError, time.Second)
		m.RecordCheckSubmitted("standalone")
		m.RecordDealAdvanced("reconciler")
		m.RecordRequisiteResolution(true)
		m.RecordChangeEvent("user")
		m.RecordNotifyError("deal.claimed")
	})
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	NewDealMetrics(reg)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
