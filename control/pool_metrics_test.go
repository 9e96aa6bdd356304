package control_test

import (
	"testing"

	"github.com/momentics/filemempool/control"
)

type fakeCounters struct {
	allocated, freed, released uint64
}

func (f fakeCounters) Counters() (uint64, uint64, uint64) {
	return f.allocated, f.freed, f.released
}

func TestPoolMetrics_CollectUpdatesGauges(t *testing.T) {
	pm := control.NewPoolMetrics()
	pm.Collect(fakeCounters{allocated: 3, freed: 1, released: 2})

	mfs, err := pm.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) != 3 {
		t.Fatalf("expected 3 metric families, got %d", len(mfs))
	}

	want := map[string]float64{
		"filemempool_pool_allocated": 3,
		"filemempool_pool_freed":     1,
		"filemempool_pool_released":  2,
	}
	for _, mf := range mfs {
		expected, ok := want[mf.GetName()]
		if !ok {
			t.Fatalf("unexpected metric family %q", mf.GetName())
		}
		got := mf.GetMetric()[0].GetGauge().GetValue()
		if got != expected {
			t.Errorf("%s = %v, want %v", mf.GetName(), got, expected)
		}
	}
}
