package control_test

import (
	"sync/atomic"
	"testing"

	"github.com/momentics/filemempool/control"
)

func TestConfigStore_SetConfigDispatchesReload(t *testing.T) {
	cs := control.NewConfigStore()

	var calls int32
	done := make(chan struct{})
	cs.OnReload(func() {
		atomic.AddInt32(&calls, 1)
		close(done)
	})

	cs.SetConfig(map[string]any{"workers": 4})
	<-done

	if got := cs.GetSnapshot()["workers"]; got != 4 {
		t.Fatalf("workers = %v, want 4", got)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("reload calls = %d, want 1", calls)
	}
}

func TestDefaultPoolConfig_HasUsableDefaults(t *testing.T) {
	cfg := control.DefaultPoolConfig()
	if cfg.Capacity == 0 {
		t.Fatal("expected non-zero default capacity")
	}
	if cfg.SlotSize < 8 {
		t.Fatal("expected default slot size >= 8")
	}
	if cfg.Tunables == nil {
		t.Fatal("expected non-nil Tunables store")
	}
}
