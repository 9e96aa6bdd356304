// File: cmd/filemempoolctl/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// filemempoolctl is the pool's command-line surface: construct a Pool from
// flags, run a demo allocator/releaser pair, serve Prometheus metrics, and
// optionally dump the debug verifier. This is the minimal concrete home
// base spec §1 leaves for the "command-line help/listing surface" it
// treats as an external collaborator. Flag-based shape grounded in
// examples/echo/main.go.

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/momentics/filemempool/control"
	"github.com/momentics/filemempool/ingest"
	"github.com/momentics/filemempool/mempool"
)

func main() {
	capacity := flag.Uint64("capacity", 4096, "pool capacity (number of slots)")
	slotSize := flag.Int("slot-size", 4096, "slot size in bytes (>= 8)")
	numaNode := flag.Int("numa-node", -1, "preferred NUMA node, -1 for none")
	verify := flag.Bool("verify", false, "run the debug verifier after every return")
	metricsAddr := flag.String("metrics-addr", ":9464", "address to serve /metrics on")
	dumpDebug := flag.Bool("dump-debug", false, "print debug probe output once and exit")
	runFor := flag.Duration("run-for", 0, "if > 0, stop the demo pipeline after this duration")
	flag.Parse()

	cfg := control.DefaultPoolConfig()
	cfg.Capacity = *capacity
	cfg.SlotSize = *slotSize
	cfg.NUMANode = *numaNode
	cfg.VerifyOnOp = *verify

	pool, err := mempool.New(cfg.Capacity, cfg.SlotSize,
		mempool.WithVerify(cfg.VerifyOnOp),
		mempool.WithNUMANode(cfg.NUMANode))
	if err != nil {
		log.Printf("filemempoolctl: degenerate pool: %v", err)
	}
	defer pool.Close()

	probes := control.NewDebugProbes()
	probes.RegisterProbe("pool_verify", func() any {
		if err := pool.Verify(); err != nil {
			return err.Error()
		}
		return "ok"
	})
	probes.RegisterProbe("pool_counters", func() any {
		a, f, r := pool.Counters()
		return fmt.Sprintf("allocated=%d freed=%d released=%d", a, f, r)
	})
	ingestMetrics := control.NewMetricsRegistry()
	probes.RegisterProbe("ingest_metrics", func() any {
		return ingestMetrics.GetSnapshot()
	})
	control.RegisterPlatformProbes(probes)

	if *dumpDebug {
		for name, val := range probes.DumpState() {
			fmt.Printf("%s: %v\n", name, val)
		}
		return
	}

	metrics := control.NewPoolMetrics()
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	server := &http.Server{Addr: *metricsAddr, Handler: mux}

	go func() {
		log.Printf("filemempoolctl: serving metrics on %s/metrics", *metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("filemempoolctl: metrics server: %v", err)
		}
	}()

	toRelease := make(chan mempool.Slot, cfg.Capacity)
	allocator := ingest.NewAllocator(pool, toRelease, cfg.NUMANode, ingestMetrics)
	releaser := ingest.NewReleaser(pool, toRelease, ingestMetrics)

	stop := make(chan struct{})
	go allocator.Run(stop)
	go releaser.Run(stop)

	collectStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics.Collect(pool)
			case <-collectStop:
				return
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if *runFor > 0 {
		select {
		case <-time.After(*runFor):
		case <-sigCh:
		}
	} else {
		<-sigCh
	}

	close(stop)
	close(collectStop)
	_ = server.Close()
	log.Printf("filemempoolctl: shutting down")
}
