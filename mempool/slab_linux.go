//go:build linux

// File: mempool/slab_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux slab backing: a single anonymous mmap region, keeping reassembly
// bytes off the Go heap (no GC scanning) and cache-adjacent, per the
// rationale in base spec §4.1. Grounded in
// core/buffer/bufferpool_linux.go's hugepage mmap pattern, trimmed to a
// plain page-backed mapping since the pool owns exactly one slab for its
// whole lifetime rather than a per-request size-class allocator.

package mempool

import "golang.org/x/sys/unix"

func mmapSlab(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func munmapSlab(data []byte) error {
	return unix.Munmap(data)
}
