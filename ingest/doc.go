// Package ingest drives a mempool.Pool the way the base spec's concurrency
// model describes: one goroutine allocating, and one or more goroutines
// returning slots from elsewhere via Release. The Allocator does not use the
// same-thread Free path. It is intentionally thin — a realistic driver for
// the pool's concurrency contract (base spec §5, §8 scenario 6), not a file-
// reassembly or file-inspection engine, which remains a Non-goal.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package ingest
