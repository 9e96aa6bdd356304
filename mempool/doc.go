// Package mempool implements a fixed-capacity object pool for equally-sized,
// pre-allocated memory slots.
//
// A Pool is constructed once with a capacity and a slot size, allocates
// slots on one goroutine (the packet processor) and accepts returns either
// on that same goroutine (Free) or from any other goroutine (Release). The
// pool never grows past its configured capacity, never hands the same slot
// to two callers, detects double frees via an in-slot sentinel, and is safe
// for concurrent use from any goroutine on any operation.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package mempool
