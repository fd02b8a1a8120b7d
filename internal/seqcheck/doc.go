// Package seqcheck exhaustively checks a queue implementation against
// the linked-list reference over every short operation sequence.
//
// A sequence of k operations is encoded as a k-bit integer read from
// the least significant bit: 0 enqueues the next integer, 1 dequeues.
// Every sequence starts from a queue holding the single value 0. After
// each step both queues must agree on the dequeued value, on whether a
// value was present, and on their length.
//
// Sweep splits the 2^k sequence space into shards and checks them on a
// bounded pool of goroutines. Each sequence builds its own queues, so
// the queues themselves are never shared between goroutines.
package seqcheck
