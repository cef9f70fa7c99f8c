// Package bounded provides fixed-capacity containers that never grow past the
// limit they were constructed with.
//
// Three containers are available:
//
//   - Collection: an ordered set of values supporting insertion, removal by
//     identity and iteration.
//   - Ring: a FIFO circular buffer that either rejects pushes when full or
//     overwrites the oldest element, depending on its policy.
//   - Dict: a key/value mapping that rejects new keys once full while still
//     allowing existing keys to be updated in place.
//
// Storage for every container is allocated once at construction. Reaching the
// limit is a routine condition, reported through ErrCapacityExceeded rather
// than a panic:
//
//	subs := bounded.NewCollection[uint32](25)
//	if err := subs.Insert(queueID); errors.Is(err, bounded.ErrCapacityExceeded) {
//		// topic is saturated
//	}
//
// Constructors panic on a non-positive capacity since that is a programming
// error, not a runtime condition.
//
// The containers are not safe for concurrent use. Callers that share them
// between goroutines must serialize access themselves.
package bounded
