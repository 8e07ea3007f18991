package ctbench

import "iter"

// Store is an append-only collection of measurements split by class.
//
// The Store owns its buffers. Slices returned by Snapshot are borrowed: they stay valid
// until the next Record and must not be modified.
type Store struct {
	left, right []uint64
	// order logs the class of every sample so raw exports keep recording order.
	order []Class
}

// Record appends one measurement.
func (s *Store) Record(class Class, ticks uint64) {
	if class == Left {
		s.left = append(s.left, ticks)
	} else {
		s.right = append(s.right, ticks)
	}
	s.order = append(s.order, class)
}

// Snapshot returns read-only views of both classes.
func (s *Store) Snapshot() (left, right []uint64) {
	return s.left, s.right
}

// Len returns the total number of samples.
func (s *Store) Len() int {
	return len(s.order)
}

// Count returns the number of samples recorded for one class.
func (s *Store) Count(class Class) int {
	if class == Left {
		return len(s.left)
	}
	return len(s.right)
}

// All yields every sample in recording order.
func (s *Store) All() iter.Seq2[Class, uint64] {
	return s.Since(0)
}

// Since yields the samples recorded after the first `from` samples, in recording order.
// It lets continuous runs export only what a round added.
func (s *Store) Since(from int) iter.Seq2[Class, uint64] {
	return func(yield func(Class, uint64) bool) {
		var li, ri int
		for i, class := range s.order {
			var ticks uint64
			if class == Left {
				ticks = s.left[li]
				li++
			} else {
				ticks = s.right[ri]
				ri++
			}
			if i < from {
				continue
			}
			if !yield(class, ticks) {
				return
			}
		}
	}
}
