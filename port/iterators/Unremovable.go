package iterators

// Unremovable can be embedded into an Iterator implementation that has no removal capability.
type Unremovable struct{}

// Remove always reports ErrUnsupportedOperation.
func (Unremovable) Remove() error {
	return ErrUnsupportedOperation
}
