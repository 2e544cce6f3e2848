package util

//*******************************************
// flags
//*******************************************

// Flags stores one value per item with O(1) reset.
//
// Values are lazily re-initialized to the default after every Reset,
// so repeated searches over the same graph reuse the allocation.
type Flags[T any] struct {
	flags    []T
	versions []int32
	version  int32
	_default T
}

func NewFlags[T any](size int64, _default T) Flags[T] {
	return Flags[T]{
		flags:    make([]T, size),
		versions: make([]int32, size),
		version:  1,
		_default: _default,
	}
}

func (self *Flags[T]) Get(index int64) *T {
	if self.versions[index] != self.version {
		self.flags[index] = self._default
		self.versions[index] = self.version
	}
	return &self.flags[index]
}

func (self *Flags[T]) Reset() {
	self.version += 1
}

func (self *Flags[T]) Length() int64 {
	return int64(len(self.flags))
}
