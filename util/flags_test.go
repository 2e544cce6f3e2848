package util

import (
	"testing"
)

func TestFlagsReset(t *testing.T) {
	flags := NewFlags(4, 100)

	*flags.Get(2) = 7
	if *flags.Get(2) != 7 {
		t.Errorf("Get(2) = %v; want 7", *flags.Get(2))
	}
	if *flags.Get(0) != 100 {
		t.Errorf("Get(0) = %v; want the default", *flags.Get(0))
	}

	flags.Reset()
	if *flags.Get(2) != 100 {
		t.Errorf("Get(2) after Reset = %v; want the default", *flags.Get(2))
	}
}
