// build

// Function values of a named function type convert freely to and from the
// underlying type. Compile-only: nothing here is worth executing.

package p

type fnInt func() int

func zero() int { return 0 }

var _ fnInt = zero
var _ func() int = fnInt(zero)
