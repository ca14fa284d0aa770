// run

// Check that a function identifier yielded as the trailing value of an
// immediately evaluated function literal is a usable function value,
// assignable to a binding of the named function type.

package main

type fnInt func() int

func ten() int { return 10 }

func testFn() {
	var rs fnInt = func() fnInt { return ten }()
	_ = rs
	// if rs() != 10 { panic("rs() != 10") }
}

func main() { testFn() }
