// run

package main

func main() {
	var fns []func() int
	_ = fns[0]()
}
