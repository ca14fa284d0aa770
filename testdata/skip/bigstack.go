// skip needs a larger stack than CI allows

package main

func grow(n int) int {
	if n == 0 {
		return 0
	}
	var pad [1 << 16]byte
	return grow(n-1) + int(pad[0])
}

func main() {
	grow(1 << 12)
}
