// build

package main

func main() {
	missing()
}
