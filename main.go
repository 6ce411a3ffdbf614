// Public domain.

package main

import "github.com/soniakeys/almanac/internal/almprog"

func main() {
	almprog.Main()
}
