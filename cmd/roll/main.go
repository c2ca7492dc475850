package main

import (
	"fatecord/app/fate"
	"flag"
	"fmt"
)

func main() {
	dice := flag.Int("dice", 4, "number of fudge dice to roll")
	base := flag.Int("base", 0, "skill level to roll against")
	flag.Parse()

	// only roll against a base when one was asked for
	var basePtr *int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "base" {
			basePtr = base
		}
	})

	result := fate.RollFresh(*dice)
	fmt.Println(fate.Format(result, basePtr))
}
