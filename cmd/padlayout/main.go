// Command padlayout prints and verifies the layout of the structpad padding
// types on the current target.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
