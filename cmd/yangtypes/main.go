package main

import (
	"os"
	_ "time/tzdata"
)

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
