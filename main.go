package main

import (
	"log"

	"github.com/thiagokokada/tkforms/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("tkforms: %v", err)
	}
}
