// Prints a bcrypt hash for seeding accounts by hand.
package main

import (
	"fmt"
	"log"
	"os"

	"fitness-center/pkg/utils"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <password>", os.Args[0])
	}

	hashed, err := utils.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("hashing failed: %v", err)
	}

	fmt.Println(hashed)
}
