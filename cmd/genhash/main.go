package main

import (
	"fmt"
	"log"
	"os"

	"paletto-cards.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

// resolvePassword returns the password to hash: the first CLI argument,
// or the default admin fallback when none is given.
func resolvePassword(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "paletto2024"
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	password := resolvePassword(os.Args[1:])
	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("failed to generate hash: %v", err)
	}
	printfFn("%s\n", hash)
}
