package main

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestResolvePassword(t *testing.T) {
	if got := resolvePassword(nil); got != "paletto2024" {
		t.Fatalf("unexpected default password: %s", got)
	}
	if got := resolvePassword([]string{"custom"}); got != "custom" {
		t.Fatalf("unexpected password: %s", got)
	}
}

func TestGenerateHash(t *testing.T) {
	hash, err := generateHash("paletto2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("paletto2024")); err != nil {
		t.Fatalf("hash mismatch: %v", err)
	}
}

func TestMainOutput(t *testing.T) {
	origPrintf, origGen, origFatalf := printfFn, generateHashFn, fatalfFn
	defer func() { printfFn, generateHashFn, fatalfFn = origPrintf, origGen, origFatalf }()

	var printed string
	printfFn = func(format string, a ...any) (int, error) {
		printed = format
		if len(a) > 0 {
			printed, _ = a[0].(string)
		}
		return 0, nil
	}
	main()
	if printed == "" {
		t.Fatal("expected a hash to be printed")
	}

	generateHashFn = func(string) (string, error) { return "", errors.New("boom") }
	var fatal bool
	fatalfFn = func(string, ...any) { fatal = true }
	main()
	if !fatal {
		t.Fatal("expected fatal on hash error")
	}
}
