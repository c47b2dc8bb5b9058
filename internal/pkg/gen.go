package pkg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

const epochWords = 3

// GenerateEpochID - generates a readable id for a single game, e.g. "wholly-natural-gecko".
func GenerateEpochID() string {
	return petname.Generate(epochWords, "-")
}
