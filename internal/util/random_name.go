package util

import (
	"fmt"

	"holdem-tournament/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Gracious", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate",
	"Alpha", "Growling", "Swimming", "Flying", "Jumping", "Running", "Charging", "Bouncing", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog", "Lizard", "Chipmunk", "Okapi", "Eagle",
	"Wolf", "Fox", "Armadillo", "Rhino", "Anteater", "Reindeer", "Panda",
}

// RandomName returns a display name by combining an adjective with an animal
func RandomName(random rng.Generator) string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}

// RandomNames returns n distinct display names
// Once every combination is used up, a numeric suffix keeps the names unique
func RandomNames(random rng.Generator, n int) []string {
	names := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(names) < n {
		name := RandomName(random)
		if seen[name] {
			if len(seen) < len(adjectives)*len(animals) {
				continue
			}

			name = fmt.Sprintf("%s %d", name, len(names)+1)
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
