package strategy

import (
	"github.com/sirupsen/logrus"
	"holdem-tournament/internal/rng"
)

// Dependencies are shared by every policy built with New
type Dependencies struct {
	Logger logrus.FieldLogger
	Random rng.Generator
}
