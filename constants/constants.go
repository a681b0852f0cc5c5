package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetPatternsPath points at an optional YAML file of extra scale patterns.
func GetPatternsPath() string {
	return os.Getenv("PATTERNS_PATH")
}

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

func GetEnvironment() string {
	env := os.Getenv("DIATONIC_ENV")
	if env != "" {
		return env
	}
	return "development"
}

// ReferenceOctave anchors scale and chord spelling in the pitch table. The
// octave itself carries no meaning for the notes produced.
const ReferenceOctave = 4

const DefaultVelocity = 100

// TicksPerQuarter is the resolution of exported MIDI files; every exported
// note lasts one quarter.
const TicksPerQuarter = 960
