package constants

import "time"

// Character Alphabets
const (
	// Katakana is the half of the glyph pool that gives the rain its look
	Katakana = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン"

	// ASCIIChars is the latin/digit/punctuation half of the glyph pool
	ASCIIChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!@#$%^&*()_+-=[]{}|;:',.<>?/"
)

// SpeedTiers are the three fall speeds in rows per second (1x/2x/3x for depth perception)
var SpeedTiers = [3]float64{8.0, 16.0, 24.0}

// Stream Shape
const (
	// TrailLengthMin is the shortest trail a stream can be created with
	TrailLengthMin = 8

	// TrailLengthMax is the longest trail a stream can be created with (inclusive)
	TrailLengthMax = 25

	// ColumnDensity is the target fraction of columns occupied by live streams
	ColumnDensity = 0.65

	// MutationRate is the per-character per-tick probability of a glyph flicker
	MutationRate = 0.10
)

// Frame Pacing
const (
	// TargetFPS is the tick rate the main loop paces toward
	TargetFPS = 30

	// FrameTime is the per-tick time budget
	FrameTime = time.Second / TargetFPS
)

// Terminal Requirements
const (
	// MinWidth is the minimum terminal width in columns
	MinWidth = 20

	// MinHeight is the minimum terminal height in rows
	MinHeight = 10
)
