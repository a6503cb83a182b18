package commands

// FormatScalar exports formatScalar for testing.
var FormatScalar = formatScalar //nolint:gochecknoglobals // test export
