package retry

// Delays exposes the delay schedule of opts to tests.
var Delays = delays //nolint: gochecknoglobals
