//go:build waterregiondebug

package waterregion

const debugChecks = true
