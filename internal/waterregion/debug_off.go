//go:build !waterregiondebug

package waterregion

const debugChecks = false
