//go:build dev

package settlement

// intentFeeEnabled is off in development builds so test deposits settle in full.
const intentFeeEnabled = false
