//go:build !dev

package settlement

const intentFeeEnabled = true
