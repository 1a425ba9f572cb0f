//go:build !fxp_nobig

package fxp

// bigIntSupport enables formats wider than 64 bits.
const bigIntSupport = true
