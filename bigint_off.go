//go:build fxp_nobig

package fxp

const bigIntSupport = false
