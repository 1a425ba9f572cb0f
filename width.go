// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import "fmt"

const (
	// MaxTotalBits is the widest format, sign bit included.
	MaxTotalBits = 32767

	nativeBits   = 64
	minBigBucket = 128
)

// Width describes the integer chosen to hold a format's storage.
type Width struct {
	// Bits is the width of the storage integer: 8, 16, 32 or 64 for native
	// integers, a power of two starting at 128 otherwise.
	Bits int
	// Native is false if the storage is a big integer.
	Native bool
}

// String returns a Go-like name of the storage type.
func (w Width) String() string {
	if w.Native {
		return fmt.Sprintf("int%d", w.Bits)
	}
	return fmt.Sprintf("big%d", w.Bits)
}

// selectWidth returns the smallest integer able to hold 'bits' bits.
func selectWidth(bits int) (Width, error) {
	switch {
	case bits <= 0:
		return Width{}, fmt.Errorf("bad width %d", bits)
	case bits > MaxTotalBits:
		return Width{}, fmt.Errorf("%d bits: %w", bits, ErrTooWide)
	case bits <= 8:
		return Width{Bits: 8, Native: true}, nil
	case bits <= 16:
		return Width{Bits: 16, Native: true}, nil
	case bits <= 32:
		return Width{Bits: 32, Native: true}, nil
	case bits <= nativeBits:
		return Width{Bits: 64, Native: true}, nil
	case !bigIntSupport:
		return Width{}, fmt.Errorf("%d bits: %w", bits, ErrNoBigInt)
	}
	w := minBigBucket
	for w < bits {
		w <<= 1
	}
	return Width{Bits: w}, nil
}
