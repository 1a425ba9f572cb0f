// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as exact decimal strings, like `"3.0625"`.
	JSONModeString = iota
	// JSONModeFloat marshals values as floats, like `3.0625`.
	JSONModeFloat
	// JSONModeBits marshals values with their format and raw storage,
	// like `{"r":4,"f":-4,"mode":"fastest","bits":"49"}`.
	JSONModeBits
)

// ErrNoFormat is returned when a value without a format is unmarshaled from a string or a float.
var ErrNoFormat = errors.New("value has no format")

type jsonBits struct {
	R    int    `json:"r"`
	F    int    `json:"f"`
	Mode string `json:"mode"`
	Bits string `json:"bits"`
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode)
}

func (v Value) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeFloat:
		return []byte(v.String()), nil
	case JSONModeBits:
		return json.Marshal(jsonBits{
			R:    v.f.Range(),
			F:    v.f.Resolution(),
			Mode: v.f.mode.String(),
			Bits: v.Bits().String(),
		})
	default:
		return []byte(strconv.Quote(v.String())), nil
	}
}

// UnmarshalJSON unmarshals a string, a number, or an object with raw bits into a value.
// Strings and numbers are converted into the receiver's current format,
// so the receiver must have one. Objects carry their own format.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if data[0] == '{' {
		var d jsonBits
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		mode, err := ParseRounding(d.Mode)
		if err != nil {
			return err
		}
		f, err := NewFormat(d.R, d.F, mode)
		if err != nil {
			return err
		}
		bits, ok := new(big.Int).SetString(d.Bits, 10)
		if !ok {
			return fmt.Errorf("bad bits %q", d.Bits)
		}
		*v = f.fromBig(bits)
		return nil
	}
	if v.f.split == 0 {
		return ErrNoFormat
	}
	s := string(data)
	if data[0] == '"' {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return err
		}
	}
	value, err := v.f.Parse(s)
	if err != nil {
		return err
	}
	*v = value
	return nil
}
