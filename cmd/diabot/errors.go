package main

import "errors"

var (
	errUnknownScale   = errors.New("unknown scale, expected one of: glucose, dcct, ifcc, fructosamine")
	errUnexpectedUnit = errors.New("unexpected unit for scale")
)
