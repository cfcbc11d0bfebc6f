package main

import "errors"

// errUnknownFormat is returned for an unsupported --format value.
var errUnknownFormat = errors.New("unknown output format")
