package symbol

import "errors"

// ErrUnknownSymbol is returned when a fragment name is not present in the registry.
var ErrUnknownSymbol = errors.New("unknown symbol")
