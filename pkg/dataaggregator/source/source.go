package source

import "errors"

var UnsupportedSourceError = errors.New("unable to support this query")
