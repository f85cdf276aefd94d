package fieldapi

import "errors"

var (
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidKey           = errors.New("invalid key")
)
