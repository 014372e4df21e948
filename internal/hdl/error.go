package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
var ErrFailedToGetUUID = errors.New("failed to get uid from context")
var ErrFailedToParseUUID = errors.New("failed to parse uid")

var ErrMissingToken = errors.New("missing access token")
var ErrInvalidQuery = errors.New("invalid query parameters")
var ErrRadiusTooLarge = errors.New("radius is too large")
