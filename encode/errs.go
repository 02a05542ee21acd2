package encode

import "errors"

var ErrEncode = errors.New("encode error")
