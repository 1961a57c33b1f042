package dom

import "errors"

var ErrParse = errors.New("parse error")
