package notification

import "errors"

var ErrNoTemplate = errors.New("no notification template for status")
