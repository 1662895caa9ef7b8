package courier

import "errors"

var ErrCallbackDelivery = errors.New("courier callback delivery failed")
