package common

import "time"

// CodeMessageTemplate renders the text delivered to the user. The code is
// always zero-padded to six digits.
const CodeMessageTemplate = "your register code is: %06d"

// DefaultCodeValidity is how long an issued code stays redeemable.
const DefaultCodeValidity = time.Hour

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
