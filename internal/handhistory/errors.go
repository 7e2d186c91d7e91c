package handhistory

import "errors"

// ErrHeaderMismatch is the one fatal parse failure: the header line did not
// match the room's grammar, so no hand can be produced. Room parsers wrap
// it with the offending line; check with errors.Is.
var ErrHeaderMismatch = errors.New("header does not match expected format")
