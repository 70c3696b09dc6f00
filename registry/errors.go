package registry

import "errors"

// ErrDuplicateInitHook is returned when a module registers a second init
// hook. It indicates a programming error in the extension module and
// surfaces at registration time, never at dispatch time.
var ErrDuplicateInitHook = errors.New("init hook is already registered")
