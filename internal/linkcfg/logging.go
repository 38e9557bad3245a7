package linkcfg

import "github.com/rs/zerolog"

// zlog is an optional structured logger. If unset, resolution stays silent.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used for resolution diagnostics.
func SetLogger(l zerolog.Logger) { zlog = &l }
