package imgsimfind

import "errors"

// ErrInvalidArgument wraps every argument-validation failure the core
// reports (spec §7 kind 5): negative threshold, level outside {1,2,3} with
// no explicit threshold, or an unrecognized keep-policy.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotADirectory is returned when a root/dir argument exists but is not a
// directory.
var ErrNotADirectory = errors.New("not a directory")
