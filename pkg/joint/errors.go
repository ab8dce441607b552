package joint

import "errors"

// ErrInvalidInput marks caller precondition violations: non-positive
// dimensions or ratio, unknown division/variant names, malformed
// layouts handed to BuildParts.
var ErrInvalidInput = errors.New("joint: invalid input")

// ErrImpossibleGeometry marks parameter combinations that are
// numerically fine but cut nothing sensible: a non-positive tail
// width, a flare angle outside (0, pi/2), or tail roots that would
// cross over. These are reported rather than emitted as
// self-intersecting polygons.
var ErrImpossibleGeometry = errors.New("joint: impossible geometry")
