package derivation

import (
	"math"

	"github.com/lucfranzoi/freightnet/pkg/network"
)

// Coefficient computes the fraction of an eligible od pair's tonnage to
// shift, in [0, max_derivation for its category]. The pair's (tons,
// distance) position is interpolated along the diagonal between the
// minimum- and maximum-derivation corners of a 2-D space whose distance
// axis is rescaled into ton units.
func (e *Engine) Coefficient(od *network.ODPair, source, target *network.Network) (float64, error) {
	store := e.paramStore(source, target)

	maxDist, err := store.Require(network.ParamMaxDistToDerive)
	if err != nil {
		return 0, &Error{Op: "Coefficient", ODID: od.ID, Category: od.Category, Cause: err}
	}
	minDist, err := store.Require(network.ParamMinDistToDerive)
	if err != nil {
		return 0, &Error{Op: "Coefficient", ODID: od.ID, Category: od.Category, Cause: err}
	}
	maxTons, err := store.Require(network.ParamMaxTonsToDerive)
	if err != nil {
		return 0, &Error{Op: "Coefficient", ODID: od.ID, Category: od.Category, Cause: err}
	}
	minTons, err := store.Require(network.ParamMinTonsToDerive)
	if err != nil {
		return 0, &Error{Op: "Coefficient", ODID: od.ID, Category: od.Category, Cause: err}
	}
	maxDeriv, err := store.MaxDerivation(od.Category)
	if err != nil {
		return 0, &Error{Op: "Coefficient", ODID: od.ID, Category: od.Category, Cause: err}
	}

	// Saturation at the corners of the interpolation space
	if od.Tons >= maxTons && od.Distance >= maxDist {
		return maxDeriv, nil
	}
	if od.Distance <= minDist && od.Tons >= minTons {
		return 0, nil
	}

	if maxDist == minDist {
		return 0, &Error{Op: "Coefficient", ODID: od.ID, Category: od.Category, Cause: ErrDegenerateScale}
	}

	// Express the distance axis in ton units so both coordinates are
	// commensurable, then interpolate along the min->max diagonal.
	scale := (maxTons - minTons) / (maxDist - minDist)
	tons := math.Min(od.Tons, maxTons)
	dist := math.Min(od.Distance, maxDist)

	distTons := dist * scale
	maxDistTons := maxDist * scale
	minDistTons := minDist * scale

	dMin := math.Hypot(tons-minTons, distTons-minDistTons)
	dMax := math.Hypot(maxTons-tons, maxDistTons-distTons)

	if dMin+dMax == 0 {
		return 0, &Error{Op: "Coefficient", ODID: od.ID, Category: od.Category, Cause: ErrDegenerateSpan}
	}

	return maxDeriv * dMin / (dMin + dMax), nil
}
