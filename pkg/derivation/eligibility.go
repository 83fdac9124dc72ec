package derivation

import (
	"math"

	"github.com/lucfranzoi/freightnet/pkg/network"
)

// Eligible decides whether an od pair in the source network may shift mode.
// All rules must hold:
//
//  1. not intrazone
//  2. category is not the non-derivable sentinel 0
//  3. the target network has an operable path for the pair
//  4. tons and source path distance strictly exceed the minimum thresholds
//  5. target and source path distances agree within max_path_difference
//
// Absence of a target path is ordinary ineligibility, not an error. A zero
// source path distance during the ratio check is an arithmetic-degeneracy
// failure and aborts the caller.
func (e *Engine) Eligible(od *network.ODPair, source, target *network.Network) (bool, error) {
	if od.Intrazone() {
		return false, nil
	}
	if od.Category == 0 {
		return false, nil
	}

	targetDist, ok := target.PathDistance(od.ID, od.Category)
	if !ok {
		return false, nil
	}

	store := e.paramStore(source, target)

	minTons, err := store.Require(network.ParamMinTonsToDerive)
	if err != nil {
		return false, &Error{Op: "Eligible", ODID: od.ID, Category: od.Category, Cause: err}
	}
	minDist, err := store.Require(network.ParamMinDistToDerive)
	if err != nil {
		return false, &Error{Op: "Eligible", ODID: od.ID, Category: od.Category, Cause: err}
	}
	if od.Tons <= minTons || od.Distance <= minDist {
		return false, nil
	}

	maxDiff, err := store.Require(network.ParamMaxPathDifference)
	if err != nil {
		return false, &Error{Op: "Eligible", ODID: od.ID, Category: od.Category, Cause: err}
	}
	if od.Distance == 0 {
		return false, &Error{Op: "Eligible", ODID: od.ID, Category: od.Category, Cause: ErrZeroSourceDistance}
	}
	if math.Abs(targetDist/od.Distance-1) >= maxDiff {
		return false, nil
	}

	return true, nil
}
