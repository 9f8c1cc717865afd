package factorgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/factorgo/constraint"
	"github.com/hupe1980/factorgo/digit"
	"github.com/hupe1980/factorgo/orbit"
	"github.com/hupe1980/factorgo/search"
)

// ErrConfiguration tags every validation failure raised before any search
// work begins. Use errors.Is to detect it; the specific cause remains
// available via errors.Unwrap.
var ErrConfiguration = errors.New("invalid configuration")

func translateError(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		digit.ErrInvalidRadix,
		digit.ErrNegative,
		orbit.ErrInvalidRadix,
		orbit.ErrNoGenerators,
		orbit.ErrSeedNotCoprime,
		constraint.ErrInvalidSlack,
		search.ErrNilTarget,
		search.ErrInvalidBeamWidth,
		search.ErrInvalidWidthBounds,
		search.ErrInvalidBatchSize,
		search.ErrInvalidPolicy,
	} {
		if errors.Is(err, sentinel) {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	var rr *orbit.ErrResidueRange
	if errors.As(err, &rr) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	var rm *constraint.ErrRadixMismatch
	if errors.As(err, &rm) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return err
}
