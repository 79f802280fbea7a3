package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf(ErrDegenerateGeometry, "kaboom %d", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom 3: degenerate geometry")
		assert.ErrorIs(t, err, ErrDegenerateGeometry)
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "true panic", func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestTriangulate_RecoversStrictFailure(t *testing.T) {
	// The failure is raised deep in the insertion loop, and comes back out of
	// Triangulate as an ordinary error with the point attached.
	_, err := Triangulate(SquareCorners(1), WithStrict(true), WithDegeneracyTolerance(1e300))
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.Contains(t, err.Error(), "inserting (0, 0)")
}
