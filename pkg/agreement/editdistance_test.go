package agreement_test

import (
	"testing"

	"github.com/haimasree/pEYES/pkg/agreement"
	"github.com/haimasree/pEYES/pkg/event"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEditDistance(t *testing.T) {
	Convey("Given label sequences discretized onto a shared grid", t, func() {
		Convey("When the sequences are identical", func() {
			a, _ := ratersPair()
			d, err := agreement.EditDistance(a, a, 2)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0)
		})

		Convey("When one boundary is shifted", func() {
			a := event.MustNewSequence([]event.Event{
				event.MustNew(event.Fixation, 0, 6),
				event.MustNew(event.Saccade, 6, 10),
			})
			b := event.MustNewSequence([]event.Event{
				event.MustNew(event.Fixation, 0, 8),
				event.MustNew(event.Saccade, 8, 10),
			})
			// Grids at resolution 2: FFFSS vs FFFFS, one substitution
			// over five ticks.
			d, err := agreement.EditDistance(a, b, 2)
			So(err, ShouldBeNil)
			So(d, ShouldAlmostEqual, 0.2)

			Convey("And the distance is symmetric", func() {
				rev, err := agreement.EditDistance(b, a, 2)
				So(err, ShouldBeNil)
				So(rev, ShouldAlmostEqual, d)
			})
		})

		Convey("When the sequences disagree everywhere", func() {
			a := event.MustNewSequence([]event.Event{event.MustNew(event.Fixation, 0, 100)})
			b := event.MustNewSequence([]event.Event{event.MustNew(event.Saccade, 0, 100)})
			d, err := agreement.EditDistance(a, b, 10)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 1)
		})

		Convey("When the sequences cover disjoint ranges", func() {
			// The shared grid spans the union; nearest-label fill means
			// each side extends its own labels across the other's span.
			a := event.MustNewSequence([]event.Event{event.MustNew(event.Fixation, 0, 50)})
			b := event.MustNewSequence([]event.Event{event.MustNew(event.Fixation, 50, 100)})
			d, err := agreement.EditDistance(a, b, 10)
			So(err, ShouldBeNil)
			So(d, ShouldEqual, 0)
		})

		Convey("When either side has no events", func() {
			var empty event.Sequence
			a, _ := ratersPair()
			_, err := agreement.EditDistance(empty, a, 2)
			So(err, ShouldWrap, event.ErrEmptySequence)
			_, err = agreement.EditDistance(a, empty, 2)
			So(err, ShouldWrap, event.ErrEmptySequence)
		})

		Convey("When the covered duration is zero", func() {
			z := event.MustNewSequence([]event.Event{event.MustNew(event.Blink, 5, 5)})
			_, err := agreement.EditDistance(z, z, 1)
			So(err, ShouldWrap, event.ErrEmptySequence)
		})
	})
}
