package agreement_test

import (
	"math"
	"testing"

	"github.com/haimasree/pEYES/pkg/agreement"
	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfusionMatrix(t *testing.T) {
	Convey("Given a correspondence with one label disagreement", t, func() {
		a := event.MustNewSequence([]event.Event{
			event.MustNew(event.Fixation, 0, 100),
			event.MustNew(event.Saccade, 100, 140),
			event.MustNew(event.Fixation, 140, 300),
		})
		b := event.MustNewSequence([]event.Event{
			event.MustNew(event.Fixation, 0, 100),
			event.MustNew(event.PSO, 100, 140),
			event.MustNew(event.Fixation, 140, 300),
		})
		c := mustMatch(a, b, match.Params{})

		m := agreement.Confusion(c, a, b)

		Convey("Then counts and marginals reflect the pairs", func() {
			So(m.Total(), ShouldEqual, 3)
			So(m.Count(event.Fixation, event.Fixation), ShouldEqual, 2)
			So(m.Count(event.Saccade, event.PSO), ShouldEqual, 1)
			So(m.Count(event.Saccade, event.Saccade), ShouldEqual, 0)

			byA, byB := m.Marginals()
			So(byA[event.Fixation], ShouldEqual, 2)
			So(byA[event.Saccade], ShouldEqual, 1)
			So(byB[event.PSO], ShouldEqual, 1)
		})
	})
}

func TestKappa(t *testing.T) {
	Convey("Given matched pairs with full label agreement across two classes", t, func() {
		a, b := ratersPair()
		c := mustMatch(a, b, match.Params{MinOverlapRatio: 0.5, SameLabelOnly: true})

		kappa := agreement.Confusion(c, a, b).Kappa()
		So(kappa.Value, ShouldEqual, 1)
		So(kappa.Reason, ShouldBeBlank)
	})

	Convey("Given agreement no better than chance", t, func() {
		// Pairs: (fix, fix), (fix, sac), (sac, fix), (sac, sac).
		// po = 0.5 and the uniform marginals give pe = 0.5.
		a := event.MustNewSequence([]event.Event{
			event.MustNew(event.Fixation, 0, 10),
			event.MustNew(event.Fixation, 10, 20),
			event.MustNew(event.Saccade, 20, 30),
			event.MustNew(event.Saccade, 30, 40),
		})
		b := event.MustNewSequence([]event.Event{
			event.MustNew(event.Fixation, 0, 10),
			event.MustNew(event.Saccade, 10, 20),
			event.MustNew(event.Fixation, 20, 30),
			event.MustNew(event.Saccade, 30, 40),
		})
		c := mustMatch(a, b, match.Params{})

		kappa := agreement.Confusion(c, a, b).Kappa()
		So(kappa.Value, ShouldAlmostEqual, 0)
	})

	Convey("Given a single label on both sides", t, func() {
		a := event.MustNewSequence([]event.Event{event.MustNew(event.Fixation, 0, 100)})
		c := mustMatch(a, a, match.Params{})

		kappa := agreement.Confusion(c, a, a).Kappa()
		So(math.IsNaN(kappa.Value), ShouldBeTrue)
		So(kappa.Reason, ShouldNotBeBlank)
	})

	Convey("Given no matched pairs at all", t, func() {
		var a, b event.Sequence
		c := mustMatch(a, b, match.Params{})

		kappa := agreement.Confusion(c, a, b).Kappa()
		So(math.IsNaN(kappa.Value), ShouldBeTrue)
		So(kappa.Reason, ShouldEqual, "no matched pairs")
	})
}
