package agreement_test

import (
	"math"
	"testing"

	"github.com/haimasree/pEYES/pkg/agreement"
	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/match"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTiming(t *testing.T) {
	Convey("Given two raters with slightly shifted boundaries", t, func() {
		a, b := ratersPair()
		c := mustMatch(a, b, match.Params{MinOverlapRatio: 0.5, SameLabelOnly: true})

		report := agreement.Timing(c, a, b)

		Convey("Then onset differences are prediction minus ground truth", func() {
			// Onset diffs: 5-0, 98-100, 130-120.
			So(report.Overall.Onset.N, ShouldEqual, 3)
			So(report.Overall.Onset.Mean, ShouldAlmostEqual, 13.0/3.0)
			So(report.Overall.Onset.Min, ShouldEqual, -2)
			So(report.Overall.Onset.Max, ShouldEqual, 10)
			So(report.Overall.Onset.P50, ShouldEqual, 5)
		})

		Convey("Then offset differences follow the same sign convention", func() {
			// Offset diffs: 95-100, 125-120, 295-300.
			So(report.Overall.Offset.Mean, ShouldAlmostEqual, -5.0/3.0)
		})

		Convey("Then per-label groups key on the ground-truth label", func() {
			fix := report.PerLabel[event.Fixation]
			So(fix.Onset.N, ShouldEqual, 2)
			So(fix.Onset.Mean, ShouldAlmostEqual, 7.5)

			sac := report.PerLabel[event.Saccade]
			So(sac.Onset.N, ShouldEqual, 1)
			So(sac.Onset.Mean, ShouldEqual, -2)

			Convey("And a single observation leaves Std undefined", func() {
				So(math.IsNaN(sac.Onset.Std), ShouldBeTrue)
			})
		})
	})

	Convey("Given no matched pairs", t, func() {
		var a, b event.Sequence
		c := mustMatch(a, b, match.Params{})

		report := agreement.Timing(c, a, b)
		So(report.Overall.Onset.N, ShouldEqual, 0)
		So(math.IsNaN(report.Overall.Onset.Mean), ShouldBeTrue)
		So(report.PerLabel, ShouldBeEmpty)
	})
}

func TestFeatureDiffs(t *testing.T) {
	Convey("Given matched pairs with known geometry", t, func() {
		a, b := ratersPair()
		c := mustMatch(a, b, match.Params{MinOverlapRatio: 0.5, SameLabelOnly: true})

		Convey("Then onset differences match the timing report", func() {
			diffs, err := agreement.FeatureDiffs(c, a, b, agreement.FeatureOnset)
			So(err, ShouldBeNil)
			So(diffs, ShouldResemble, []float64{5, -2, 10})
		})

		Convey("Then duration differences subtract ground truth from prediction", func() {
			diffs, err := agreement.FeatureDiffs(c, a, b, agreement.FeatureDuration)
			So(err, ShouldBeNil)
			So(diffs[0], ShouldAlmostEqual, -10) // 90 - 100
			So(diffs[1], ShouldAlmostEqual, 7)   // 27 - 20
			So(diffs[2], ShouldAlmostEqual, -15) // 165 - 180
		})

		Convey("Then symmetric features evaluate the pair geometry", func() {
			overlaps, err := agreement.FeatureDiffs(c, a, b, agreement.FeatureTimeOverlap)
			So(err, ShouldBeNil)
			So(overlaps, ShouldResemble, []float64{90, 20, 165})

			l2s, err := agreement.FeatureDiffs(c, a, b, agreement.FeatureTimeL2)
			So(err, ShouldBeNil)
			So(l2s[0], ShouldAlmostEqual, math.Hypot(5, 5))
		})

		Convey("Then absent optional attributes propagate NaN", func() {
			diffs, err := agreement.FeatureDiffs(c, a, b, agreement.FeatureAmplitude)
			So(err, ShouldBeNil)
			So(math.IsNaN(diffs[0]), ShouldBeTrue)
		})

		Convey("Then an unknown feature fails", func() {
			_, err := agreement.FeatureDiffs(c, a, b, agreement.Feature("velocity"))
			So(err, ShouldWrap, agreement.ErrUnknownFeature)
		})
	})
}

func TestParseFeature(t *testing.T) {
	Convey("Given feature names in assorted spellings", t, func() {
		f, err := agreement.ParseFeature("onset_difference")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, agreement.FeatureOnset)

		f, err = agreement.ParseFeature("Time-IoU")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, agreement.FeatureTimeIoU)

		f, err = agreement.ParseFeature("center distance")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, agreement.FeatureCenterDistance)

		_, err = agreement.ParseFeature("peak velocity")
		So(err, ShouldWrap, agreement.ErrUnknownFeature)
	})
}
