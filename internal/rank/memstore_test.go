package rank_test

import (
	"context"
	"math"
	"testing"

	"github.com/haimasree/pEYES/internal/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory ranking store", t, func() {
		ctx := context.Background()
		store := rank.NewMemStore()

		Convey("When scores are recorded for several labelers", func() {
			for _, rec := range []struct {
				labeler string
				score   float64
			}{
				{"careful", 0.95},
				{"careful", 0.85},
				{"hasty", 0.60},
				{"erratic", 0.30},
				{"erratic", 0.40},
			} {
				changed, err := store.Record(ctx, rec.labeler, rec.score)
				So(err, ShouldBeNil)
				So(changed, ShouldBeTrue)
			}

			Convey("Then TopN orders by mean score descending", func() {
				entries, err := store.TopN(ctx, 10)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Labeler, ShouldEqual, "careful")
				So(entries[0].Score, ShouldAlmostEqual, 0.90)
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].Trials, ShouldEqual, 2)
				So(entries[1].Labeler, ShouldEqual, "hasty")
				So(entries[2].Labeler, ShouldEqual, "erratic")
				So(entries[2].Score, ShouldAlmostEqual, 0.35)
			})

			Convey("Then TopN truncates to the requested size", func() {
				entries, err := store.TopN(ctx, 2)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
			})

			Convey("Then Rank finds a single labeler's position", func() {
				entry, err := store.Rank(ctx, "hasty")
				So(err, ShouldBeNil)
				So(entry.Rank, ShouldEqual, 2)
			})

			Convey("Then an unknown labeler is reported", func() {
				_, err := store.Rank(ctx, "nobody")
				So(err, ShouldWrap, rank.ErrNotFound)
			})

			Convey("Then Count tracks distinct labelers", func() {
				So(store.Count(ctx), ShouldEqual, 3)
			})
		})

		Convey("When a NaN score is recorded", func() {
			changed, err := store.Record(ctx, "careful", math.NaN())
			So(err, ShouldBeNil)
			So(changed, ShouldBeFalse)
			So(store.Count(ctx), ShouldEqual, 0)
		})

		Convey("When equal means tie", func() {
			_, err := store.Record(ctx, "zeta", 0.5)
			So(err, ShouldBeNil)
			_, err = store.Record(ctx, "alpha", 0.5)
			So(err, ShouldBeNil)

			entries, err := store.TopN(ctx, 2)
			So(err, ShouldBeNil)
			So(entries[0].Labeler, ShouldEqual, "alpha")
			So(entries[1].Labeler, ShouldEqual, "zeta")
		})

		Convey("When the limit is not positive", func() {
			_, err := store.TopN(ctx, 0)
			So(err, ShouldWrap, rank.ErrInvalidLimit)
		})
	})
}
