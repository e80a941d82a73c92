package batch_test

import (
	"context"
	"testing"

	"github.com/haimasree/pEYES/internal/batch"
	"github.com/haimasree/pEYES/pkg/compare"
	"github.com/haimasree/pEYES/pkg/event"
	"github.com/haimasree/pEYES/pkg/logger"
	"github.com/haimasree/pEYES/pkg/match"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func fixturePair() (event.Sequence, event.Sequence) {
	a := event.MustNewSequence([]event.Event{
		event.MustNew(event.Fixation, 0, 100),
		event.MustNew(event.Saccade, 100, 120),
		event.MustNew(event.Fixation, 120, 300),
	})
	b := event.MustNewSequence([]event.Event{
		event.MustNew(event.Fixation, 5, 95),
		event.MustNew(event.Saccade, 98, 125),
		event.MustNew(event.Fixation, 130, 295),
	})
	return a, b
}

func fixtureConfig() compare.Config {
	return compare.Config{
		Strategy: match.WindowOverlap,
		Params:   match.Params{MinOverlapRatio: 0.5, SameLabelOnly: true},
		Metrics:  []compare.Metric{compare.MetricPrecisionRecallF1},
	}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a bounded in-memory queue", t, func() {
		ctx := context.Background()
		a, b := fixturePair()
		queue := batch.NewInMemoryQueue(batch.WithCapacity(2))

		Convey("When jobs are enqueued within capacity", func() {
			So(queue.Enqueue(ctx, batch.NewJob("r1", "t1", a, b, fixtureConfig())), ShouldBeTrue)
			So(queue.Enqueue(ctx, batch.NewJob("r2", "t1", a, b, fixtureConfig())), ShouldBeTrue)
			So(queue.Len(), ShouldEqual, 2)

			Convey("Then a full queue rejects without blocking", func() {
				So(queue.Enqueue(ctx, batch.NewJob("r3", "t1", a, b, fixtureConfig())), ShouldBeFalse)
			})

			Convey("Then dequeuing drains in FIFO order", func() {
				job := <-queue.Dequeue()
				So(job.Labeler, ShouldEqual, "r1")
				So(queue.Len(), ShouldEqual, 1)
			})
		})

		Convey("When the queue is closed", func() {
			So(queue.Enqueue(ctx, batch.NewJob("r1", "t1", a, b, fixtureConfig())), ShouldBeTrue)
			So(queue.Close(), ShouldBeNil)

			Convey("Then further enqueues are refused", func() {
				So(queue.Enqueue(ctx, batch.NewJob("r2", "t1", a, b, fixtureConfig())), ShouldBeFalse)
			})

			Convey("Then queued jobs still drain before the channel closes", func() {
				job, ok := <-queue.Dequeue()
				So(ok, ShouldBeTrue)
				So(job.Labeler, ShouldEqual, "r1")
				_, ok = <-queue.Dequeue()
				So(ok, ShouldBeFalse)
			})

			Convey("Then closing twice is harmless", func() {
				So(queue.Close(), ShouldBeNil)
			})
		})

		Convey("When job IDs are assigned", func() {
			j1 := batch.NewJob("r1", "t1", a, b, fixtureConfig())
			j2 := batch.NewJob("r1", "t1", a, b, fixtureConfig())
			So(j1.ID, ShouldNotBeBlank)
			So(j1.ID, ShouldNotEqual, j2.ID)
		})
	})
}

func TestRunner(t *testing.T) {
	Convey("Given a runner over a queue of comparison jobs", t, func() {
		ctx := context.Background()
		a, b := fixturePair()

		Convey("When a batch of jobs runs to completion", func() {
			queue := batch.NewInMemoryQueue(batch.WithCapacity(16))
			runner := batch.NewRunner(queue, batch.WithWorkerCount(4))
			runner.Start(ctx)

			const jobs = 10
			for i := 0; i < jobs; i++ {
				So(queue.Enqueue(ctx, batch.NewJob("rater", "trial", a, b, fixtureConfig())), ShouldBeTrue)
			}
			So(queue.Close(), ShouldBeNil)

			var outcomes []batch.Outcome
			for o := range runner.Results() {
				outcomes = append(outcomes, o)
			}

			Convey("Then every job yields a successful outcome", func() {
				So(outcomes, ShouldHaveLength, jobs)
				for _, o := range outcomes {
					So(o.Err, ShouldBeNil)
					So(o.Result, ShouldNotBeNil)
					So(o.Result.Counting.Overall.F1, ShouldEqual, 1)
				}
			})
		})

		Convey("When a job carries an invalid configuration", func() {
			queue := batch.NewInMemoryQueue(batch.WithCapacity(4))
			runner := batch.NewRunner(queue, batch.WithWorkerCount(1))
			runner.Start(ctx)

			bad := fixtureConfig()
			bad.Metrics = nil
			So(queue.Enqueue(ctx, batch.NewJob("rater", "trial", a, b, bad)), ShouldBeTrue)
			So(queue.Close(), ShouldBeNil)

			var outcomes []batch.Outcome
			for o := range runner.Results() {
				outcomes = append(outcomes, o)
			}

			Convey("Then the failure lands in the outcome, not a panic", func() {
				So(outcomes, ShouldHaveLength, 1)
				So(outcomes[0].Err, ShouldWrap, compare.ErrInvalidConfig)
				So(outcomes[0].Result, ShouldBeNil)
			})
		})

		Convey("When the context is cancelled before work arrives", func() {
			queue := batch.NewInMemoryQueue(batch.WithCapacity(4))
			runner := batch.NewRunner(queue, batch.WithWorkerCount(2))
			cancelled, cancel := context.WithCancel(ctx)
			runner.Start(cancelled)
			cancel()

			Convey("Then the results channel closes without outcomes", func() {
				var outcomes []batch.Outcome
				for o := range runner.Results() {
					outcomes = append(outcomes, o)
				}
				So(outcomes, ShouldBeEmpty)
			})
		})
	})
}
