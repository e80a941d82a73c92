package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/haimasree/pEYES/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given a fresh Config", t, func() {
		cfg := config.New()
		So(cfg.LogLevel, ShouldEqual, "info")
		So(cfg.WorkerCount, ShouldBeGreaterThan, 0)
		So(cfg.QueueSize, ShouldEqual, 1024)
		So(cfg.Strategy, ShouldEqual, "window-overlap")
		So(cfg.MinOverlapRatio, ShouldEqual, 0.5)
		So(cfg.Resolution, ShouldEqual, 2)
		So(cfg.SameLabelOnly, ShouldBeTrue)
		So(cfg.Trials, ShouldEqual, 50)
		So(cfg.Seed, ShouldEqual, 42)
		So(cfg.TopN, ShouldEqual, 10)
	})
}

func TestLoad(t *testing.T) {
	Convey("Given the layered configuration loader", t, func() {
		ctx := context.Background()

		Convey("When nothing overrides the defaults", func() {
			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Strategy, ShouldEqual, "window-overlap")
		})

		Convey("When environment variables override", func() {
			t.Setenv("PEYES_WORKER_COUNT", "7")
			t.Setenv("PEYES_STRATEGY", "iou-threshold")
			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.WorkerCount, ShouldEqual, 7)
			So(cfg.Strategy, ShouldEqual, "iou-threshold")
		})

		Convey("When a config file is supplied", func() {
			path := filepath.Join(t.TempDir(), "peyes.yaml")
			So(os.WriteFile(path, []byte("trials: 5\nseed: 99\n"), 0o600), ShouldBeNil)
			t.Setenv("PEYES_CONFIG", path)

			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Trials, ShouldEqual, 5)
			So(cfg.Seed, ShouldEqual, 99)

			Convey("And env still wins over the file", func() {
				t.Setenv("PEYES_TRIALS", "11")
				cfg, err := config.Load(ctx)
				So(err, ShouldBeNil)
				So(cfg.Trials, ShouldEqual, 11)
			})
		})

		Convey("When the config file is missing", func() {
			t.Setenv("PEYES_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrLoadConfig)
		})

		Convey("When a value fails validation", func() {
			t.Setenv("PEYES_CONFIG", "")
			t.Setenv("PEYES_WORKER_COUNT", "0")
			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)

			t.Setenv("PEYES_WORKER_COUNT", "4")
			t.Setenv("PEYES_RESOLUTION", "-1")
			_, err = config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
