package dashboard

import (
	"context"
	"os"
	"os/signal"

	"github.com/mpapenbr/f1-dashboard-go/log"
	"github.com/mpapenbr/f1-dashboard-go/pkg/config"
	"github.com/mpapenbr/f1-dashboard-go/pkg/display"
	"github.com/mpapenbr/f1-dashboard-go/pkg/pipeline"
	"github.com/mpapenbr/f1-dashboard-go/pkg/processing"
	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry/udp"
)

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// Run wires the telemetry client, processor and renderer together and
// blocks until interrupted or the renderer fails.
func Run() error {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	log.ResetDefault(logger)

	log.Debug("Config:",
		log.String("host", config.Host),
		log.Int("port", config.Port),
		log.Int("queueCapacity", config.QueueCapacity),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var telemetrySink *config.Telemetry
	if config.EnableTelemetry {
		var err error
		if telemetrySink, err = config.SetupTelemetry(ctx); err != nil {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		} else {
			defer telemetrySink.Shutdown()
		}
	}

	client, err := udp.NewClient(config.Host, config.Port)
	if err != nil {
		log.Error("could not open telemetry socket", log.ErrorField(err))
		return err
	}
	defer client.Close()
	go func() {
		// unblock the pending read on shutdown
		<-ctx.Done()
		client.Close()
	}()

	proc := processing.NewProcessor(
		processing.WithRenderer(display.NewAnsiRenderer(os.Stdout)))
	pl := pipeline.NewPipeline(
		pipeline.WithSource(client),
		pipeline.WithSink(proc),
		pipeline.WithQueueCapacity(config.QueueCapacity))

	log.Info("Dashboard started")
	if err := pl.Run(ctx); err != nil {
		// a failed draw leaves the terminal in an undefined state
		log.Fatal("could not render dashboard", log.ErrorField(err))
	}
	log.Info("Dashboard terminated")
	return nil
}
