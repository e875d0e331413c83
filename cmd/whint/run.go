package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whint-io/whint"
	"github.com/whint-io/whint/vm"
)

func runFile(cmd *cobra.Command, v *viper.Viper, path string) error {
	logger, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts := []whint.Option{
		whint.WithInput(cmd.InOrStdin()),
		whint.WithOutput(cmd.OutOrStdout()),
		whint.WithHeapSize(v.GetInt("heap-size")),
		whint.WithLogger(logger),
	}
	if v.GetBool("trace") {
		opts = append(opts, whint.WithObserver(vm.NewTraceObserver(logger)))
	}

	start := time.Now()
	err = whint.RunFile(cmd.Context(), path, opts...)
	logger.Debug().
		Str("file", path).
		Dur("elapsed", time.Since(start)).
		Bool("failed", err != nil).
		Msg("program finished")
	return err
}

// newLogger builds the console logger used for a single run. Every line is
// tagged with a fresh run_id.
func newLogger(v *viper.Viper, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", v.GetString("log-level"))
	}
	if v.GetBool("trace") {
		level = zerolog.TraceLevel
	}
	runID, err := uuid.NewV4()
	if err != nil {
		return zerolog.Nop(), err
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    v.GetBool("no-color") || !isTerminal(w),
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Str("run_id", runID.String()).
		Logger(), nil
}
