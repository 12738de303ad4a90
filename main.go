package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/n0mad-samurai/photo2geo/config"
	"github.com/n0mad-samurai/photo2geo/export"
	"github.com/n0mad-samurai/photo2geo/processor"
	"github.com/n0mad-samurai/photo2geo/report"
	"github.com/n0mad-samurai/photo2geo/utils"
)

const version = "v0.21 October 2026"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one batch and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	startTime := time.Now()

	cfg, err := config.NewLoader().WithOutput(stderr).Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	id := uuid.NewString()
	log := newLogger(cfg, stderr).WithField("run", id)

	if _, err := utils.CheckInPath(cfg.InDir); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := utils.CheckOutPath(cfg.OutDir); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, "\nWelcome to photo2geo "+version)
	fmt.Fprintln(stdout, "Local System Type: "+runtime.GOOS)
	fmt.Fprintln(stdout, "Local System Time: "+startTime.Format(time.ANSIC))

	agg, err := processor.New(log).Run(cfg.InDir)
	if err != nil {
		log.WithError(err).Error("run aborted")
		fmt.Fprintln(stderr, "Process Aborted!", err)
		return 1
	}

	if cfg.Verbose {
		report.Buckets(stdout, agg)
	}
	report.Table(stdout, agg.Records())

	if path, err := export.WriteCSV(cfg.OutDir, agg.Records()); err != nil {
		fmt.Fprintln(stdout, "Failed: CSV File Save: "+err.Error())
	} else {
		fmt.Fprintln(stdout, "\nCSV File: "+path+" Created")
	}

	if path, err := export.WriteKML(cfg.OutDir, agg.Records()); err != nil {
		fmt.Fprintln(stdout, "Failed: KML File Save: "+err.Error())
	} else {
		fmt.Fprintln(stdout, "\nKML File: "+path+" Created")
	}

	if cfg.SQLite {
		runInfo := export.RunInfo{ID: id, GeneratedAt: startTime, InDir: cfg.InDir}
		if path, err := export.WriteSQLite(cfg.OutDir, runInfo, agg); err != nil {
			fmt.Fprintln(stdout, "Failed: SQLite File Save: "+err.Error())
		} else {
			fmt.Fprintln(stdout, "\nSQLite File: "+path+" Created")
		}
	}

	fmt.Fprintln(stdout, "\nProgram completed normally")
	fmt.Fprintf(stdout, "\nElapsed time: %.2f seconds\n\n", time.Since(startTime).Seconds())
	return 0
}

func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}
