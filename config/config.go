package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/n0mad-samurai/photo2geo/failure"
)

// Environment variables that seed the command-line defaults.
const (
	EnvInDir    = "PHOTO2GEO_IN_DIR"
	EnvOutDir   = "PHOTO2GEO_OUT_DIR"
	EnvVerbose  = "PHOTO2GEO_VERBOSE"
	EnvSQLite   = "PHOTO2GEO_DB"
	EnvLogLevel = "PHOTO2GEO_LOG_LEVEL"
)

// Config holds the settings of one run.
type Config struct {
	InDir    string
	OutDir   string
	Verbose  bool
	SQLite   bool
	LogLevel logrus.Level
}

// Loader reads configuration from an optional .env file, the environment and
// the command line, in increasing order of precedence.
type Loader struct {
	useDotEnv bool
	output    io.Writer
}

func NewLoader() *Loader {
	return &Loader{useDotEnv: true, output: os.Stderr}
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// WithOutput sets where usage and flag errors are printed.
func (l *Loader) WithOutput(w io.Writer) *Loader {
	l.output = w
	return l
}

// Load parses args (without the program name). It returns flag.ErrHelp when
// help was requested.
func (l *Loader) Load(args []string) (*Config, error) {
	if l.useDotEnv {
		// A missing .env leaves the process environment as is.
		_ = godotenv.Load()
	}

	cfg := &Config{
		InDir:   os.Getenv(EnvInDir),
		OutDir:  os.Getenv(EnvOutDir),
		Verbose: getEnvAsBool(EnvVerbose, false),
		SQLite:  getEnvAsBool(EnvSQLite, false),
	}

	fs := flag.NewFlagSet("photo2geo", flag.ContinueOnError)
	fs.SetOutput(l.output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "photo2geo extracts EXIF GPS data from digital photos and writes it to CSV and KML files.")
		fmt.Fprintln(fs.Output(), "\nUsage: photo2geo -i <inDir> -o <outDir> [-v] [-d]")
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "option: displays additional file lists")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for -verbose")
	fs.StringVar(&cfg.InDir, "inDir", cfg.InDir, "required: directory/folder to search for photos")
	fs.StringVar(&cfg.InDir, "i", cfg.InDir, "shorthand for -inDir")
	fs.StringVar(&cfg.OutDir, "outDir", cfg.OutDir, "required: directory/folder to save csv and kml files")
	fs.StringVar(&cfg.OutDir, "o", cfg.OutDir, "shorthand for -outDir")
	fs.BoolVar(&cfg.SQLite, "db", cfg.SQLite, "option: also write results to a SQLite database")
	fs.BoolVar(&cfg.SQLite, "d", cfg.SQLite, "shorthand for -db")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, failure.Wrap(failure.KindConfig, "parse", "invalid arguments", "", err)
	}
	if fs.NArg() > 0 {
		return nil, failure.New(failure.KindConfig, "parse", fmt.Sprintf("unrecognized arguments: %v", fs.Args()), "")
	}

	var missing []string
	if cfg.InDir == "" {
		missing = append(missing, "-i/--inDir")
	}
	if cfg.OutDir == "" {
		missing = append(missing, "-o/--outDir")
	}
	if len(missing) > 0 {
		return nil, failure.New(failure.KindConfig, "parse", "the following arguments are required: "+strings.Join(missing, ", "), "")
	}

	level, err := logrus.ParseLevel(getEnv(EnvLogLevel, "info"))
	if err != nil {
		return nil, failure.Wrap(failure.KindConfig, "parse", "invalid "+EnvLogLevel, "", err)
	}
	if cfg.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
