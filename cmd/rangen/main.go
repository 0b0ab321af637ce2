// Command rangen compiles a YAML file of named value expressions and
// streams generated records to stdout, a file or a SQLite table.
//
//	rangen -config defs.yaml -n 100
//	rangen -config defs.yaml -n 1000 -seed 7 -db out.db -table records
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/rangen/internal/config"
	"github.com/funvibe/rangen/internal/sink"
	"github.com/funvibe/rangen/pkg/rangen"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML definition file (required)")
		count      = flag.Int("n", 10, "number of records to generate")
		seed       = flag.Uint64("seed", 0, "seed for reproducible output")
		outPath    = flag.String("out", "", "write NDJSON to a file instead of stdout")
		dbPath     = flag.String("db", "", "write records to a SQLite database file")
		table      = flag.String("table", "records", "SQLite table name")
	)
	flag.Parse()

	if err := run(*configPath, *count, *seed, seedGiven(), *outPath, *dbPath, *table); err != nil {
		fmt.Fprintln(os.Stderr, "rangen:", err)
		os.Exit(1)
	}
}

func seedGiven() bool {
	given := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			given = true
		}
	})
	return given
}

func run(configPath string, count int, seed uint64, seeded bool, outPath, dbPath, table string) error {
	if configPath == "" {
		return fmt.Errorf("-config is required")
	}
	if count < 1 {
		return fmt.Errorf("-n must be at least 1")
	}

	defs, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	var opts []rangen.Option
	if seeded {
		opts = append(opts, rangen.WithSeed(seed))
	}
	gen, err := rangen.Build(defs, opts...)
	if err != nil {
		return err
	}

	out, err := openSink(outPath, dbPath, table)
	if err != nil {
		return err
	}
	defer out.Close()

	for i := 0; i < count; i++ {
		record, err := gen.Next()
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func openSink(outPath, dbPath, table string) (sink.Sink, error) {
	switch {
	case dbPath != "":
		return sink.NewSQLite(dbPath, table)
	case outPath != "":
		f, err := os.Create(outPath)
		if err != nil {
			return nil, err
		}
		return &fileSink{NDJSON: sink.NewNDJSON(f, false), f: f}, nil
	default:
		pretty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return sink.NewNDJSON(os.Stdout, pretty), nil
	}
}

type fileSink struct {
	*sink.NDJSON
	f *os.File
}

func (s *fileSink) Close() error {
	return s.f.Close()
}
