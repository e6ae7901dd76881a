package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evanjt06/intlru/cache"
	"github.com/evanjt06/intlru/internal"
	"github.com/evanjt06/intlru/internal/scenario"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (default: built-in capacity-2 script)")
	logPath := flag.String("log", "intlru.log", "log file, \"-\" for stderr")
	flag.Parse()

	if err := run(*scenarioPath, *logPath, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scenarioPath, logPath string, out io.Writer) (err error) {
	s := scenario.Default()
	if scenarioPath != "" {
		loaded, err := scenario.Load(scenarioPath)
		if err != nil {
			return err
		}
		s = loaded
	}

	logger, closeLog, err := internal.NewLogger(logPath, zap.DebugLevel)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closeLog())
	}()

	c, err := cache.NewLRUCache(s.Capacity,
		cache.WithLogger(logger),
		cache.WithEvictCallback(func(key, value int) {
			logger.Infow("Evicted", "key", key, "value", value)
		}),
	)
	if err != nil {
		return err
	}

	_, err = scenario.Run(s, c, out)
	return err
}
