// Mantis is a UCI-compatible chess engine.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/Clinton-Nmereole/mantis/internal/engine"
	"github.com/Clinton-Nmereole/mantis/internal/storage"
	"github.com/Clinton-Nmereole/mantis/internal/uci"
)

const (
	defaultBigNet   = "nn-c288c895ea92.nnue"
	defaultSmallNet = "nn-37f18f62d772.nnue"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	eng := engine.NewEngine(64)
	eng.LoadPersistedState()
	if err := autoLoadNNUE(eng); err != nil {
		log.Printf("Warning: NNUE not loaded: %v (using classical evaluation)", err)
	}

	protocol := uci.New(eng)
	protocol.Run()
}

// autoLoadNNUE looks for the default network pair in a few conventional
// locations so the engine can start with NNUE evaluation enabled without
// requiring the UCI EvalFile/EvalFileSmall options to be set explicitly.
func autoLoadNNUE(eng *engine.Engine) error {
	searchPaths := []string{"./nnue", "."}
	if dir, err := storage.GetNNUEDir(); err == nil {
		searchPaths = append([]string{dir}, searchPaths...)
	}

	for _, dir := range searchPaths {
		bigPath := filepath.Join(dir, defaultBigNet)
		smallPath := filepath.Join(dir, defaultSmallNet)
		if fileExists(bigPath) && fileExists(smallPath) {
			if err := eng.LoadNNUE(bigPath, smallPath); err != nil {
				log.Printf("Failed to load NNUE from %s: %v", dir, err)
				continue
			}
			eng.SetUseNNUE(true)
			log.Printf("NNUE loaded from %s", dir)
			return nil
		}
	}

	return os.ErrNotExist
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
