// Command simrun drives one policy block through the full lifecycle
// in-process: it plays the simulation host, feeding an observation per
// tick from a CSV file and printing the resulting actions.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	blk "github.com/SyedDaiam9101/policy-block/internal/block"
	"github.com/SyedDaiam9101/policy-block/internal/host"
	"github.com/SyedDaiam9101/policy-block/internal/inference"
)

func main() {
	modelPath := flag.String("model", "", "Path to ONNX model file")
	obsDim := flag.Int("obs-dim", 0, "Observation dimension")
	actDim := flag.Int("act-dim", 0, "Action dimension")
	inputPath := flag.String("input", "", "CSV file with one observation per row (default: stdin)")
	ticks := flag.Int("ticks", 0, "Maximum number of ticks to run (default: all rows)")
	useMock := flag.Bool("mock", false, "Use mock inference engine (for testing)")
	flag.Parse()

	block := blk.New()
	if *useMock {
		block = blk.NewWithLoader(func(modelPath string, obsDim, actDim int) (inference.Engine, error) {
			return inference.NewMock(obsDim, actDim), nil
		})
	}

	driver := host.NewDriver(block,
		host.StringParam(*modelPath),
		host.IntParam(*obsDim),
		host.IntParam(*actDim),
	)

	if err := driver.Configure(); err != nil {
		log.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err != nil {
		log.Fatalf("Start failed: %v", err)
	}
	defer driver.Terminate()

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	if err := run(driver, in, *obsDim, *ticks, os.Stdout); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

// run steps the driver once per CSV row until the input is exhausted or
// maxTicks rows have been consumed (0 means no limit).
func run(driver *host.Driver, in io.Reader, obsDim, maxTicks int, out io.Writer) error {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = obsDim

	inst := driver.Instance()
	obs := make([]float64, obsDim)

	tick := 0
	for {
		if maxTicks > 0 && tick >= maxTicks {
			return nil
		}

		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tick %d: bad input row: %w", tick, err)
		}

		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return fmt.Errorf("tick %d: bad value %q: %w", tick, field, err)
			}
			obs[i] = v
		}

		inst.SetInput(0, obs)
		if err := driver.Step(); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}

		fmt.Fprintf(out, "tick=%d action=%s\n", tick, formatVector(inst.Output(0)))
		tick++
	}
}

func formatVector(v []float64) string {
	fields := make([]string, len(v))
	for i, x := range v {
		fields[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "[" + strings.Join(fields, ", ") + "]"
}
