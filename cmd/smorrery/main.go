package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/qavit/smorrery"
)

var (
	epochFlag   = flag.String("epoch", "", "start epoch as RFC3339 (default: now)")
	daysFlag    = flag.Float64("days", 365.25, "simulated duration in days")
	stepFlag    = flag.Float64("step", 1, "simulated step in days")
	catalogFlag = flag.String("catalog", "", "SBDB query JSON file of small bodies to track")
	launchFlag  = flag.String("launch", "", "launch a body from 'x,y,z,vx,vy,vz' (AU, AU/year)")
	exportFlag  = flag.String("export", "run", "base name of the exported state CSV")
	curvesFlag  = flag.Bool("curves", false, "also write one orbit-curve CSV per body")
)

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	start := time.Now()
	if *epochFlag != "" {
		var err error
		start, err = time.Parse(time.RFC3339, *epochFlag)
		if err != nil {
			logger.Log("err", fmt.Sprintf("cannot parse epoch: %s", err))
			os.Exit(1)
		}
	}
	startJD := smorrery.JulianDate(start)

	sys := smorrery.NewSolarSystem(startJD, logger)
	if *catalogFlag != "" {
		f, err := os.Open(*catalogFlag)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		bodies, err := smorrery.ParseSmallBodies(f, logger)
		f.Close()
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		for _, b := range bodies {
			sys.Add(b.Name, b.Elements)
		}
		logger.Log("catalog", *catalogFlag, "bodies", len(bodies))
	}
	if *launchFlag != "" {
		R, V, err := parseStateVector(*launchFlag)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		if _, err := sys.Launch("user-asteroid", R, V); err != nil {
			// The rejection is already logged; nothing else to clean up.
			os.Exit(1)
		}
	}

	conf := smorrery.ExportConfig{Filename: *exportFlag, AsCSV: true, Timestamp: false}
	if err := sys.Run(startJD+*daysFlag, *stepFlag, conf); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	logger.Log("run", "done", "bodies", len(sys.Bodies), "jd", sys.CurrentJD)

	if *curvesFlag {
		for _, b := range sys.Bodies {
			pts, err := b.Curve()
			if err != nil {
				logger.Log("body", b.Name, "err", err)
				continue
			}
			name := fmt.Sprintf("curve-%s.csv", strings.ReplaceAll(b.Name, " ", "_"))
			f, err := os.Create(name)
			if err != nil {
				logger.Log("err", err)
				os.Exit(1)
			}
			if err := smorrery.WriteCurveCSV(f, pts); err != nil {
				logger.Log("body", b.Name, "err", err)
			}
			f.Close()
		}
	}
}

func parseStateVector(s string) (R, V []float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return nil, nil, fmt.Errorf("state vector needs 6 components, got %d", len(parts))
	}
	vals := make([]float64, 6)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("component %d: %s", i, err)
		}
	}
	return vals[:3], vals[3:], nil
}
