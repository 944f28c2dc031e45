package smorrery

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// ExportConfig configures the exporting of a simulation run.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	AsJSON    bool
	Timestamp bool
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.AsJSON
}

// createStateCSVFile returns a file which requires a defer close statement!
func createStateCSVFile(conf ExportConfig, startJD float64) *os.File {
	cfg := smorreryConfig()
	var filename string
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/states-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", cfg.outputDir, conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/states-%s.csv", cfg.outputDir, conf.Filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <jd> <body> <x> <y> <z>. Positions in AU, world frame.
# Simulation start JD: %f
jd,body,x,y,z`, time.Now(), startJD))
	return f
}

// StreamStates streams the states of a simulation run to a CSV file in the
// configured output directory. It returns when the channel closes.
func StreamStates(conf ExportConfig, stateChan <-chan State) {
	var f *os.File
	for state := range stateChan {
		if f == nil {
			f = createStateCSVFile(conf, state.JD)
			defer f.Close()
		}
		asTxt := fmt.Sprintf("\n%f,%s,%.8f,%.8f,%.8f", state.JD, state.Name, state.Position[0], state.Position[1], state.Position[2])
		if _, err := f.WriteString(asTxt); err != nil {
			panic(err)
		}
	}
}

// WriteCurveCSV writes a sampled orbit curve as CSV records of x, y, z.
func WriteCurveCSV(w io.Writer, pts [][]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range pts {
		rec := make([]string, 3)
		for i, v := range p {
			rec[i] = strconv.FormatFloat(v, 'f', 8, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// elementsRecord is the JSON shape handed to the display layer: the catalog
// parameterization, angles back in degrees.
type elementsRecord struct {
	Name      string  `json:"name"`
	A         float64 `json:"a"`
	E         float64 `json:"e"`
	I         float64 `json:"i"`
	Om        float64 `json:"om"`
	Varpi     float64 `json:"varpi"`
	Ma        float64 `json:"ma"`
	Epoch     float64 `json:"epoch"`
	Q         float64 `json:"q,omitempty"`
	QAphelion float64 `json:"Q,omitempty"`
	Shape     string  `json:"shape"`
}

// WriteElementsJSON writes the element sets of the given bodies as JSON for
// the display layer.
func WriteElementsJSON(w io.Writer, bodies []*Body) error {
	records := make([]elementsRecord, 0, len(bodies))
	for _, b := range bodies {
		a, e, i, Ω, ϖ, m0 := b.Elements.Elements()
		rec := elementsRecord{
			Name:  b.Name,
			A:     a,
			E:     e,
			I:     Rad2deg(i),
			Om:    Rad2deg(Ω),
			Varpi: Rad2deg(ϖ),
			Ma:    Rad2deg(m0),
			Epoch: b.Elements.Epoch(),
			Shape: b.Elements.Shape().String(),
		}
		if b.Elements.Shape() == Elliptical {
			rec.Q = b.Elements.Periapsis()
			rec.QAphelion = b.Elements.Apoapsis()
		}
		records = append(records, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
