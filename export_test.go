package smorrery

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteCurveCSV(t *testing.T) {
	el, err := NewOrbitalElements(1.5, 0.2, 10, 40, 95, 0, J2000)
	if err != nil {
		t.Fatal(err)
	}
	pts, err := el.SampleOrbitCurve(10)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteCurveCSV(&buf, pts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 { // header + 10 points
		t.Fatalf("%d lines", len(lines))
	}
	if lines[0] != "x,y,z" {
		t.Fatalf("header %q", lines[0])
	}
}

func TestWriteElementsJSON(t *testing.T) {
	sys := NewSolarSystem(J2000, nil)
	var buf bytes.Buffer
	if err := WriteElementsJSON(&buf, sys.Bodies); err != nil {
		t.Fatal(err)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != len(Planets) {
		t.Fatalf("%d records", len(records))
	}
	for _, rec := range records {
		if rec["shape"] != "elliptical" {
			t.Fatalf("%v", rec)
		}
		if rec["a"].(float64) <= 0 {
			t.Fatalf("%v", rec)
		}
	}
}

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty config should be useless")
	}
	if (ExportConfig{AsCSV: true}).IsUseless() {
		t.Fatal("CSV config is not useless")
	}
	if (ExportConfig{AsJSON: true}).IsUseless() {
		t.Fatal("JSON config is not useless")
	}
}
