package smorrery

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	kitlog "github.com/go-kit/kit/log"
)

// sbdbPayload mirrors the JPL SBDB Query API response: a list of field names
// and one row of values per small body. Values arrive as a mix of strings and
// numbers, hence the interface slices.
type sbdbPayload struct {
	Fields []string        `json:"fields"`
	Data   [][]interface{} `json:"data"`
}

var sbdbRequired = []string{"full_name", "epoch", "e", "a", "i", "om", "w"}

// ParseSmallBodies reads an SBDB query payload and returns one body per
// well-formed record. Records with non-numeric or physically invalid values
// are filtered out with a logged diagnostic; they never reach the kernel.
func ParseSmallBodies(r io.Reader, logger kitlog.Logger) ([]*Body, error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var payload sbdbPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed SBDB payload: %s", err)
	}
	idx := make(map[string]int, len(payload.Fields))
	for i, f := range payload.Fields {
		idx[f] = i
	}
	for _, f := range sbdbRequired {
		if _, ok := idx[f]; !ok {
			return nil, fmt.Errorf("SBDB payload missing field %q", f)
		}
	}

	var bodies []*Body
	for _, rec := range payload.Data {
		if len(rec) < len(payload.Fields) {
			logger.Log("smallbody", "skipped", "err", "short record")
			continue
		}
		name := strings.TrimSpace(fmt.Sprintf("%v", rec[idx["full_name"]]))
		vals := make(map[string]float64, len(sbdbRequired))
		var fieldErr error
		for _, f := range sbdbRequired[1:] {
			v, err := recordFloat(rec[idx[f]])
			if err != nil {
				fieldErr = fmt.Errorf("field %q: %s", f, err)
				break
			}
			vals[f] = v
		}
		if fieldErr != nil {
			logger.Log("smallbody", name, "err", fieldErr)
			continue
		}
		ma := 0.0
		if i, ok := idx["ma"]; ok {
			if v, err := recordFloat(rec[i]); err == nil {
				ma = v
			}
		}
		// SBDB hands out the argument of perihelion w; the kernel carries
		// the longitude of perihelion ϖ = w + om.
		el, err := NewOrbitalElements(vals["a"], vals["e"], vals["i"], vals["om"], vals["w"]+vals["om"], ma, vals["epoch"])
		if err != nil {
			logger.Log("smallbody", name, "err", err)
			continue
		}
		bodies = append(bodies, &Body{Name: name, Elements: el})
	}
	return bodies, nil
}

func recordFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case json.Number:
		return val.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}
