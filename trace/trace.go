package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/truckguide/guidance"
)

type record struct {
	Lat      float64   `json:"lat" validate:"gte=-90,lte=90"`
	Lon      float64   `json:"lon" validate:"gte=-180,lte=180"`
	Accuracy float64   `json:"accuracy" validate:"gte=0"`
	Speed    float64   `json:"speed" validate:"gte=0"`
	Heading  float64   `json:"heading" validate:"gte=0,lt=360"`
	Time     time.Time `json:"time"`
}

var validate = validator.New()

// Load reads a JSON fix trace from r.
func Load(r io.Reader) ([]guidance.Fix, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	fixes := make([]guidance.Fix, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("fix %d: %w", i, err)
		}
		fixes[i] = guidance.Fix{
			Lat:            rec.Lat,
			Lon:            rec.Lon,
			AccuracyMeters: rec.Accuracy,
			SpeedMps:       rec.Speed,
			HeadingDegrees: rec.Heading,
			Time:           rec.Time,
		}
	}
	return fixes, nil
}

// LoadFile reads a JSON fix trace from path.
func LoadFile(path string) ([]guidance.Fix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
