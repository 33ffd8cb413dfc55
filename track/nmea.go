package track

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"

	"gitlab.com/begraf/trailplay/option"
)

// ParseNMEA converts a NMEA sentence log into a single-track Set. Only RMC
// fixes in autonomous mode contribute points; RMC carries no elevation, so
// the resulting track renders with the profile placeholder.
func ParseNMEA(data []byte) (*Set, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var points []Point

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}

		if sentence.DataType() != nmea.TypeRMC {
			continue
		}

		rmc := sentence.(nmea.RMC)
		if rmc.Validity != nmea.ValidRMC {
			continue
		}

		// Two-digit NMEA years are anchored in the 2000s.
		date := time.Date(
			2000+rmc.Date.YY, time.Month(rmc.Date.MM), rmc.Date.DD,
			rmc.Time.Hour, rmc.Time.Minute, rmc.Time.Second, 0, time.UTC,
		)

		points = append(points, Point{
			Lat:  rmc.Latitude,
			Lon:  rmc.Longitude,
			Time: option.Some(date),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if len(points) == 0 {
		return NewSet(nil)
	}

	return NewSet([]*Track{FromPoints("", points)})
}
