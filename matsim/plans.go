package matsim

import (
	"encoding/xml"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type xmlTrip struct {
	Name        string `xml:"name,attr"`
	Origin      string `xml:"origin,attr"`
	Destination string `xml:"destination,attr"`
	LinkOrigin  string `xml:"link_origin,attr"`
	Count       string `xml:"count,attr"`
	Start       string `xml:"start,attr"`
	Mode        string `xml:"mode,attr"`
}

// ParsePlans streams a plans/trips file and returns the trips whose mode
// includes car travel. The mode filter is a case-insensitive substring
// match, so "car,pt" is retained and "bus" is dropped. Trips with missing
// required attributes are dropped with a warning.
func ParsePlans(path string) ([]RawTrip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open plans file %s", path)
	}
	defer f.Close()

	// Trip files can be large, so trips are decoded one element at a
	// time instead of loading the whole document.
	dec := xml.NewDecoder(f)
	var trips []RawTrip
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "parse plans file %s", path)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "trip" {
			continue
		}
		var t xmlTrip
		if err := dec.DecodeElement(&t, &start); err != nil {
			return nil, errors.Wrapf(err, "parse plans file %s", path)
		}
		if t.Name == "" || t.Origin == "" || t.Destination == "" || t.LinkOrigin == "" ||
			t.Start == "" || t.Mode == "" {
			log.Printf("trip with missing attributes ignored: name=%q", t.Name)
			continue
		}
		if !strings.Contains(strings.ToLower(t.Mode), "car") {
			continue
		}
		count := t.Count
		if count == "" {
			count = "1"
		}
		trips = append(trips, RawTrip{
			Name:            t.Name,
			OriginNode:      t.Origin,
			DestinationNode: t.Destination,
			LinkOrigin:      t.LinkOrigin,
			Count:           count,
			StartTime:       t.Start,
			Mode:            t.Mode,
		})
	}
	log.Printf("found %d car trips", len(trips))
	return trips, nil
}
