package export

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/maptrail/timeline2geo/internal/timeline"
)

const (
	kmlNamespace   = "http://www.opengis.net/kml/2.2"
	visitStyleID   = "visitStyle"
	visitIconHref  = "http://maps.google.com/mapfiles/kml/pushpin/red-pushpin.png"
	unknownDateKey = "Unknown"
)

type kmlRoot struct {
	XMLName  xml.Name    `xml:"kml"`
	XMLNS    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name    string      `xml:"name"`
	Styles  []kmlStyle  `xml:"Style"`
	Folders []kmlFolder `xml:"Folder"`
}

type kmlStyle struct {
	ID        string        `xml:"id,attr"`
	LineStyle *kmlLineStyle `xml:"LineStyle,omitempty"`
	IconStyle *kmlIconStyle `xml:"IconStyle,omitempty"`
}

type kmlLineStyle struct {
	Color string `xml:"color"`
	Width int    `xml:"width"`
}

type kmlIconStyle struct {
	Scale string  `xml:"scale"`
	Icon  kmlIcon `xml:"Icon"`
}

type kmlIcon struct {
	Href string `xml:"href"`
}

type kmlFolder struct {
	Name       string         `xml:"name"`
	Subfolders []kmlFolder    `xml:"Folder,omitempty"`
	Placemarks []kmlPlacemark `xml:"Placemark,omitempty"`
}

type kmlPlacemark struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description"`
	TimeSpan    *kmlTimeSpan   `xml:"TimeSpan,omitempty"`
	StyleURL    string         `xml:"styleUrl"`
	Point       *kmlPoint      `xml:"Point,omitempty"`
	LineString  *kmlLineString `xml:"LineString,omitempty"`
}

type kmlTimeSpan struct {
	Begin string `xml:"begin"`
	End   string `xml:"end"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlLineString struct {
	Tessellate  int    `xml:"tessellate"`
	Coordinates string `xml:"coordinates"`
}

// kmlColor converts a "#rrggbb" hex color to KML's aabbggrr ordering
// with a fixed cc alpha.
func kmlColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "cc9e9e9e"
	}
	return "cc" + hex[4:6] + hex[2:4] + hex[0:2]
}

// timeSpan builds a TimeSpan element, present only when both instants
// are known; Google Earth's time slider needs a closed interval.
func timeSpan(start, end string) *kmlTimeSpan {
	if start == "" || end == "" {
		return nil
	}
	return &kmlTimeSpan{Begin: start, End: end}
}

func dateKey(ts string) string {
	if date := timeline.ExtractTimeParts(ts).Date; date != "" {
		return date
	}
	return unknownDateKey
}

// KML renders the model as an OGC KML 2.2 document, pretty-printed with
// two-space indentation. Placemarks are grouped into one folder per
// date, sorted ascending, each with "Places Visited" and "Activities"
// subfolders. Activities with fewer than two path points are omitted;
// a line needs two ends.
func KML(model *timeline.Model, docName string, colorOverrides map[string]string) ([]byte, error) {
	doc := kmlDocument{Name: docName}

	// One line style per distinct activity type, sorted for
	// deterministic output.
	typeSet := make(map[string]struct{})
	for _, activity := range model.Activities {
		typeSet[activity.Type] = struct{}{}
	}
	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		doc.Styles = append(doc.Styles, kmlStyle{
			ID: t,
			LineStyle: &kmlLineStyle{
				Color: kmlColor(colorFor(t, colorOverrides)),
				Width: 4,
			},
		})
	}
	doc.Styles = append(doc.Styles, kmlStyle{
		ID: visitStyleID,
		IconStyle: &kmlIconStyle{
			Scale: "1.1",
			Icon:  kmlIcon{Href: visitIconHref},
		},
	})

	visitsByDate := make(map[string][]timeline.Visit)
	for _, visit := range model.Visits {
		key := dateKey(visit.StartTime)
		visitsByDate[key] = append(visitsByDate[key], visit)
	}

	activitiesByDate := make(map[string][]timeline.Activity)
	for _, activity := range model.Activities {
		if len(activity.Path) < 2 {
			continue
		}
		key := dateKey(activity.StartTime)
		activitiesByDate[key] = append(activitiesByDate[key], activity)
	}

	dateSet := make(map[string]struct{})
	for date := range visitsByDate {
		dateSet[date] = struct{}{}
	}
	for date := range activitiesByDate {
		dateSet[date] = struct{}{}
	}
	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		folder := kmlFolder{Name: date}

		if visits := visitsByDate[date]; len(visits) > 0 {
			sub := kmlFolder{Name: "Places Visited"}
			for _, visit := range visits {
				sub.Placemarks = append(sub.Placemarks, visitPlacemark(visit, date))
			}
			folder.Subfolders = append(folder.Subfolders, sub)
		}

		if activities := activitiesByDate[date]; len(activities) > 0 {
			sub := kmlFolder{Name: "Activities"}
			for _, activity := range activities {
				sub.Placemarks = append(sub.Placemarks, activityPlacemark(activity, date))
			}
			folder.Subfolders = append(folder.Subfolders, sub)
		}

		doc.Folders = append(doc.Folders, folder)
	}

	out, err := xml.MarshalIndent(kmlRoot{XMLNS: kmlNamespace, Document: doc}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling KML: %w", err)
	}

	return append([]byte(xml.Header), out...), nil
}

func visitPlacemark(visit timeline.Visit, date string) kmlPlacemark {
	desc := []string{"Date: " + date}
	if visit.StartTime != "" {
		desc = append(desc, "Arrived: "+visit.StartTime)
	}
	if visit.EndTime != "" {
		desc = append(desc, "Departed: "+visit.EndTime)
	}

	return kmlPlacemark{
		Name:        visit.Name,
		Description: strings.Join(desc, "\n"),
		TimeSpan:    timeSpan(visit.StartTime, visit.EndTime),
		StyleURL:    "#" + visitStyleID,
		Point: &kmlPoint{
			Coordinates: fmt.Sprintf("%g,%g,0", visit.Lng, visit.Lat),
		},
	}
}

func activityPlacemark(activity timeline.Activity, date string) kmlPlacemark {
	desc := []string{"Date: " + date}
	if activity.DistanceMeters != 0 {
		desc = append(desc, fmt.Sprintf("Distance: %.1f km", activity.DistanceMeters/1000))
	}
	if activity.StartTime != "" {
		desc = append(desc, "Start: "+activity.StartTime)
	}
	if activity.EndTime != "" {
		desc = append(desc, "End: "+activity.EndTime)
	}

	coords := make([]string, 0, len(activity.Path))
	for _, pt := range activity.Path {
		coords = append(coords, fmt.Sprintf("%g,%g,0", pt[1], pt[0]))
	}

	return kmlPlacemark{
		Name:        timeline.ActivityLabel(activity.Type),
		Description: strings.Join(desc, "\n"),
		TimeSpan:    timeSpan(activity.StartTime, activity.EndTime),
		StyleURL:    "#" + activity.Type,
		LineString: &kmlLineString{
			Tessellate:  1,
			Coordinates: strings.Join(coords, "\n"),
		},
	}
}
