package server

import (
	"bytes"

	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/devtools"
	"dungeondigger/pkg/game/feature"
	"dungeondigger/pkg/game/generator"
)

// Message types sent on the stream
const (
	MsgFeature = "feature"
	MsgDone    = "done"
	MsgError   = "error"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoints(ps []world.Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

type Room struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Doors  []Point `json:"doors"`
}

func toRoom(r *feature.Room) Room {
	return Room{
		X:      r.Left(),
		Y:      r.Top(),
		Width:  r.Width(),
		Height: r.Height(),
		Doors:  toPoints(r.Doors()),
	}
}

type Corridor struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

func toCorridor(c *feature.Corridor) Corridor {
	return Corridor{
		Start: Point{X: c.Start().X, Y: c.Start().Y},
		End:   Point{X: c.End().X, Y: c.End().Y},
	}
}

// Stats summarises a finished dungeon
type Stats struct {
	Generator string  `json:"generator"`
	Seed      int64   `json:"seed"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Rooms     int     `json:"rooms"`
	Corridors int     `json:"corridors"`
	Doors     int     `json:"doors"`
	Attempts  int     `json:"attempts"`
	DugRatio  float64 `json:"dug_ratio"`
	Regions   int     `json:"regions"`
}

func toStats(d *generator.Dungeon) Stats {
	return Stats{
		Generator: d.Generator,
		Seed:      d.Seed,
		Width:     d.Grid.Width(),
		Height:    d.Grid.Height(),
		Rooms:     len(d.Rooms),
		Corridors: len(d.Corridors),
		Doors:     len(d.Doors()),
		Attempts:  d.Attempts,
		DugRatio:  d.DugRatio(),
		Regions:   generator.Regions(d.Grid),
	}
}

// Document is the JSON form of a dungeon. Rows hold one symbol per cell.
type Document struct {
	Stats     Stats      `json:"stats"`
	Rows      []string   `json:"rows"`
	Rooms     []Room     `json:"rooms"`
	Corridors []Corridor `json:"corridors"`
}

// NewDocument converts a dungeon to its JSON form
func NewDocument(d *generator.Dungeon) (Document, error) {
	var buf bytes.Buffer
	if err := devtools.WriteMap(&buf, d.Grid); err != nil {
		return Document{}, err
	}
	rows := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))

	doc := Document{
		Stats:     toStats(d),
		Rows:      make([]string, len(rows)),
		Rooms:     make([]Room, len(d.Rooms)),
		Corridors: make([]Corridor, len(d.Corridors)),
	}
	for i, row := range rows {
		doc.Rows[i] = string(row)
	}
	for i, r := range d.Rooms {
		doc.Rooms[i] = toRoom(r)
	}
	for i, c := range d.Corridors {
		doc.Corridors[i] = toCorridor(c)
	}
	return doc, nil
}

// Message is one websocket frame of a generation stream
type Message struct {
	Type  string  `json:"type"`
	Step  int     `json:"step,omitempty"`
	Kind  string  `json:"kind,omitempty"`
	Cells []Point `json:"cells,omitempty"`
	Stats *Stats  `json:"stats,omitempty"`
	Error string  `json:"error,omitempty"`
}

func featureMessage(e generator.Event) Message {
	return Message{
		Type:  MsgFeature,
		Step:  e.Step,
		Kind:  string(e.Kind),
		Cells: toPoints(e.Cells),
	}
}
