package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/anchorage/internal/model"
)

type point struct{ X, Y float64 }

// segment is a line between two points, used for chaining disconnected
// LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// box is an axis-aligned rectangle recovered from the drawing, with the
// designation of the text placed inside it.
type box struct {
	minX, minY, maxX, maxY float64
	designation            string
}

func (b box) width() float64  { return b.maxX - b.minX }
func (b box) height() float64 { return b.maxY - b.minY }
func (b box) area() float64   { return b.width() * b.height() }

func (b box) contains(p point) bool {
	return p.X >= b.minX && p.X <= b.maxX && p.Y >= b.minY && p.Y <= b.maxY
}

func (b box) encloses(o box) bool {
	return o.minX >= b.minX && o.maxX <= b.maxX && o.minY >= b.minY && o.maxY <= b.maxY
}

// ImportDXF builds fleets from a DXF drawing in ship units. Every closed
// axis-aligned rectangle (LWPOLYLINE or chain of LINEs) is one vessel; a
// TEXT entity inside it names the designation. Vessels of the same
// designation and size form one fleet. A rectangle enclosing all others
// is taken as the anchorage.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment
	var labels []*entity.Text

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := make([]point, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				outline = append(outline, point{X: v[0], Y: v[1]})
			}
			outlines = append(outlines, outline)

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})

		case *entity.Text:
			labels = append(labels, e)

		default:
			// Other entity types carry nothing we can place
		}
	}
	outlines = append(outlines, chainSegments(segments, 0.01)...)

	var boxes []box
	for _, outline := range outlines {
		b, ok := outlineToBox(outline, 0.01)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped non-rectangular shape with %d vertices", len(outline)))
			continue
		}
		boxes = append(boxes, b)
	}

	if len(boxes) == 0 {
		result.Errors = append(result.Errors, "No rectangles found in DXF file")
		return result
	}

	// Largest first so the anchorage candidate is boxes[0]
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].area() > boxes[j].area()
	})
	if len(boxes) > 1 && enclosesAll(boxes[0], boxes[1:]) {
		result.Anchorage = &model.Anchorage{
			Width:  math.Round(boxes[0].width()),
			Height: math.Round(boxes[0].height()),
		}
		boxes = boxes[1:]
	}

	// Smallest enclosing box claims a label
	for _, lbl := range labels {
		if len(lbl.Coord1) < 2 {
			continue
		}
		p := point{X: lbl.Coord1[0], Y: lbl.Coord1[1]}
		for i := len(boxes) - 1; i >= 0; i-- {
			if boxes[i].designation == "" && boxes[i].contains(p) {
				boxes[i].designation = lbl.Value
				break
			}
		}
	}

	result.Fleets = groupBoxes(boxes, &result)
	return result
}

func enclosesAll(outer box, inner []box) bool {
	for _, b := range inner {
		if !outer.encloses(b) {
			return false
		}
	}
	return true
}

// groupBoxes turns rectangles into fleets keyed by designation and size,
// in order of first appearance.
func groupBoxes(boxes []box, result *ImportResult) []model.Fleet {
	type key struct {
		designation string
		w, h        int
	}
	index := make(map[key]int)
	var fleets []model.Fleet

	for _, b := range boxes {
		w, h := int(math.Round(b.width())), int(math.Round(b.height()))
		if w < 1 || h < 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped rectangle smaller than one unit (%.2f x %.2f)", b.width(), b.height()))
			continue
		}
		if math.Abs(b.width()-float64(w)) > 0.01 || math.Abs(b.height()-float64(h)) > 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Rounded %.2f x %.2f to %d x %d units", b.width(), b.height(), w, h))
		}

		k := key{designation: b.designation, w: w, h: h}
		if i, ok := index[k]; ok {
			fleets[i].Count++
			continue
		}
		index[k] = len(fleets)
		fleets = append(fleets, model.Fleet{
			Designation: b.designation,
			Count:       1,
			Dimensions:  model.Dimensions{Width: w, Height: h},
		})
	}
	return fleets
}

// outlineToBox accepts four distinct corners forming an axis-aligned
// rectangle. A repeated closing vertex is tolerated.
func outlineToBox(outline []point, tolerance float64) (box, bool) {
	if len(outline) == 5 && pointsClose(outline[0], outline[4], tolerance) {
		outline = outline[:4]
	}
	if len(outline) != 4 {
		return box{}, false
	}

	b := box{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
	for _, p := range outline {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	for _, p := range outline {
		onX := math.Abs(p.X-b.minX) <= tolerance || math.Abs(p.X-b.maxX) <= tolerance
		onY := math.Abs(p.Y-b.minY) <= tolerance || math.Abs(p.Y-b.maxY) <= tolerance
		if !onX || !onY {
			return box{}, false
		}
	}
	// Consecutive corners must share an axis, otherwise the polygon crosses itself
	for i := range outline {
		a, c := outline[i], outline[(i+1)%4]
		if math.Abs(a.X-c.X) > tolerance && math.Abs(a.Y-c.Y) > tolerance {
			return box{}, false
		}
	}
	if b.width() <= tolerance || b.height() <= tolerance {
		return box{}, false
	}
	return b, true
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 3 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			chain = chain[:len(chain)-1]
		}
		if len(chain) >= 3 {
			outlines = append(outlines, chain)
		}
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}
