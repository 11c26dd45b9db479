package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gernest/bitkernel/internal/ledger"
)

// writeSVG renders a bar chart of mean nanoseconds per call by kernel,
// adapted from the teacher's tools/bench/main.go SVG renderer: the input
// here comes from the in-process ledger rather than stdin JSON, and there
// is one bar per kernel instead of one chart per named model.
func writeSVG(path string, recs *ledger.Records) error {
	totals := map[string]float64{}
	counts := map[string]int{}

	it := recs.Iterator()
	for {
		_, rec, ok := it.Next()
		if !ok {
			break
		}
		totals[rec.Key.Kernel] += rec.NanosPerOp
		counts[rec.Key.Kernel]++
	}

	var entries []svgEntry
	for name, total := range totals {
		entries = append(entries, svgEntry{name: name, value: total / float64(counts[name])})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].value > entries[j].value })

	return os.WriteFile(path, []byte(renderSVG(entries)), 0600)
}

type svgEntry struct {
	name  string
	value float64
}

func renderSVG(entries []svgEntry) string {
	var mx float64
	for _, e := range entries {
		mx = max(mx, e.value)
	}
	topMargin := 20.0
	leftWidth := 160.0
	barHeight := 20.0
	barMargin := 3.0
	labelMargin := 8.0
	bottomHeight := 30.0
	rightWidth := 800 - leftWidth
	topHeight := float64(len(entries)) * barHeight
	width := leftWidth + rightWidth
	height := topMargin + topHeight + bottomHeight
	horizontalScale := rightWidth / mx
	if mx == 0 {
		horizontalScale = 0
	}

	var svg []string
	svg = append(svg,
		fmt.Sprintf(`<svg width="%v" height="%v" fill="black" font-family="sans-serif" font-size="13px" xmlns="http://www.w3.org/2000/svg">`, width, height),
	)

	for i, e := range entries {
		name, val := e.name, e.value
		y := topMargin + barHeight*float64(i)
		w := val * horizontalScale

		h := barHeight
		barY := y + barMargin
		barH := h - 2*barMargin
		svg = append(svg, fmt.Sprintf(`  <rect x="%v" y="%v" width="%v" height="%v" fill="#FFCF00"/>`, leftWidth, barY, w, barH))
		svg = append(svg, fmt.Sprintf(`  <text x="%v" y="%v" text-anchor="end" dominant-baseline="middle">%v</text>`,
			leftWidth-labelMargin, y+h/2, name))
		svg = append(svg, fmt.Sprintf(`  <text x="%v" y="%v" dominant-baseline="middle">%.1fns/op</text>`,
			leftWidth+labelMargin+w, y+h/2, val))
	}
	svg = append(svg, `</svg>`)
	return strings.Join(svg, "\n")
}
