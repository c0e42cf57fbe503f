//go:build analysis

// Command analysis sweeps proof verification across table sizes, collects
// per-run latencies, and renders an HTML report of charts plus a JSON stats
// dump.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sumcheck-verifier/verifier"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// ------------------------------ stats utilities ------------------------------

func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var s2 float64
	for _, v := range x {
		d := v - m
		s2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(s2 / float64(n-1))
	}
	return summaryStats{
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    cp[0],
		Median: quantileSorted(cp, 0.5),
		Max:    cp[n-1],
	}
}

// ------------------------------ charts ------------------------------

func toLineItems(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func newLatencyChart(title string, labels []string, mean, median []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "microseconds per verification"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels).
		AddSeries("mean", toLineItems(mean)).
		AddSeries("median", toLineItems(median))
	return line
}

// ------------------------------ JSON and I/O ------------------------------

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ------------------------------ sweep ------------------------------

func randomElems(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		if _, err := out[i].SetRandom(); err != nil {
			log.Fatalf("sample field element: %v", err)
		}
	}
	return out
}

func sweepSize(tableLen uint64, runs int) []float64 {
	q := verifier.Query{
		TableLength:     tableLen,
		FirstRoundCount: 4,
		FinalRoundCount: 8,
		ChiCount:        2,
		RhoCount:        2,
	}
	open := verifier.Openings{
		FirstRoundMLEs: randomElems(q.FirstRoundCount),
		FinalRoundMLEs: randomElems(q.FinalRoundCount),
		ChiEvaluations: randomElems(q.ChiCount),
		RhoEvaluations: randomElems(q.RhoCount),
	}
	proof := verifier.Prove(q, randomElems(int(tableLen)), open)

	var arena verifier.Arena
	lat := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		if err := verifier.Verify(&arena, q, proof, nil); err != nil {
			log.Fatalf("table=%d run=%d: %v", tableLen, i, err)
		}
		lat = append(lat, float64(time.Since(start).Nanoseconds())/1e3)
	}
	arena.Reset()
	return lat
}

func main() {
	runs := flag.Int("runs", 50, "verification runs per table size")
	minExp := flag.Int("min", 4, "smallest table size exponent (table = 2^min)")
	maxExp := flag.Int("max", 16, "largest table size exponent")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	if *minExp < 1 || *maxExp < *minExp || *maxExp > 30 {
		log.Fatalf("bad exponent range [%d, %d]", *minExp, *maxExp)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	labels := make([]string, 0, *maxExp-*minExp+1)
	means := make([]float64, 0, *maxExp-*minExp+1)
	medians := make([]float64, 0, *maxExp-*minExp+1)
	outStats := map[string]summaryStats{}
	for e := *minExp; e <= *maxExp; e++ {
		tableLen := uint64(1) << e
		lat := sweepSize(tableLen, *runs)
		st := computeStats(lat)
		key := fmt.Sprintf("table_%d", tableLen)
		outStats[key] = st
		labels = append(labels, fmt.Sprintf("2^%d", e))
		means = append(means, st.Mean)
		medians = append(medians, st.Median)
		fmt.Printf("table=2^%-2d mean=%.1fus median=%.1fus std=%.1fus\n", e, st.Mean, st.Median, st.Std)
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("verify_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(newLatencyChart("verification latency by table size", labels, means, medians))

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("verify_latency_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Latency page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
