// Command verify runs one self-contained proof round trip: it builds a
// random table, produces a reference proof, and verifies it, reporting
// timings. Useful as a smoke test and as a quick latency probe.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"sumcheck-verifier/prof"
	"sumcheck-verifier/verifier"
)

func randomElems(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		if _, err := out[i].SetRandom(); err != nil {
			log.Fatalf("sample field element: %v", err)
		}
	}
	return out
}

func main() {
	tableLen := flag.Uint64("table", 1024, "table length (power of two)")
	firstRound := flag.Int("first", 4, "first-round MLE count")
	finalRound := flag.Int("final", 8, "final-round MLE count")
	chi := flag.Int("chi", 2, "chi-evaluation count")
	rho := flag.Int("rho", 2, "rho-evaluation count")
	runs := flag.Int("runs", 10, "verification runs")
	flag.Parse()

	if *tableLen < 2 || *tableLen&(*tableLen-1) != 0 {
		log.Fatalf("table length must be a power of two >= 2, got %d", *tableLen)
	}

	q := verifier.Query{
		TableLength:     *tableLen,
		FirstRoundCount: *firstRound,
		FinalRoundCount: *finalRound,
		ChiCount:        *chi,
		RhoCount:        *rho,
	}
	open := verifier.Openings{
		FirstRoundMLEs: randomElems(*firstRound),
		FinalRoundMLEs: randomElems(*finalRound),
		ChiEvaluations: randomElems(*chi),
		RhoEvaluations: randomElems(*rho),
	}
	evals := randomElems(int(*tableLen))

	proveStart := time.Now()
	proof := verifier.Prove(q, evals, open)
	prof.Track(proveStart, "prove")

	var arena verifier.Arena
	for i := 0; i < *runs; i++ {
		start := time.Now()
		if err := verifier.Verify(&arena, q, proof, nil); err != nil {
			log.Fatalf("run %d: %v", i, err)
		}
		prof.Track(start, "verify")
	}
	arena.Reset()

	fmt.Printf("table=%d rounds=%d first=%d final=%d chi=%d rho=%d\n",
		q.TableLength, q.Rounds(), q.FirstRoundCount, q.FinalRoundCount, q.ChiCount, q.RhoCount)
	for _, s := range prof.SnapshotAndReset() {
		fmt.Printf("%-8s n=%-4d mean=%v min=%v max=%v\n", s.Label, s.Count, s.Mean(), s.Min, s.Max)
	}
}
