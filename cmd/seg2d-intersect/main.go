package main

// See doc.go for documentation
import (
	"flag"
	"time"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/seg2d/segio"
	"github.com/grailbio/seg2d/segment"
	"github.com/grailbio/seg2d/segsimd"
)

var (
	barriersPath = flag.String("barriers", "barriers.txt", "Barrier segment file")
	queriesPath  = flag.String("queries", "queries.txt", "Query segment file")
	benchIters   = flag.Int("bench-iters", 0, "If positive, number of timed passes over the query set")
	parallelism  = flag.Int("parallelism", 1, "Number of goroutines for the batched scan")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	barriers, err := segio.ReadSegments(*barriersPath)
	if err != nil {
		log.Fatalf("loading %s: %v", *barriersPath, err)
	}
	queries, err := segio.ReadSegments(*queriesPath)
	if err != nil {
		log.Fatalf("loading %s: %v", *queriesPath, err)
	}

	state := segsimd.LoadPrequery(barriers)
	scalarPass := segment.CountMisses(barriers, queries)
	chunkPass := state.CountMisses(queries)
	log.Printf("%d %d", scalarPass, chunkPass)
	if scalarPass != chunkPass {
		log.Fatalf("scalar/prequery disagreement: %d != %d", scalarPass, chunkPass)
	}

	if *benchIters > 0 {
		results := make([]byte, len(queries))
		start := time.Now()
		for i := 0; i < *benchIters; i++ {
			if *parallelism > 1 {
				state.QueryParallel(queries, results, *parallelism)
			} else {
				state.Query(queries, results)
			}
		}
		elapsed := time.Since(start)
		log.Printf("%v total, %v per pass, %d queries x %d barriers",
			elapsed, elapsed/time.Duration(*benchIters), len(queries), len(barriers))
	}
}
