// Package verify classifies every unitig of a store against a membership
// oracle, in either orientation, using a fixed pool of workers.
//
// Worker k of W handles indices k, k+W, k+2W, ... so each unitig's
// classification is independent of worker count and scheduling. Workers
// share only atomic counters and one append-only missing buffer.
package verify

import (
	"slices"
	"sync"
	"sync/atomic"

	"unitig-core/canon"
	"unitig-core/oracle"
)

// DefaultWorkers is the pool width used when the caller has no preference.
const DefaultWorkers = 32

// DefaultProgressInterval is the found-count step between progress calls.
const DefaultProgressInterval = 100000

// Source is the read-only view of the unitig set the engine needs.
type Source interface {
	Len() int
	Get(i int) []byte
}

// Config controls a verification run.
type Config struct {
	Workers          int    // pool width (>=1)
	ProgressInterval uint64 // 0 disables Progress calls

	// Progress is called whenever the found counter reaches a multiple of
	// ProgressInterval. Calls may come from any worker, in any order.
	Progress func(found uint64)
	// Tick is called once per classified unitig, from the classifying worker.
	Tick func()
}

// Engine runs verification passes with a fixed configuration.
type Engine struct {
	cfg Config
}

// New creates an Engine.
func New(c Config) *Engine {
	if c.Workers < 1 {
		c.Workers = 1
	}
	return &Engine{cfg: c}
}

// Workers returns the effective pool width.
func (e *Engine) Workers() int { return e.cfg.Workers }

type run struct {
	src    Source
	oracle oracle.Oracle
	cfg    Config

	found   atomic.Uint64
	foundRC atomic.Uint64
	missed  atomic.Uint64
	cursor  atomic.Int64
	missing []int
	classes []Class
}

// Run classifies every unitig of src against o and returns once all
// workers have finished. It never stops early.
func (e *Engine) Run(src Source, o oracle.Oracle) *Result {
	n := src.Len()
	r := &run{
		src:     src,
		oracle:  o,
		cfg:     e.cfg,
		missing: make([]int, n),
		classes: make([]Class, n),
	}

	workers := e.cfg.Workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for k := 0; k < workers; k++ {
		go func(offset int) {
			defer wg.Done()
			r.work(offset, workers)
		}(k)
	}
	wg.Wait()

	missing := r.missing[:r.cursor.Load()]
	slices.Sort(missing)
	return &Result{
		Total:                    n,
		Found:                    int(r.found.Load()),
		FoundByReverseComplement: int(r.foundRC.Load()),
		NotFound:                 int(r.missed.Load()),
		Missing:                  missing,
		classes:                  r.classes,
	}
}

func (r *run) work(offset, stride int) {
	var rc []byte // per-worker scratch
	n := r.src.Len()
	for i := offset; i < n; i += stride {
		var c Class
		c, rc = r.classify(i, rc)
		r.classes[i] = c
		if r.cfg.Tick != nil {
			r.cfg.Tick()
		}
	}
}

func (r *run) classify(i int, rc []byte) (Class, []byte) {
	seq := r.src.Get(i)
	if oracle.Occurs(r.oracle, seq) {
		r.markFound()
		return FoundDirect, rc
	}
	rc = canon.ReverseComplementInto(rc, seq)
	if oracle.Occurs(r.oracle, rc) {
		r.foundRC.Add(1)
		r.markFound()
		return FoundReverseComplement, rc
	}
	r.missed.Add(1)
	slot := r.cursor.Add(1) - 1
	r.missing[slot] = i
	return NotFound, rc
}

func (r *run) markFound() {
	total := r.found.Add(1)
	if iv := r.cfg.ProgressInterval; iv > 0 && r.cfg.Progress != nil && total%iv == 0 {
		r.cfg.Progress(total)
	}
}
