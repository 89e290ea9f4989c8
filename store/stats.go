package store

import "sync/atomic"

// Stats counts one collection's operations. Counters are atomic so the
// stats view never has to take the collection lock.
type Stats struct {
	inserts    uint64
	duplicates uint64
	searches   uint64
	hits       uint64
	updates    uint64
	deletes    uint64
	bloomSkips uint64
}

func (s *Stats) recordInsert()    { atomic.AddUint64(&s.inserts, 1) }
func (s *Stats) recordDuplicate() { atomic.AddUint64(&s.duplicates, 1) }
func (s *Stats) recordSearch()    { atomic.AddUint64(&s.searches, 1) }
func (s *Stats) recordHit()       { atomic.AddUint64(&s.hits, 1) }
func (s *Stats) recordUpdate()    { atomic.AddUint64(&s.updates, 1) }
func (s *Stats) recordDelete()    { atomic.AddUint64(&s.deletes, 1) }
func (s *Stats) recordBloomSkip() { atomic.AddUint64(&s.bloomSkips, 1) }

// Snapshot is a point-in-time copy of the counters. Inserts counts new
// nodes only; Duplicates counts insert calls that hit an existing key,
// whether the policy ignored or replaced it.
type Snapshot struct {
	Inserts    uint64
	Duplicates uint64
	Searches   uint64
	Hits       uint64
	Updates    uint64
	Deletes    uint64
	BloomSkips uint64
}

// Snapshot copies the counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Inserts:    atomic.LoadUint64(&s.inserts),
		Duplicates: atomic.LoadUint64(&s.duplicates),
		Searches:   atomic.LoadUint64(&s.searches),
		Hits:       atomic.LoadUint64(&s.hits),
		Updates:    atomic.LoadUint64(&s.updates),
		Deletes:    atomic.LoadUint64(&s.deletes),
		BloomSkips: atomic.LoadUint64(&s.bloomSkips),
	}
}

// HitRatio returns hits per search, 0 when nothing was searched yet.
func (sn Snapshot) HitRatio() float64 {
	if sn.Searches == 0 {
		return 0
	}
	return float64(sn.Hits) / float64(sn.Searches)
}
