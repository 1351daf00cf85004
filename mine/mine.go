package mine

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"math"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/cspan/closure"
	"github.com/timtadh/cspan/config"
	"github.com/timtadh/cspan/stats"
	"github.com/timtadh/cspan/trie"
	"github.com/timtadh/cspan/types/sequence"
)

// Miner finds the contiguous sequential patterns of a database level by
// level. Each call builds a fresh trie; a Miner may be reused but the tries
// it returns are never shared between calls.
type Miner struct {
	Config *config.Config
	Policy closure.Policy
}

func NewMiner(conf *config.Config, policy closure.Policy) *Miner {
	return &Miner{
		Config: conf,
		Policy: policy,
	}
}

func validate(db []sequence.Sequence, support float64) error {
	if len(db) == 0 {
		return &InvalidInput{"cannot mine patterns from an empty sequence database"}
	}
	if math.IsNaN(support) || support < 0 || support > 1 {
		return &InvalidInput{"support must be in the range [0,1]"}
	}
	return nil
}

// Trie mines db at the relative support and returns the populated index.
// The closed marks in the trie are the policy's output.
func (m *Miner) Trie(db []sequence.Sequence, support float64) (*trie.Trie, error) {
	if err := validate(db, support); err != nil {
		return nil, err
	}
	minSup := stats.MinSupport(len(db), support)
	errors.Logf("DEBUG", "mining %d sequences, min support %d, policy %v", len(db), minSup, m.Policy)
	t := trie.New()
	k := 1
	for m.level(t, k, minSup, db) > 0 {
		k++
	}
	errors.Logf("DEBUG", "stopped at level %d with %d trie nodes", k, t.Size())
	return t, nil
}

// Patterns mines db and lists the marked patterns in lexicographic order.
func (m *Miner) Patterns(db []sequence.Sequence, support float64) ([]*sequence.Pattern, error) {
	t, err := m.Trie(db, support)
	if err != nil {
		return nil, err
	}
	return t.Patterns(true), nil
}

// Mine mines db at the configured support and hands every pattern to rptr.
// The reporter is not closed.
func (m *Miner) Mine(db []sequence.Sequence, rptr Reporter) error {
	errors.Logf("INFO", "about to mine %d sequences at support %v", len(db), m.Config.Support)
	t, err := m.Trie(db, m.Config.Support)
	if err != nil {
		return err
	}
	count := 0
	for e, next := t.Iterate(true)(); next != nil; e, next = next() {
		if err := rptr.Report(e.Pattern()); err != nil {
			return err
		}
		count++
	}
	errors.Logf("INFO", "reported %d patterns", count)
	return nil
}

// level inserts every length-k window whose prefix and suffix are already
// in the trie, counting each window at most once per sequence, then finalizes the
// distinct candidates. It returns how many met the support.
func (m *Miner) level(t *trie.Trie, k, minSup int, db []sequence.Sequence) int {
	candidates := set.NewSortedSet(100)
	for _, seq := range db {
		if len(seq) < k {
			continue
		}
		for w, next := sequence.Windows(k, seq)(); next != nil; w, next = next() {
			if k > 1 && !(t.Count(w[:k-1]) > 0 && t.Count(w[1:]) > 0) {
				continue
			}
			if n, first := t.Insert(w); first {
				candidates.Add(types.Int(n))
			}
		}
		t.UnlockAll()
	}
	survived := 0
	for item, next := candidates.Items()(); next != nil; item, next = next() {
		n := trie.NodeId(item.(types.Int))
		if t.SupersedeNode(n, t.Path(n), minSup, m.Policy) {
			survived++
		}
	}
	errors.Logf("DEBUG", "level %d: %d candidates, %d frequent", k, candidates.Size(), survived)
	return survived
}
