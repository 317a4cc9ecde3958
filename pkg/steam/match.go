// Steamscope
// Copyright (c) 2026 The Steamscope Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Steamscope.
//
// Steamscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Steamscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Steamscope.  If not, see <http://www.gnu.org/licenses/>.

package steam

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// GameMatch is an installed game that matched a name query, with its
// similarity score.
type GameMatch struct {
	Game       InstalledGame
	Similarity float32
}

// FindGames returns installed games whose names fuzzy match the query
// using Jaro-Winkler similarity, which weights matching prefixes
// heavily. Users typically get the start of a title right, so prefix
// weighting ranks the intended game first. An exact name match scores
// 1.0 regardless of the threshold. Results are sorted best first.
func FindGames(query string, games []InstalledGame, maxDistance int, minSimilarity float32) []GameMatch {
	q := strings.ToLower(query)

	var matches []GameMatch
	for _, game := range games {
		name := strings.ToLower(game.Name)
		if name == q {
			matches = append(matches, GameMatch{Game: game, Similarity: 1.0})
			continue
		}

		// Length pre-filter: names differing by more than maxDistance
		// characters cannot score well enough to matter.
		lenDiff := len(q) - len(name)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxDistance {
			continue
		}

		similarity := edlib.JaroWinklerSimilarity(q, name)

		if similarity > 0.7 {
			log.Debug().
				Str("query", q).
				Str("candidate", name).
				Float32("similarity", similarity).
				Float32("minSimilarity", minSimilarity).
				Msg("fuzzy match candidate evaluation")
		}

		if similarity >= minSimilarity {
			matches = append(matches, GameMatch{Game: game, Similarity: similarity})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches
}

// RankByEditDistance re-ranks the top fuzzy matches by Damerau-
// Levenshtein distance, which counts transpositions as single edits.
// Jaro-Winkler alone ranks "crono tigger" style typos poorly; the edit
// distance pass puts the transposed title back on top.
func RankByEditDistance(query string, matches []GameMatch, topN int) []GameMatch {
	if len(matches) <= 1 {
		return matches
	}

	candidates := matches
	if topN > 0 && len(matches) > topN {
		candidates = matches[:topN]
	}

	type scored struct {
		match    GameMatch
		distance int
	}

	q := strings.ToLower(query)
	ranked := make([]scored, len(candidates))
	for i, candidate := range candidates {
		dist := edlib.DamerauLevenshteinDistance(q, strings.ToLower(candidate.Game.Name))
		ranked[i] = scored{match: candidate, distance: dist}
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	result := make([]GameMatch, len(ranked))
	for i, s := range ranked {
		result[i] = s.match
	}
	return result
}
