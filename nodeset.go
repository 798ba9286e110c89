/*
 * nodeset.go, part of goffea.
 *
 * Copyright 2026 The goffea developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ffea

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// NodeSets is a LinearNoder that simply stores the linear node indexes of each
// blob and conformation, keyed by {blob, conformation}.
type NodeSets map[[2]int][]int

// LinearNodes returns the stored nodes for conformation c of blob b.
func (N NodeSets) LinearNodes(b, c int) ([]int, error) {
	nodes, ok := N[[2]int{b, c}]
	if !ok {
		return nil, &ModelError{fmt.Sprintf("no linear nodes for blob %d conformation %d", b, c), []string{"LinearNodes"}}
	}
	return nodes, nil
}

// ReadNodeSets reads node sets from r. Each non-empty line that does not start with
// '#' has the form "blob conformation node node ...". Lines for the same blob and
// conformation are merged. The nodes of each set are sorted and made unique.
func ReadNodeSets(r io.Reader) (NodeSets, error) {
	N := make(NodeSets)
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &ModelError{fmt.Sprintf("line %d: expected 'blob conformation node node ...', got '%s'", lineno, line), []string{"ReadNodeSets"}}
		}
		ints := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, &ModelError{fmt.Sprintf("line %d: '%s' is not a valid index", lineno, f), []string{"ReadNodeSets"}}
			}
			ints[i] = v
		}
		key := [2]int{ints[0], ints[1]}
		N[key] = append(N[key], ints[2:]...)
	}
	if err := s.Err(); err != nil {
		return nil, &ModelError{err.Error(), []string{"ReadNodeSets"}}
	}
	for k, v := range N {
		sort.Ints(v)
		uniq := v[:0]
		for i, n := range v {
			if i == 0 || n != v[i-1] {
				uniq = append(uniq, n)
			}
		}
		N[k] = uniq
	}
	return N, nil
}
