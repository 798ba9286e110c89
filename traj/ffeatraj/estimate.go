/*
 * estimate.go, part of goffea.
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

package ffeatraj

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// formatLine is the 0-based index of the line that tells OLD from NEW files.
const formatLine = 4

// starCounter counts the lines that are just a '*', and remembers whether
// the header looked like a NEW or an OLD trajectory.
type starCounter struct {
	lines    int
	stars    int
	old      bool
	lastStar bool //the last non-blank line was a '*'
}

func (s *starCounter) add(line []byte) {
	line = bytes.TrimSpace(line)
	if s.lines == formatLine {
		s.old = !bytes.HasPrefix(line, []byte("Number"))
	}
	s.lines++
	if len(line) == 0 {
		return
	}
	s.lastStar = len(line) == 1 && line[0] == '*'
	if s.lastStar {
		s.stars++
	}
}

// frames returns the number of frames. The header has one '*'; each frame
// has two in NEW files, and one in OLD files. The last frame of an OLD
// file may lack its '*'.
func (s *starCounter) frames() int {
	if s.stars < 1 {
		return 0
	}
	if s.old {
		if !s.lastStar {
			return s.stars
		}
		return s.stars - 1
	}
	return (s.stars - 1) / 2
}

// EstimateFrames counts the frames in a trajectory file without decoding them.
// The file structure is not checked. Uncompressed files are memory-mapped.
func EstimateFrames(filename string) (int, error) {
	if CompressionFor(filename) != Plain {
		f, err := Open(filename)
		if err != nil {
			return 0, errDecorate(err, "EstimateFrames")
		}
		defer f.Close()
		n, err := EstimateFramesReader(f)
		if err != nil {
			return 0, &IOError{err, filename, []string{"EstimateFrames"}}
		}
		return n, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return 0, &IOError{err, filename, []string{"EstimateFrames"}}
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return 0, &IOError{err, filename, []string{"EstimateFrames"}}
	}
	if info.Size() == 0 {
		return 0, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return 0, &IOError{err, filename, []string{"mmap.Map", "EstimateFrames"}}
	}
	defer m.Unmap()
	var s starCounter
	data := []byte(m)
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			s.add(data)
			break
		}
		s.add(data[:i])
		data = data[i+1:]
	}
	return s.frames(), nil
}

// EstimateFramesReader is EstimateFrames for an already open, uncompressed stream.
func EstimateFramesReader(r io.Reader) (int, error) {
	var s starCounter
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			//a long line can't be a '*', but it still counts as a line.
			s.add(line)
			for err == bufio.ErrBufferFull {
				_, err = br.ReadSlice('\n')
			}
			if err == io.EOF {
				break
			} else if err != nil {
				return 0, err
			}
			continue
		}
		if len(line) > 0 {
			s.add(line)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
	}
	return s.frames(), nil
}
