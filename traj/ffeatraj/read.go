/*
 * read.go, part of goffea.
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
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	ffea "github.com/ffea/goffea"
	v3 "github.com/ffea/goffea/v3"
)

const (
	fileTag        = "FFEA_trajectory_file"
	initTag        = "Initialisation:"
	separator      = "*"
	confChangesTag = "Conformation changes:"
	staticTag      = "STATIC"
	dynamicTag     = "DYNAMIC"
	progressEvery  = 100
)

// Options control how a trajectory is read.
type Options struct {
	//MaxFrames bounds the read. As in the FFEA python tools, the first
	//frame is not counted, so up to MaxFrames+1 frames are scanned.
	//0 or less means no bound.
	MaxFrames int
	//FrameRate keeps one of every FrameRate frames, starting with the first.
	//Values below 1 are taken as 1.
	FrameRate int
	//Logger gets progress messages. nil means silence.
	Logger *log.Logger
}

// ReadFile reads the whole trajectory in filename, decompressing it
// if its extension asks for it. opts can be nil.
// If the file can't be opened or read, it returns a nil trajectory and an
// *IOError. If the file is malformed, it returns an empty trajectory and a
// *FormatError.
func ReadFile(filename string, opts *Options) (*ffea.Trajectory, error) {
	f, err := Open(filename)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer f.Close()
	T, err := Read(f, filename, opts)
	if err != nil {
		err = errDecorate(err, "ReadFile")
	}
	return T, err
}

// Read reads a trajectory from r. filename is only used in messages.
// Errors are as in ReadFile.
func Read(r io.Reader, filename string, opts *Options) (*ffea.Trajectory, error) {
	p := &parser{lr: newLineReader(r, filename), rate: 1}
	if opts != nil {
		p.max = opts.MaxFrames
		if opts.FrameRate > 1 {
			p.rate = opts.FrameRate
		}
		p.log = opts.Logger
	}
	T, err := p.parse()
	if err != nil {
		var ioerr *IOError
		if errors.As(err, &ioerr) {
			return nil, errDecorate(err, "Read")
		}
		return new(ffea.Trajectory), errDecorate(err, "Read")
	}
	return T, nil
}

// parser holds what is needed while reading one file. The format is
// decided once, from the header, and does not change afterwards.
type parser struct {
	lr     *lineReader
	max    int
	rate   int
	log    *log.Logger
	format ffea.Format
	nodes  [][]int
}

func (p *parser) logf(format string, v ...interface{}) {
	if p.log != nil {
		p.log.Printf(format, v...)
	}
}

// expect reads a line and checks that, once trimmed, it equals want.
func (p *parser) expect(want, caller string) error {
	line, err := p.lr.next()
	if err == io.EOF {
		return p.lr.truncated("'"+want+"'", caller)
	} else if err != nil {
		return err
	}
	if strings.TrimSpace(line) != want {
		return p.lr.formatError("'"+want+"'", line, caller)
	}
	return nil
}

// nextFields reads a line and splits it in fields. EOF is reported as a
// truncation, expecting what.
func (p *parser) nextFields(what, caller string) (string, []string, error) {
	line, err := p.lr.next()
	if err == io.EOF {
		return "", nil, p.lr.truncated(what, caller)
	} else if err != nil {
		return "", nil, err
	}
	return line, strings.Fields(line), nil
}

func positiveInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func (p *parser) parse() (*ffea.Trajectory, error) {
	if err := p.header(); err != nil {
		return nil, errDecorate(err, "parse")
	}
	T, err := ffea.NewFormat(p.format, p.nodes)
	if err != nil {
		return nil, err
	}
	p.logf("Reading FFEA trajectory %s (%s format)", p.lr.filename, p.format)
	limit := -1
	if p.max > 0 {
		limit = p.max + 1 //the first frame doesn't count.
	}
	active := make([]int, len(p.nodes))
	for limit < 0 || T.Len()+T.Skipped() < limit {
		if (T.Len()+T.Skipped())%p.rate != 0 {
			done, err := p.skipFrame(active)
			if err != nil {
				return nil, errDecorate(err, "parse")
			}
			if done {
				break
			}
			T.SkipFrame()
			continue
		}
		frames, done, err := p.readFrame(active)
		if err != nil {
			return nil, errDecorate(err, "parse")
		}
		if done {
			break
		}
		if err := T.AppendFrame(active, frames); err != nil {
			return nil, errDecorate(err, "parse")
		}
		eof, err := p.endFrame(active)
		if err != nil {
			return nil, errDecorate(err, "parse")
		}
		if T.Len()%progressEvery == 0 {
			if limit > 0 {
				p.logf("\tRead %d frames out of %d", T.Len(), limit)
			} else {
				p.logf("\tRead %d frames", T.Len())
			}
		}
		if eof {
			break
		}
	}
	p.logf("...done! Read %d frames. Skipped %d frames. Total frames parsed = %d", T.Len(), T.Skipped(), T.Len()+T.Skipped())
	return T, nil
}

// header reads everything up to and including the '*' that opens the first
// frame, and sets the format and the node counts.
func (p *parser) header() error {
	if err := p.expect(fileTag, "header"); err != nil {
		return err
	}
	line, err := p.lr.next()
	if err == io.EOF {
		return p.lr.truncated("a blank line", "header")
	} else if err != nil {
		return err
	}
	if strings.TrimSpace(line) != "" {
		return p.lr.formatError("a blank line", line, "header")
	}
	if err := p.expect(initTag, "header"); err != nil {
		return err
	}
	const blobsShape = "'Number of Blobs %d'"
	line, f, err := p.nextFields(blobsShape, "header")
	if err != nil {
		return err
	}
	if len(f) < 4 || f[0] != "Number" || f[1] != "of" || f[2] != "Blobs" {
		return p.lr.formatError(blobsShape, line, "header")
	}
	nblobs, ok := positiveInt(f[3])
	if !ok {
		return p.lr.formatError(blobsShape, line, "header")
	}
	line, f, err = p.nextFields("'Number of Conformations %d ... %d' or 'Blob 0 Nodes %d ...'", "header")
	if err != nil {
		return err
	}
	if len(f) > 0 && f[0] == "Number" {
		p.format = ffea.FormatNew
		err = p.newHeader(nblobs, line, f)
	} else {
		p.format = ffea.FormatOld
		err = p.oldHeader(nblobs, line, f)
	}
	if err != nil {
		return err
	}
	//A blank line usually goes before the '*'
	line, err = p.lr.next()
	if err == io.EOF {
		return p.lr.truncated("'*' to begin the trajectory", "header")
	} else if err != nil {
		return err
	}
	if strings.TrimSpace(line) != "" {
		p.lr.unread()
	}
	if err := p.expect(separator, "header"); err != nil {
		return err
	}
	return nil
}

// oldHeader reads the node counts from a line like
// "Blob 0 Nodes %d Blob 1 Nodes %d ...". Every blob has one conformation.
func (p *parser) oldHeader(nblobs int, line string, f []string) error {
	const shape = "'Blob 0 Nodes %d Blob 1 Nodes %d ... Blob %d Nodes %d'"
	if len(f) < 4*nblobs {
		return p.lr.formatError(shape, line, "oldHeader")
	}
	p.nodes = make([][]int, nblobs)
	for i := 0; i < nblobs; i++ {
		if f[4*i] != "Blob" || f[4*i+1] != strconv.Itoa(i) || f[4*i+2] != "Nodes" {
			return p.lr.formatError(shape, line, "oldHeader")
		}
		n, ok := positiveInt(f[4*i+3])
		if !ok {
			return p.lr.formatError(shape, line, "oldHeader")
		}
		p.nodes[i] = []int{n}
	}
	return nil
}

// newHeader reads the conformation counts from the already-read line, and one
// line with the node counts of each conformation for every blob.
func (p *parser) newHeader(nblobs int, line string, f []string) error {
	const confShape = "'Number of Conformations %d %d ... %d'"
	if len(f) < 3+nblobs || f[1] != "of" || f[2] != "Conformations" {
		return p.lr.formatError(confShape, line, "newHeader")
	}
	p.nodes = make([][]int, nblobs)
	for i := range p.nodes {
		nconf, ok := positiveInt(f[3+i])
		if !ok {
			return p.lr.formatError(confShape, line, "newHeader")
		}
		p.nodes[i] = make([]int, nconf)
	}
	for i := range p.nodes {
		shape := fmt.Sprintf("'Blob %d:\tConformation 0 Nodes %%d ... Conformation %d Nodes %%d'", i, len(p.nodes[i])-1)
		line, f, err := p.nextFields(shape, "newHeader")
		if err != nil {
			return err
		}
		if len(f) < 2+4*len(p.nodes[i]) || f[0] != "Blob" || f[1] != strconv.Itoa(i)+":" {
			return p.lr.formatError(shape, line, "newHeader")
		}
		for j := range p.nodes[i] {
			if f[2+4*j] != "Conformation" || f[3+4*j] != strconv.Itoa(j) || f[4+4*j] != "Nodes" {
				return p.lr.formatError(shape, line, "newHeader")
			}
			n, ok := positiveInt(f[5+4*j])
			if !ok {
				return p.lr.formatError(shape, line, "newHeader")
			}
			p.nodes[i][j] = n
		}
	}
	return nil
}

// tag parses a line like "Blob 0, Conformation 0, step 100" and returns the
// step. The conformation is only checked for NEW trajectories.
func (p *parser) tag(line string, blob, conf int) (int, error) {
	shape := fmt.Sprintf("'Blob %d, Conformation %d, step %%d'", blob, conf)
	f := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(f) < 2 || f[0] != "Blob" || f[1] != strconv.Itoa(blob) {
		return 0, p.lr.formatError(shape, line, "tag")
	}
	if p.format == ffea.FormatNew {
		if len(f) < 4 || f[2] != "Conformation" || f[3] != strconv.Itoa(conf) {
			return 0, p.lr.formatError(shape, line, "tag")
		}
	}
	step := 0
	for i, v := range f {
		if v != "step" {
			continue
		}
		if i+1 >= len(f) {
			return 0, p.lr.formatError(shape, line, "tag")
		}
		s, err := strconv.Atoi(f[i+1])
		if err != nil {
			return 0, p.lr.formatError(shape, line, "tag")
		}
		step = s
		break
	}
	return step, nil
}

// readFrame reads the positions of every blob for one frame. It returns done
// if the file ends cleanly before the frame starts. A nil frame means that
// the blob was STATIC.
func (p *parser) readFrame(active []int) ([]*ffea.Frame, bool, error) {
	frames := make([]*ffea.Frame, len(p.nodes))
	for b := range p.nodes {
		line, err := p.lr.next()
		//blank lines between frames are tolerated.
		for b == 0 && err == nil && strings.TrimSpace(line) == "" {
			line, err = p.lr.next()
		}
		if err == io.EOF {
			if b == 0 {
				return nil, true, nil
			}
			return nil, false, p.lr.truncated(fmt.Sprintf("'Blob %d, Conformation %d, step %%d'", b, active[b]), "readFrame")
		} else if err != nil {
			return nil, false, err
		}
		step, err := p.tag(line, b, active[b])
		if err != nil {
			return nil, false, err
		}
		line, err = p.lr.next()
		if err == io.EOF {
			return nil, false, p.lr.truncated("'STATIC' or 'DYNAMIC'", "readFrame")
		} else if err != nil {
			return nil, false, err
		}
		switch strings.TrimSpace(line) {
		case staticTag:
			continue
		case dynamicTag:
		default:
			return nil, false, p.lr.formatError("'STATIC' or 'DYNAMIC'", line, "readFrame")
		}
		if p.format == ffea.FormatOld {
			if err := p.skipNodeCount(); err != nil {
				return nil, false, err
			}
		}
		pos, err := p.positions(p.nodes[b][active[b]])
		if err != nil {
			return nil, false, err
		}
		frames[b], err = ffea.NewFrame(step, pos)
		if err != nil {
			return nil, false, err
		}
	}
	return frames, false, nil
}

// skipNodeCount discards the line with the number of nodes that some
// legacy files have before the positions. If the line is anything
// else, it is given back.
func (p *parser) skipNodeCount() error {
	line, err := p.lr.next()
	if err == io.EOF {
		return p.lr.truncated("'%f %f %f' at the very least", "skipNodeCount")
	} else if err != nil {
		return err
	}
	f := strings.Fields(line)
	if len(f) == 1 {
		if _, err := strconv.Atoi(f[0]); err == nil {
			return nil
		}
	}
	p.lr.unread()
	return nil
}

// positions reads n lines of at least 3 numbers. Only the first 3
// numbers of each line are kept.
func (p *parser) positions(n int) (*v3.Matrix, error) {
	const shape = "'%f %f %f' at the very least"
	pos := v3.Zeros(n)
	var xyz [3]float64
	for i := 0; i < n; i++ {
		line, f, err := p.nextFields(shape, "positions")
		if err != nil {
			return nil, err
		}
		if len(f) < 3 {
			return nil, p.lr.formatError(shape, line, "positions")
		}
		for k := range xyz {
			xyz[k], err = strconv.ParseFloat(f[k], 64)
			if err != nil {
				return nil, p.lr.formatError(shape, line, "positions")
			}
		}
		pos.SetVec(i, xyz[0], xyz[1], xyz[2])
	}
	return pos, nil
}

// endFrame reads the '*' that closes a frame and, for NEW trajectories, the
// conformation changes, which update active. It returns eof if an OLD
// file ends where the '*' should be, which is how old files finish.
func (p *parser) endFrame(active []int) (bool, error) {
	line, err := p.lr.next()
	if err == io.EOF {
		if p.format == ffea.FormatOld {
			return true, nil
		}
		return false, p.lr.truncated("'*' to end the frame and begin the conformation changes section", "endFrame")
	} else if err != nil {
		return false, err
	}
	if strings.TrimSpace(line) != separator {
		return false, p.lr.formatError("'*' to end the frame and begin the conformation changes section", line, "endFrame")
	}
	if p.format == ffea.FormatNew {
		if err := p.conformationChanges(active); err != nil {
			return false, errDecorate(err, "endFrame")
		}
	}
	return false, nil
}

// conformationChanges reads the block that follows each frame in NEW
// trajectories, and sets the conformation of each blob for the next frame.
func (p *parser) conformationChanges(active []int) error {
	line, err := p.lr.next()
	if err == io.EOF {
		return p.lr.truncated("'"+confChangesTag+"'", "conformationChanges")
	} else if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(line), confChangesTag) {
		return p.lr.formatError("'"+confChangesTag+"'", line, "conformationChanges")
	}
	for b := range active {
		shape := fmt.Sprintf("'Blob %d: Conformation %%d -> Conformation %%d'", b)
		line, f, err := p.nextFields(shape, "conformationChanges")
		if err != nil {
			return err
		}
		if len(f) < 7 || f[0] != "Blob" || f[1] != strconv.Itoa(b)+":" || f[4] != "->" {
			return p.lr.formatError(shape, line, "conformationChanges")
		}
		c, err := strconv.Atoi(f[6])
		if err != nil || c < 0 || c >= len(p.nodes[b]) {
			return p.lr.formatError(shape, line, "conformationChanges")
		}
		active[b] = c
	}
	return p.expect(separator, "conformationChanges")
}

// skipFrame scans past a frame without decoding it. The conformation
// changes are still followed, so later frames are checked against the
// right conformation. It returns done if the file ends inside the frame.
func (p *parser) skipFrame(active []int) (bool, error) {
	for {
		line, err := p.lr.next()
		if err == io.EOF {
			return true, nil
		} else if err != nil {
			return false, err
		}
		if strings.TrimSpace(line) == separator {
			break
		}
	}
	if p.format == ffea.FormatOld {
		return false, nil
	}
	err := p.conformationChanges(active)
	var ferr *FormatError
	if errors.As(err, &ferr) && ferr.Truncated() {
		return true, nil
	}
	if err != nil {
		return false, errDecorate(err, "skipFrame")
	}
	return false, nil
}
