// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"math"

	"github.com/jemjive/skyline/sparsemat"
)

// ErrCorruptStream is returned by ReadFactorization when the magic,
// version, byte order, or CRC of a persisted factorisation does not check
// out.
var ErrCorruptStream = errors.New("skyline: corrupt persisted factorisation")

const persistMagic = "SKLU"
const persistVersion = uint16(1)

// byteOrder is the wire byte order for persisted factorisations; little
// endian matches every realistic deployment target, so it is fixed rather
// than probed from the host.
var byteOrder = binary.LittleEndian

// WriteFactorization serialises the factored state (permutation, scaling,
// diagonal, profile, and the three arenas) in the binary layout from spec
// section 6, terminated by a CRC32 of everything written before it.
func (f *Factoriser) WriteFactorization(w io.Writer) error {
	if f.state != StateFactored {
		return ErrNotFactored
	}

	cw := &crcWriter{w: w, crc: crc32.NewIEEE()}

	writeBytes(cw, []byte(persistMagic))
	writeUint16(cw, persistVersion)
	writeUint8(cw, 0) // byteOrder: 0 = little endian
	writeUint64(cw, uint64(f.n))
	writeUint64(cw, uint64(f.N))

	for _, p := range f.perm {
		writeUint32(cw, uint32(p))
	}
	writeFloat64Slice(cw, f.scale)
	writeFloat64Slice(cw, f.diag)
	for _, t := range f.top {
		writeUint32(cw, uint32(t))
	}
	writeFloat64Slice(cw, f.pivot)

	for k := 0; k < f.N; k++ {
		writeUint32(cw, uint32(4*(k-f.top[k])))
	}
	writeFloat64Slice(cw, f.upper)
	writeFloat64Slice(cw, f.lower)

	if cw.err != nil {
		return cw.err
	}
	return binary.Write(w, byteOrder, cw.crc.Sum32())
}

// ReadFactorization is the inverse of WriteFactorization. a must be the
// same (or structurally equivalent) borrowed matrix the factorisation was
// built from; it becomes the returned Factoriser's borrowed view, and its
// shape is checked against the persisted n.
func ReadFactorization(r io.Reader, a sparsemat.Matrix) (*Factoriser, error) {
	cr := &crcReader{r: r, crc: crc32.NewIEEE()}

	magic := string(readBytes(cr, 4))
	version := readUint16(cr)
	order := readUint8(cr)
	n := int(readUint64(cr))
	blockCount := int(readUint64(cr))
	if cr.err != nil {
		return nil, cr.err
	}
	if magic != persistMagic || version != persistVersion || order != 0 {
		return nil, ErrCorruptStream
	}
	if an, am := a.Shape(); an != n || am != n {
		return nil, ErrCorruptStream
	}

	f := &Factoriser{a: a, n: n, N: blockCount, zeroThreshold: 1e-15, progressStride: 1000}

	f.perm = make([]int, n)
	for i := range f.perm {
		f.perm[i] = int(readUint32(cr))
	}
	f.iperm = make([]int, n)
	for pos, orig := range f.perm {
		f.iperm[orig] = pos
	}
	f.scale = readFloat64Slice(cr, n)
	f.diag = readFloat64Slice(cr, blockCount*4)
	f.top = make([]int, blockCount)
	for i := range f.top {
		f.top[i] = int(readUint32(cr))
	}
	f.pivot = readFloat64Slice(cr, blockCount*16)

	upperSizes := make([]int, blockCount)
	for k := range upperSizes {
		upperSizes[k] = int(readUint32(cr))
	}
	f.upperOff = make([]int, blockCount+1)
	f.lowerOff = make([]int, blockCount+1)
	for k := 0; k < blockCount; k++ {
		width := (k - f.top[k]) * 16
		f.upperOff[k+1] = f.upperOff[k] + width
		f.lowerOff[k+1] = f.lowerOff[k] + width
	}
	f.upper = readFloat64Slice(cr, f.upperOff[blockCount])
	f.lower = readFloat64Slice(cr, f.lowerOff[blockCount])

	if cr.err != nil {
		return nil, cr.err
	}

	wantCRC := cr.crc.Sum32()
	gotCRC := readUint32Raw(cr.r)
	if gotCRC != wantCRC {
		return nil, ErrCorruptStream
	}

	f.blockDiag = make([][4]float64, blockCount)
	for k := 0; k < blockCount; k++ {
		for loc := 0; loc < 4; loc++ {
			if i := 4*k + loc; i < len(f.diag) {
				f.blockDiag[k][loc] = f.diag[i]
			}
		}
	}

	f.structAtStart = a.StructureVersion()
	f.valuesAtStart = a.ValuesVersion()
	f.state = StateFactored
	return f, nil
}

type hashWriter interface {
	io.Writer
	Sum32() uint32
}

type crcWriter struct {
	w   io.Writer
	crc hashWriter
	err error
}

func (cw *crcWriter) write(p []byte) {
	if cw.err != nil {
		return
	}
	if _, err := cw.w.Write(p); err != nil {
		cw.err = err
		return
	}
	cw.crc.Write(p)
}

type crcReader struct {
	r   io.Reader
	crc hashWriter
	err error
}

func (cr *crcReader) read(p []byte) {
	if cr.err != nil {
		return
	}
	if _, err := io.ReadFull(cr.r, p); err != nil {
		cr.err = err
		return
	}
	cr.crc.Write(p)
}

func writeBytes(cw *crcWriter, b []byte) { cw.write(b) }

func writeUint8(cw *crcWriter, v uint8) { cw.write([]byte{v}) }

func writeUint16(cw *crcWriter, v uint16) {
	var b [2]byte
	byteOrder.PutUint16(b[:], v)
	cw.write(b[:])
}

func writeUint32(cw *crcWriter, v uint32) {
	var b [4]byte
	byteOrder.PutUint32(b[:], v)
	cw.write(b[:])
}

func writeUint64(cw *crcWriter, v uint64) {
	var b [8]byte
	byteOrder.PutUint64(b[:], v)
	cw.write(b[:])
}

func writeFloat64Slice(cw *crcWriter, v []float64) {
	b := make([]byte, 8*len(v))
	for i, x := range v {
		byteOrder.PutUint64(b[i*8:], math.Float64bits(x))
	}
	cw.write(b)
}

func readBytes(cr *crcReader, n int) []byte {
	b := make([]byte, n)
	cr.read(b)
	return b
}

func readUint8(cr *crcReader) uint8 {
	var b [1]byte
	cr.read(b[:])
	return b[0]
}

func readUint16(cr *crcReader) uint16 {
	var b [2]byte
	cr.read(b[:])
	return byteOrder.Uint16(b[:])
}

func readUint32(cr *crcReader) uint32 {
	var b [4]byte
	cr.read(b[:])
	return byteOrder.Uint32(b[:])
}

func readUint64(cr *crcReader) uint64 {
	var b [8]byte
	cr.read(b[:])
	return byteOrder.Uint64(b[:])
}

func readUint32Raw(r io.Reader) uint32 {
	var b [4]byte
	io.ReadFull(r, b[:])
	return byteOrder.Uint32(b[:])
}

func readFloat64Slice(cr *crcReader, n int) []float64 {
	b := make([]byte, 8*n)
	cr.read(b)
	v := make([]float64, n)
	for i := range v {
		v[i] = math.Float64frombits(byteOrder.Uint64(b[i*8:]))
	}
	return v
}
