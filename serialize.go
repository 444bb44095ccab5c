/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fpconv

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/fse"
	"github.com/klauspost/compress/huff0"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// CompressMode selects how the Serializer compresses its blocks.
type CompressMode uint8

const (
	// CompressNone stores all blocks uncompressed.
	CompressNone CompressMode = iota

	// CompressFast compresses all blocks with S2.
	CompressFast

	// CompressDefault entropy codes digits and tags and compresses scales with S2.
	CompressDefault

	// CompressBest compresses all blocks with zstd.
	CompressBest
)

const (
	serializedVersion = 1

	tagSize = 3

	flagNeg = 1 << 0
	flagNaN = 1 << 1
	flagInf = 1 << 2
)

// Serializer converts slices of Number to and from a compact binary form.
// A Serializer is not safe for concurrent use.
type Serializer struct {
	digitsComp huff0.Scratch
	tagsComp   fse.Scratch

	// Uncompressed blocks
	digitsBuf []byte
	tagsBuf   []byte
	scalesBuf []byte

	// Compressed blocks
	digitsCompBuf []byte
	tagsCompBuf   []byte
	scalesCompBuf []byte

	compDigits, compTags, compScales byte
}

// NewSerializer returns a Serializer using CompressDefault.
func NewSerializer() *Serializer {
	s := Serializer{}
	s.CompressMode(CompressDefault)
	return &s
}

// CompressMode sets the compression used by Serialize.
func (s *Serializer) CompressMode(c CompressMode) {
	switch c {
	case CompressNone:
		s.compDigits, s.compTags, s.compScales = blockTypeUncompressed, blockTypeUncompressed, blockTypeUncompressed
	case CompressFast:
		s.compDigits, s.compTags, s.compScales = blockTypeS2, blockTypeS2, blockTypeS2
	case CompressDefault:
		s.compDigits, s.compTags, s.compScales = blockTypeHuff0, blockTypeFSE, blockTypeS2
	case CompressBest:
		s.compDigits, s.compTags, s.compScales = blockTypeZstd, blockTypeZstd, blockTypeZstd
	default:
		panic(fmt.Errorf("unknown compression mode: %v", c))
	}
}

// Serialize appends the serialized form of nums to dst.
func (s *Serializer) Serialize(dst []byte, nums []Number) []byte {
	// Header: Version byte
	// Varuint Number count
	// Varuint Digits size, uncompressed
	// Varuint Scales size, uncompressed
	// Varuint Compressed size of remaining data.
	// Blocks, in order digits, tags, scales:
	// - Varint: Block compressed bytes excluding this varint.
	// - Block type:
	//     0: uncompressed, rest is data.
	//     1: S2 block.
	//     2: Zstd block.
	//     3: Huff0 1X block, table included.
	//     4: FSE block.
	// - Block data.
	// Tags are 3 bytes per number: digit count, precision, flags.
	// Scales are signed varints, omitted for NaN and infinities.
	s.digitsBuf = s.digitsBuf[:0]
	if cap(s.tagsBuf) < len(nums)*tagSize {
		s.tagsBuf = make([]byte, 0, len(nums)*tagSize)
	}
	s.tagsBuf = s.tagsBuf[:0]
	s.scalesBuf = s.scalesBuf[:0]

	var tmp [binary.MaxVarintLen64]byte
	for i := range nums {
		n := &nums[i]
		var flags byte
		if n.Neg {
			flags |= flagNeg
		}
		switch {
		case n.IsNaN():
			flags |= flagNaN
		case n.IsInf():
			flags |= flagInf
		default:
			l := binary.PutVarint(tmp[:], int64(n.Scale))
			s.scalesBuf = append(s.scalesBuf, tmp[:l]...)
		}
		d := n.Digits()
		s.digitsBuf = append(s.digitsBuf, d...)
		s.tagsBuf = append(s.tagsBuf, byte(len(d)), byte(n.Precision), flags)
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.digitsCompBuf = encBlock(s.compDigits, s.digitsBuf, s.digitsCompBuf, &s.digitsComp, nil)
	}()
	go func() {
		defer wg.Done()
		s.tagsCompBuf = encBlock(s.compTags, s.tagsBuf, s.tagsCompBuf, nil, &s.tagsComp)
	}()
	go func() {
		defer wg.Done()
		s.scalesCompBuf = encBlock(s.compScales, s.scalesBuf, s.scalesCompBuf, nil, nil)
	}()
	wg.Wait()

	// Version
	dst = append(dst, serializedVersion)
	// Numbers
	n := binary.PutUvarint(tmp[:], uint64(len(nums)))
	dst = append(dst, tmp[:n]...)
	// Digits uncompressed size
	n = binary.PutUvarint(tmp[:], uint64(len(s.digitsBuf)))
	dst = append(dst, tmp[:n]...)
	// Scales uncompressed size
	n = binary.PutUvarint(tmp[:], uint64(len(s.scalesBuf)))
	dst = append(dst, tmp[:n]...)

	// Size of varints...
	varInts := binary.PutUvarint(tmp[:], uint64(len(s.digitsCompBuf))) +
		binary.PutUvarint(tmp[:], uint64(len(s.tagsCompBuf))) +
		binary.PutUvarint(tmp[:], uint64(len(s.scalesCompBuf)))
	n = binary.PutUvarint(tmp[:], uint64(len(s.digitsCompBuf)+len(s.tagsCompBuf)+len(s.scalesCompBuf)+varInts))
	dst = append(dst, tmp[:n]...)

	for _, block := range [][]byte{s.digitsCompBuf, s.tagsCompBuf, s.scalesCompBuf} {
		n = binary.PutUvarint(tmp[:], uint64(len(block)))
		dst = append(dst, tmp[:n]...)
		dst = append(dst, block...)
	}
	return dst
}

// Deserialize decodes src into dst, reusing its capacity, and returns the numbers.
func (s *Serializer) Deserialize(src []byte, dst []Number) ([]Number, error) {
	br := bytes.NewBuffer(src)

	if v, err := br.ReadByte(); err != nil {
		return dst, err
	} else if v != serializedVersion {
		return dst, errors.New("unknown version")
	}

	count, err := binary.ReadUvarint(br)
	if err != nil {
		return dst, err
	}
	if count > math.MaxInt32/tagSize {
		return dst, fmt.Errorf("number count %d too large", count)
	}
	digits, err := binary.ReadUvarint(br)
	if err != nil {
		return dst, err
	}
	if digits > count*MaxDigits {
		return dst, fmt.Errorf("digit count %d exceeds %d numbers", digits, count)
	}
	scales, err := binary.ReadUvarint(br)
	if err != nil {
		return dst, err
	}
	if scales > count*binary.MaxVarintLen64 {
		return dst, fmt.Errorf("scales size %d exceeds %d numbers", scales, count)
	}
	if c, err := binary.ReadUvarint(br); err != nil {
		return dst, err
	} else if c > uint64(br.Len()) {
		return dst, fmt.Errorf("stream too short, want %d, only have %d left", c, br.Len())
	}

	s.digitsBuf = resize(s.digitsBuf, int(digits))
	s.tagsBuf = resize(s.tagsBuf, int(count)*tagSize)
	s.scalesBuf = resize(s.scalesBuf, int(scales))

	var wg sync.WaitGroup
	var digitsErr, tagsErr, scalesErr error
	if err := decBlock(br, s.digitsBuf, &wg, &digitsErr); err != nil {
		wg.Wait()
		return dst, fmt.Errorf("decompressing digits: %w", err)
	}
	if err := decBlock(br, s.tagsBuf, &wg, &tagsErr); err != nil {
		wg.Wait()
		return dst, fmt.Errorf("decompressing tags: %w", err)
	}
	if err := decBlock(br, s.scalesBuf, &wg, &scalesErr); err != nil {
		wg.Wait()
		return dst, fmt.Errorf("decompressing scales: %w", err)
	}
	wg.Wait()
	switch {
	case digitsErr != nil:
		return dst, fmt.Errorf("decompressing digits: %w", digitsErr)
	case tagsErr != nil:
		return dst, fmt.Errorf("decompressing tags: %w", tagsErr)
	case scalesErr != nil:
		return dst, fmt.Errorf("decompressing scales: %w", scalesErr)
	}

	if dst == nil || uint64(cap(dst)) < count {
		dst = make([]Number, count)
	}
	dst = dst[:count]
	d := s.digitsBuf
	sc := s.scalesBuf
	for i := range dst {
		tag := s.tagsBuf[i*tagSize : i*tagSize+tagSize]
		nd, precision, flags := int(tag[0]), int(tag[1]), tag[2]
		if nd > MaxDigits || nd > len(d) {
			return dst, fmt.Errorf("number %d: %d digits extends beyond digits (%d)", i, nd, len(d))
		}
		n := &dst[i]
		*n = Number{Precision: precision, Neg: flags&flagNeg != 0}
		switch {
		case flags&flagNaN != 0:
			n.Scale = ScaleNaN
		case flags&flagInf != 0:
			n.Scale = ScaleInf
		default:
			v, l := binary.Varint(sc)
			if l <= 0 {
				return dst, fmt.Errorf("number %d: reading scale: no values left", i)
			}
			sc = sc[l:]
			n.Scale = int(v)
		}
		if err := n.SetDigits(d[:nd]); err != nil {
			return dst, fmt.Errorf("number %d: %w", i, err)
		}
		d = d[nd:]
	}
	if len(d) != 0 || len(sc) != 0 {
		return dst, fmt.Errorf("%d digit and %d scale bytes left after numbers", len(d), len(sc))
	}
	return dst, nil
}

func resize(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}

func decBlock(br *bytes.Buffer, dst []byte, wg *sync.WaitGroup, dstErr *error) error {
	size, err := binary.ReadUvarint(br)
	if err != nil {
		return err
	}
	if size > uint64(br.Len()) {
		return fmt.Errorf("block size (%d) extends beyond input %d", size, br.Len())
	}
	if size < 1 {
		return fmt.Errorf("block size (%d) too small %d", size, br.Len())
	}
	typ, err := br.ReadByte()
	if err != nil {
		return err
	}
	size--
	compressed := br.Next(int(size))
	if len(compressed) != int(size) {
		return errors.New("short block section")
	}
	switch typ {
	case blockTypeUncompressed:
		// uncompressed
		if len(compressed) != len(dst) {
			return errors.New("short uncompressed block")
		}
		copy(dst, compressed)
	case blockTypeS2:
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l, err := s2.DecodedLen(compressed); err != nil || l != len(dst) {
				*dstErr = errors.New("s2 decompressed size mismatch")
				return
			}
			_, err := s2.Decode(dst, compressed)
			*dstErr = err
		}()
	case blockTypeZstd:
		wg.Add(1)
		go func() {
			defer wg.Done()
			want := len(dst)
			got, err := zDec.DecodeAll(compressed, dst[:0])
			if err == nil && want != len(got) {
				err = errors.New("zstd decompressed size mismatch")
			}
			*dstErr = err
		}()
	case blockTypeHuff0:
		wg.Add(1)
		go func() {
			defer wg.Done()
			hs, remain, err := huff0.ReadTable(compressed, nil)
			if err != nil {
				*dstErr = err
				return
			}
			got, err := hs.Decoder().Decompress1X(dst[:0], remain)
			if err == nil && len(got) != len(dst) {
				err = errors.New("huff0 decompressed size mismatch")
			}
			*dstErr = err
		}()
	case blockTypeFSE:
		wg.Add(1)
		go func() {
			defer wg.Done()
			fs := fse.Scratch{DecompressLimit: len(dst), Out: dst[:0]}
			got, err := fse.Decompress(compressed, &fs)
			if err == nil && len(got) != len(dst) {
				err = errors.New("fse decompressed size mismatch")
			}
			if err == nil {
				copy(dst, got)
			}
			*dstErr = err
		}()
	default:
		return fmt.Errorf("unknown compression type: %d", typ)
	}
	return nil
}

const (
	blockTypeUncompressed byte = 0
	blockTypeS2           byte = 1
	blockTypeZstd         byte = 2
	blockTypeHuff0        byte = 3
	blockTypeFSE          byte = 4
)

var zDec, _ = zstd.NewReader(nil)
var zEncBest, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression), zstd.WithEncoderCRC(false))

// encBlock will encode a block of data.
// Entropy coded modes fall back to S2 when the input does not suit them.
func encBlock(mode byte, src, dst []byte, hs *huff0.Scratch, fs *fse.Scratch) []byte {
	if len(src) < 100 {
		mode = blockTypeUncompressed
	}
	switch mode {
	case blockTypeUncompressed:
		mel := len(src) + 1
		if cap(dst) < mel {
			dst = make([]byte, mel)
		}
		dst = dst[:mel]
		dst[0] = mode
		copy(dst[1:], src)
		return dst
	case blockTypeS2:
		mel := s2.MaxEncodedLen(len(src)) + 1
		if cap(dst) < mel {
			dst = make([]byte, mel)
		}
		dst = dst[:mel]
		dst[0] = mode
		got := s2.Encode(dst[1:], src)
		return dst[:len(got)+1]
	case blockTypeZstd:
		mel := len(src) + 50
		if cap(dst) < mel {
			dst = make([]byte, mel)
		}
		dst = dst[:mel]
		dst[0] = mode
		return zEncBest.EncodeAll(src, dst[:1])
	case blockTypeHuff0:
		hs.Reuse = huff0.ReusePolicyNone
		out, _, err := huff0.Compress1X(src, hs)
		if err != nil {
			return encBlock(blockTypeS2, src, dst, nil, nil)
		}
		return append(append(dst[:0], mode), out...)
	case blockTypeFSE:
		out, err := fse.Compress(src, fs)
		if err != nil {
			return encBlock(blockTypeS2, src, dst, nil, nil)
		}
		return append(append(dst[:0], mode), out...)
	}
	panic("unknown compression mode")
}
