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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"runtime"
	"sync"
)

// A Stream is used to stream back results.
// Either Error or Values will be set on returned results.
type Stream struct {
	Values []float64
	Error  error
}

// ParseNDStream parses newline delimited decimal numbers from r and returns
// the values to the supplied result channel.
// The method will return immediately.
// Blank lines are skipped and surrounding white space is ignored.
// Each result holds the values of an unspecified number of full lines,
// and results are delivered in input order.
// A stream is finished when a non-nil Error is returned.
// If the stream was parsed until the end the Error value will be io.EOF.
// The channel will be closed after an error has been returned.
// An optional channel for returning consumed value slices can be provided.
// There is no guarantee that slices will be consumed, so always use
// non-blocking writes to the reuse channel.
func ParseNDStream(r io.Reader, res chan<- Stream, reuse <-chan []float64) {
	const tmpSize = 1 << 20
	buf := bufio.NewReaderSize(r, tmpSize)
	tmpPool := sync.Pool{New: func() interface{} {
		return make([]byte, tmpSize+1024)
	}}
	conc := (runtime.GOMAXPROCS(0) + 1) / 2
	queue := make(chan chan Stream, conc)
	go func() {
		// Forward finished items in order.
		defer close(res)
		end := false
		for items := range queue {
			i := <-items
			select {
			case res <- i:
			default:
				if !end {
					// Block if we haven't returned an error
					res <- i
				}
			}
			if i.Error != nil {
				end = true
			}
		}
	}()
	go func() {
		defer close(queue)
		line := 1
		for {
			tmp := tmpPool.Get().([]byte)
			tmp = tmp[:tmpSize]
			n, err := buf.Read(tmp)
			if err != nil && err != io.EOF {
				queueError(queue, fmt.Errorf("reading input: %w", err))
				return
			}
			tmp = tmp[:n]
			// Read until Newline
			if err != io.EOF {
				b, err2 := buf.ReadBytes('\n')
				if err2 != nil && err2 != io.EOF {
					queueError(queue, fmt.Errorf("reading input: %w", err2))
					return
				}
				tmp = append(tmp, b...)
				// Forward io.EOF
				err = err2
			}

			if len(tmp) > 0 {
				result := make(chan Stream)
				queue <- result
				go func(tmp []byte, first int) {
					defer tmpPool.Put(tmp[:0])
					var values []float64
					select {
					case v := <-reuse:
						values = v[:0]
					default:
					}
					values, parseErr := parseLines(values, tmp, first)
					if parseErr != nil {
						result <- Stream{Error: fmt.Errorf("parsing input: %w", parseErr)}
						return
					}
					result <- Stream{Values: values}
				}(tmp, line)
				line += bytes.Count(tmp, []byte{'\n'})
			} else {
				tmpPool.Put(tmp)
			}
			if err != nil {
				// Should only really be io.EOF
				queueError(queue, err)
				return
			}
		}
	}()
}

// parseLines appends the values of all non-blank lines in b to dst.
// first is the line number of the first line, used in errors.
func parseLines(dst []float64, b []byte, first int) ([]float64, error) {
	for line := first; len(b) > 0; line++ {
		var l []byte
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			l, b = b[:i], b[i+1:]
		} else {
			l, b = b, nil
		}
		l = bytes.TrimSpace(l)
		if len(l) == 0 {
			continue
		}
		v, err := ParseFloat(l)
		if err != nil {
			return dst, fmt.Errorf("line %d: %w", line, err)
		}
		dst = append(dst, v)
	}
	return dst, nil
}

func queueError(queue chan chan Stream, err error) {
	result := make(chan Stream)
	queue <- result
	result <- Stream{Error: err}
}
