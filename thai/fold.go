// Copyright 2026 Syafiq Hadzir
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package thai

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// whitespaceFolder strips leading and trailing whitespace and collapses
// internal whitespace spans to a single ASCII space. It composes with
// norm.NFC in a transform.Chain so headwords are canonicalized in a
// single pass.
type whitespaceFolder struct {
	// started is true after the first non-whitespace rune.
	started bool

	// inSpan is true while consuming a whitespace span.
	inSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *whitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if w.started {
				w.inSpan = true
			}
			// Leading whitespace is dropped; trailing whitespace is a
			// span that never gets flushed.
			continue
		}

		if w.inSpan {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.inSpan = false
		}
		w.started = true
		nSrc += size

		// c may be utf8.RuneError, whose encoded length differs from
		// the length of the invalid input bytes.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *whitespaceFolder) Reset() {
	*w = whitespaceFolder{}
}
