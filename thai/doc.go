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

// Package thai implements Thai text handling for dictionary headwords.
//
// It provides two things:
//  1. Normalization and validation: canonical NFC composition, whitespace
//     folding, and a configurable allow-list of Thai script code point
//     ranges. Sequences that render identically (e.g. Sara Am as U+0E33
//     versus U+0E4D U+0E32) collapse to one representation before any
//     comparison or deduplication happens.
//  2. Collation in Royal Institute dictionary order. The Royal Institute
//     ordering is defined over the base alphabet ก..ฮ (with ฤ and ฦ
//     interleaved) and is not the same as raw code point order: vowels
//     and tone marks sort after the base letter at the same position.
package thai
