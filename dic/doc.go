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

// Package dic reads and writes Hunspell .dic word list files.
//
// The written format is a decimal word count on the first line followed
// by one headword per line in Royal Institute collation order, LF line
// endings, UTF-8 with a leading byte order mark for legacy tool
// compatibility. The reader additionally tolerates the `# count` header
// style, comment lines, and affix flags after a slash, so dictionaries
// produced by other tooling remain loadable.
package dic
