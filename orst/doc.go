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

// Package orst implements a polite, cached client for the Thai Royal
// Institute (ORST) dictionary lookup API.
//
// The API is queried per base-alphabet symbol ("domain") in pages of ten
// records; each response is a two-element JSON array of the total record
// count and the page's headwords. The client rate-limits network calls,
// retries transient failures with exponential backoff, and memoizes
// validated responses in a write-once on-disk cache so an interrupted
// sweep can be replayed without re-issuing requests.
package orst
