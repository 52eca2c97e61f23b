// Copyright 2026 Slidewise Labs
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


// Package enrich orchestrates semantic enrichment of parsed decks.
//
// The pipeline takes a parsed deck plus the raw archive bytes it came
// from and annotates it in place: pictures get vision-model captions,
// tables get prose summaries. Captions run on a bounded worker pool
// with a per-run cache that collapses repeated asset paths into a
// single model call. Table summaries run sequentially.
//
// Enrichment is best-effort by contract. A missing asset, a failed
// request, or a disabled feature costs one annotation, never the run;
// the only hard error is an archive that cannot be opened at all.
package enrich
