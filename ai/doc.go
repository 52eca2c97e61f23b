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


// Package ai provides abstractions for the external model service used
// during deck enrichment.
//
// The package defines interfaces for the three service calls the
// pipeline makes (image captioning, table summarization, and text
// embedding) plus the settings snapshot they share. The enrichment
// orchestration depends only on these abstractions.
//
// # Outcome Variants
//
// Every client call returns one of three explicit outcomes rather than
// an error:
//
//   - StatusOK: the call produced a usable value.
//   - StatusDisabled: the call was skipped before any network activity
//     (blank API key, blank model identifier, or blank input). This is
//     routine, not a failure: an operator without credentials still gets
//     the non-AI parts of deck processing.
//   - StatusFailed: the call was attempted and produced nothing usable.
//     Failures are soft; they are logged and the sweep continues, and no
//     single asset can abort a deck-processing run.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: production clients for an OpenAI-style service
//   - ai/mock: test doubles for unit testing without external calls
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithVisionModel("gpt-4.1-mini"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	res := provider.Embedder().EmbedText(ctx, "quarterly revenue by region")
//	if res.Ok() {
//	    index(res.Vector)
//	}
package ai
