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


// Package openai implements the ai interfaces against an OpenAI-style
// HTTP service.
//
// Captioning and summarization go through the responses endpoint with a
// small hand-rolled client that tolerates both known response envelope
// shapes. Embeddings go through langchaingo's OpenAI-compatible client.
// All three clients honor the disabled-feature contract: a blank API
// key or model identifier turns the corresponding calls into logged
// no-ops rather than errors.
package openai
