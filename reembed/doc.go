// Copyright 2025 Poiesic Systems
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


// Package reembed repairs vector records that were stored with degraded
// placeholder embeddings.
//
// The worker registers a pending entry whenever a job finishes with degraded
// chunks. A Reembedder pass walks those entries, re-embeds the degraded
// chunks with the real provider and swaps the repaired records into the
// store. A pass stops early when the provider is still unreachable; the
// remaining entries simply wait for the next pass.
package reembed
