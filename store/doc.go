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


// Package store holds vector records in process memory and answers
// brute-force nearest-neighbor queries over them.
//
// The store is the worker's source of truth for the current process. An
// optional Mirror forwards every inserted record to an external backend;
// mirror failures are logged and never affect the local insert.
//
// Similarity is Euclidean (L2) distance, computed exhaustively over all
// records. Records whose embedding width differs from the query sort last.
package store
