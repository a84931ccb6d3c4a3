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


// Package storage defines the persistence interfaces for the worker's
// re-embedding bookkeeping.
//
// Vector records themselves are process-scoped and never persisted; what
// survives restarts is the set of jobs whose embeddings were degraded and
// still need repair. The storage/badger subpackage provides the BadgerDB
// implementation.
package storage
