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


// Package worker runs the document ingestion loop.
//
// The worker pops jobs from a queue.Source and drives each one through
// extraction, chunking, embedding and storage. Per-job failures are absorbed:
// they produce an application event and the loop moves on to the next job.
// Only context cancellation stops the loop.
//
// When the queue backend is unreachable the worker backs off and retries
// rather than exiting; a worker with no reachable queue is idle, not broken.
package worker
