// Copyright 2026 zoomETFs Project
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


// Package openai provides the production implementation of the ai
// interfaces against OpenAI-compatible chat APIs, typically a local
// Ollama server running a small instruction-tuned model.
//
// The extractor constrains the model with a JSON schema, runs at
// temperature 0, and repairs the most common formatting mistakes small
// models make before handing the payload downstream.
package openai
