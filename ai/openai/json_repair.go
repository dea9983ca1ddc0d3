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


package openai

// repairJSON attempts to fix common JSON formatting issues from small
// local models. It specifically handles object keys missing their
// opening quote, e.g. `{fees_max": 0.5}` -> `{"fees_max": 0.5}`.
func repairJSON(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+16)

	i := 0
	for i < len(in) {
		ch := in[i]
		out = append(out, ch)
		i++
		if ch != '{' && ch != ',' {
			continue
		}

		// Copy whitespace following the separator
		for i < len(in) && (in[i] == ' ' || in[i] == '\n' || in[i] == '\t') {
			out = append(out, in[i])
			i++
		}

		// A key should start with a quote; a bare identifier followed
		// by `":` lost its opening quote.
		if i >= len(in) || in[i] == '"' || !isIdentRune(in[i]) {
			continue
		}
		start := i
		for i < len(in) && isIdentRune(in[i]) {
			i++
		}
		if i+1 < len(in) && in[i] == '"' && in[i+1] == ':' {
			out = append(out, '"')
		}
		out = append(out, in[start:i]...)
	}

	return string(out)
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
