/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Tablesort Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tablesort

import (
	"slices"
	"strings"

	"github.com/google/safehtml"
)

// BuildTag renders <tag name="value"...>content</tag>.
// Attribute names are emitted in sorted order and their values are escaped;
// content is written as given.
func BuildTag(tag string, attrs map[string]string, content string) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(escape(attrs[name]))
		sb.WriteString(`"`)
	}

	sb.WriteString(">")
	sb.WriteString(content)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
	return sb.String()
}

func escape(s string) string {
	return safehtml.HTMLEscaped(s).String()
}
