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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnVariants(t *testing.T) {
	tests := []struct {
		name      string
		col       Column
		wantKind  ColumnKind
		wantKey   string
		wantLabel string
		linked    bool
	}{
		{"plain", Plain("Actions"), KindPlain, "Actions", "Actions", false},
		{"sortable", Sortable("id", "ID", nil), KindSortable, "id", "ID", true},
		{"derived key", Sortable("", "Created At", nil), KindSortable, "created at", "Created At", true},
		{"derived key unicode", Sortable("", "ÉTAT", nil), KindSortable, "état", "ÉTAT", true},
		{"label from key", Sortable("email", "", nil), KindSortable, "email", "email", true},
		{"indicator", Indicator("status", "", nil), KindSortable, "status", "status", false},
		{"indicator with label", Indicator("status", "Status", nil), KindSortable, "status", "Status", false},
		{"indicator derived key", Indicator("", "Role", nil), KindSortable, "role", "Role", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.col.Kind())
			assert.Equal(t, tt.wantKey, tt.col.Key())
			assert.Equal(t, tt.wantLabel, tt.col.Label())
			assert.Equal(t, tt.linked, tt.col.Linked())
		})
	}
}

func TestColumnAttrsAreCopies(t *testing.T) {
	attrs := map[string]string{"class": "first"}
	col := Sortable("id", "ID", attrs)
	attrs["class"] = "changed"

	got := col.Attrs()
	assert.Equal(t, map[string]string{"class": "first"}, got)

	got["class"] = "mutated"
	assert.Equal(t, "first", col.Attrs()["class"])
	assert.NotNil(t, Plain("x").Attrs())
}

func TestDirectionToggle(t *testing.T) {
	assert.Equal(t, Desc, Asc.Toggle())
	assert.Equal(t, Asc, Desc.Toggle())
	assert.Equal(t, Asc, Direction("sideways").Toggle())
	assert.Equal(t, Asc, Asc.Toggle().Toggle())
}

func TestTemplateFragments(t *testing.T) {
	tmpl := DefaultTemplate()
	assert.NoError(t, tmpl.Set(FragmentNolinkStart, ""))
	got, err := tmpl.Get(FragmentNolinkStart)
	assert.NoError(t, err)
	assert.Equal(t, "", got)

	assert.ErrorIs(t, tmpl.Set("bogus", "x"), ErrUnknownFragment)
	_, err = tmpl.Get("bogus")
	assert.ErrorIs(t, err, ErrUnknownFragment)

	merged := DefaultTemplate().Merge(Template{ColTag: "td"})
	assert.Equal(t, "td", merged.ColTag)
	assert.Equal(t, "<thead>", merged.WrapperStart)
}

func TestBuildTag(t *testing.T) {
	assert.Equal(t, "<th>x</th>", BuildTag("th", nil, "x"))
	assert.Equal(t,
		`<th class="a b" data-key="id" id="col">content</th>`,
		BuildTag("th", map[string]string{"id": "col", "class": "a b", "data-key": "id"}, "content"))
	assert.Equal(t, `<td title="&lt;x&gt;"><b>y</b></td>`, BuildTag("td", map[string]string{"title": "<x>"}, "<b>y</b>"))
}
