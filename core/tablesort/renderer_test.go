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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/tablesort/core/cookies"
	"github.com/google/tablesort/core/query"
)

func newRenderer(t *testing.T, segments SegmentReader, store CookieStore, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(segments, store, opts...)
	require.NoError(t, err)
	return r
}

// cellFor returns the rendered header cell whose content contains label
func cellFor(t *testing.T, html, label string) string {
	t.Helper()
	for _, cell := range strings.Split(html, "</th>") {
		if strings.Contains(cell, ">"+label+"<") {
			return cell + "</th>"
		}
	}
	t.Fatalf("no cell with label %q in %s", label, html)
	return ""
}

func TestRenderHeaderDefaultColumns(t *testing.T) {
	r := newRenderer(t, nil, nil, WithBaseURL("/list"))

	want := `<thead><tr>` +
		`<th class="first active active_asc"><a href="/list/id-desc">ID</a></th>` +
		`<th class="second"><a href="/list/name-asc">Name</a></th>` +
		`</tr></thead>`
	assert.Equal(t, want, r.RenderHeader())
}

func TestRenderHeaderNoColumns(t *testing.T) {
	r := newRenderer(t, nil, nil, WithColumns())
	assert.Equal(t, "<thead><tr><th>No columns config</th></tr></thead>", r.RenderHeader())

	require.NoError(t, r.Configure(
		WithFragment(FragmentWrapperStart, "<tfoot>"),
		WithFragment(FragmentWrapperEnd, "</tfoot>"),
		WithFragment(FragmentColTag, "td"),
	))
	assert.Equal(t, "<tfoot><tr><th>No columns config</th></tr></tfoot>", r.RenderHeader())
}

func TestRenderHeaderToggleLinks(t *testing.T) {
	columns := []Column{
		Sortable("id", "ID", nil),
		Sortable("name", "Name", nil),
		Sortable("email", "Email", nil),
	}
	tests := []struct {
		name      string
		segment   string
		wantLinks map[string]string
	}{
		{
			name:    "active ascending",
			segment: "name-asc",
			wantLinks: map[string]string{
				"ID":    `href="/people/id-asc"`,
				"Name":  `href="/people/name-desc"`,
				"Email": `href="/people/email-asc"`,
			},
		},
		{
			name:    "active descending",
			segment: "email-desc",
			wantLinks: map[string]string{
				"ID":    `href="/people/id-desc"`,
				"Name":  `href="/people/name-desc"`,
				"Email": `href="/people/email-asc"`,
			},
		},
		{
			name:    "unknown key marks nothing",
			segment: "missing-desc",
			wantLinks: map[string]string{
				"ID":    `href="/people/id-desc"`,
				"Name":  `href="/people/name-desc"`,
				"Email": `href="/people/email-desc"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRenderer(t, query.Path{"people", tt.segment}, nil,
				WithColumns(columns...),
				WithURISegment(2),
				WithBaseURL("/people/"),
				WithCookies(false),
			)
			html := r.RenderHeader()
			for label, link := range tt.wantLinks {
				assert.Contains(t, cellFor(t, html, label), link, label)
			}
		})
	}
}

func TestRenderHeaderActiveClass(t *testing.T) {
	r := newRenderer(t, query.Path{"a", "b", "name-desc"}, nil,
		WithColumns(
			Sortable("id", "ID", map[string]string{"class": "first"}),
			Sortable("name", "Name", nil),
			Plain("Actions"),
		),
		WithCookies(false),
	)
	html := r.RenderHeader()

	assert.Contains(t, cellFor(t, html, "Name"), `class="active active_desc"`)
	assert.Contains(t, cellFor(t, html, "ID"), `class="first"`)
	assert.NotContains(t, cellFor(t, html, "ID"), "active")
	assert.NotContains(t, cellFor(t, html, "Actions"), "active")
}

func TestRenderHeaderCustomActiveToken(t *testing.T) {
	r := newRenderer(t, nil, nil,
		WithFragment(FragmentColClassActive, "sorted"),
		WithCookies(false),
	)
	cell := cellFor(t, r.RenderHeader(), "ID")
	assert.Contains(t, cell, `class="first sorted sorted_asc"`)
}

func TestRenderHeaderIndicatorColumn(t *testing.T) {
	r := newRenderer(t, nil, nil,
		WithColumns(
			Indicator("status", "", map[string]string{"class": "state"}),
			Sortable("id", "ID", nil),
		),
		WithSortBy("status"),
		WithDirection(Desc),
		WithBaseURL("/list"),
		WithCookies(false),
	)
	html := r.RenderHeader()

	status := cellFor(t, html, "status")
	assert.Equal(t, `<th class="state active active_desc"><span>status</span></th>`, status)
	assert.NotContains(t, status, "<a")
	assert.Contains(t, cellFor(t, html, "ID"), `href="/list/id-desc"`)
}

func TestRenderHeaderIndicatorLabel(t *testing.T) {
	r := newRenderer(t, nil, nil,
		WithColumns(Indicator("", "Role", nil)),
		WithSortBy("role"),
		WithCookies(false),
	)
	assert.Equal(t, `<thead><tr><th class="active active_asc"><span>Role</span></th></tr></thead>`, r.RenderHeader())
}

func TestRenderHeaderPlainColumn(t *testing.T) {
	r := newRenderer(t, nil, nil,
		WithColumns(Plain("Actions"), Sortable("id", "ID", nil)),
		WithCookies(false),
	)
	html := r.RenderHeader()
	assert.Contains(t, html, "<th><span>Actions</span></th>")

	require.NoError(t, r.Configure(WithSortBy("Actions")))
	assert.Contains(t, r.RenderHeader(), `<th class="active active_asc"><span>Actions</span></th>`)
}

func TestRenderHeaderLinkTemplate(t *testing.T) {
	r := newRenderer(t, nil, nil,
		WithColumns(Sortable("id", "ID", nil)),
		WithTemplate(Template{LinkStart: `<a class="sort" >`, NolinkStart: "<em>", NolinkEnd: "</em>"}),
		WithBaseURL("/list"),
		WithCookies(false),
	)
	assert.Contains(t, r.RenderHeader(), `<a class="sort" href="/list/id-desc">ID</a>`)
	assert.Equal(t, "</a>", r.Template().LinkEnd)
	assert.Equal(t, "<em>", r.Template().NolinkStart)
}

func TestRenderHeaderCurrentPage(t *testing.T) {
	r := newRenderer(t, nil, nil, WithBaseURL("/list"), WithCurrentPage(4), WithCookies(false))
	assert.Contains(t, r.RenderHeader(), `href="/list/4/id-desc"`)
	assert.Contains(t, r.RenderHeader(), `href="/list/4/name-asc"`)
}

func TestRenderHeaderDelimiter(t *testing.T) {
	r := newRenderer(t, query.Path{"x", "y", "name~desc"}, nil,
		WithDelimiter("~"),
		WithBaseURL("/list"),
		WithCookies(false),
	)
	assert.Equal(t, "name", r.SortBy())
	assert.Contains(t, r.RenderHeader(), `href="/list/name~asc"`)
}

func TestRenderHeaderUnvalidatedDirection(t *testing.T) {
	r := newRenderer(t, query.Path{"x", "y", "id-up"}, nil, WithBaseURL("/list"), WithCookies(false))
	html := r.RenderHeader()

	assert.Equal(t, Direction("up"), r.Direction())
	assert.Contains(t, cellFor(t, html, "ID"), `class="first active active_up"`)
	assert.Contains(t, cellFor(t, html, "ID"), `href="/list/id-asc"`)
	assert.Contains(t, cellFor(t, html, "Name"), `href="/list/name-up"`)
}

func TestRenderHeaderEscapesText(t *testing.T) {
	r := newRenderer(t, nil, nil,
		WithColumns(Sortable("qa", "<b>Q&A</b>", map[string]string{"title": `say "hi"`})),
		WithCookies(false),
	)
	html := r.RenderHeader()
	assert.Contains(t, html, "&lt;b&gt;Q&amp;A&lt;/b&gt;")
	assert.Contains(t, html, `title="say &#34;hi&#34;"`)
}

func TestRenderHeaderHTML(t *testing.T) {
	r := newRenderer(t, nil, nil, WithCookies(false))
	assert.Equal(t, r.RenderHeader(), r.RenderHeaderHTML().String())
}

func TestResolveStateFromURLWritesCookies(t *testing.T) {
	store := cookies.NewMemoryStore(nil)
	r := newRenderer(t, query.Path{"admin", "people", "name-desc"}, store, WithBaseURL("/admin/people"))

	assert.Equal(t, "name", r.SortBy())
	assert.Equal(t, Desc, r.Direction())
	assert.Equal(t, SourceURL, r.Source())
	assert.Equal(t, map[string]string{
		DefaultSortByCookie:    "name",
		DefaultDirectionCookie: "desc",
	}, store.Values())
	assert.Equal(t, "/admin/people", store.Path(DefaultSortByCookie))
	assert.Equal(t, "/admin/people", store.Path(DefaultDirectionCookie))

	// A later request without a sort segment reads the same pair back
	next := newRenderer(t, query.Path{"admin", "people"}, store, WithBaseURL("/admin/people"))
	assert.Equal(t, "name", next.SortBy())
	assert.Equal(t, Desc, next.Direction())
	assert.Equal(t, SourceCookie, next.Source())
}

func TestResolveStateCookieNames(t *testing.T) {
	store := cookies.NewMemoryStore(nil)
	newRenderer(t, query.Path{"a", "b", "name-desc"}, store, WithCookieNames("s", "d"))
	assert.Equal(t, map[string]string{"s": "name", "d": "desc"}, store.Values())
}

func TestResolveStateSegmentWithoutDelimiter(t *testing.T) {
	store := cookies.NewMemoryStore(map[string]string{DefaultDirectionCookie: "desc"})
	r := newRenderer(t, query.Path{"a", "b", "2"}, store)

	assert.Equal(t, "id", r.SortBy())
	assert.Equal(t, Desc, r.Direction())
	assert.Equal(t, SourceCookie, r.Source())
}

func TestResolveStateCookiesDisabled(t *testing.T) {
	store := cookies.NewMemoryStore(map[string]string{DefaultSortByCookie: "name"})

	r := newRenderer(t, nil, store, WithCookies(false))
	assert.Equal(t, "id", r.SortBy())
	assert.Equal(t, SourceDefault, r.Source())

	r = newRenderer(t, query.Path{"a", "b", "email-desc"}, store, WithCookies(false))
	assert.Equal(t, "email", r.SortBy())
	assert.Equal(t, map[string]string{DefaultSortByCookie: "name"}, store.Values())
}

func TestResolveStateExplicit(t *testing.T) {
	r := newRenderer(t, nil, nil)
	store := cookies.NewMemoryStore(nil)

	r.ResolveState("name-desc", store)
	assert.Equal(t, "name", r.SortBy())
	assert.Equal(t, Desc, r.Direction())
	assert.Equal(t, "name", store.Get(DefaultSortByCookie, ""))

	r.ResolveState("", store)
	assert.Equal(t, "name", r.SortBy())
	assert.Equal(t, Desc, r.Direction())
}

func TestReset(t *testing.T) {
	store := cookies.NewMemoryStore(nil)
	r := newRenderer(t, query.Path{"a", "b", "name-desc"}, store, WithSortBy("email"))
	require.Equal(t, "name", r.SortBy())

	r.Reset()
	assert.Equal(t, "email", r.SortBy())
	assert.Equal(t, Asc, r.Direction())
	assert.Equal(t, SourceDefault, r.Source())
	assert.Empty(t, store.Values())

	r.Reset()
	assert.Equal(t, "email", r.SortBy())
	assert.Equal(t, Asc, r.Direction())
	assert.Empty(t, store.Values())
}

func TestResetAfterReconfigure(t *testing.T) {
	r := newRenderer(t, query.Path{"a", "b", "name-desc"}, nil, WithCookies(false))

	// Configuring again must not adopt the URL override as the new default
	require.NoError(t, r.Configure(WithBaseURL("/list")))
	assert.Equal(t, "name", r.SortBy())

	r.Reset()
	assert.Equal(t, "id", r.SortBy())
	assert.Equal(t, Asc, r.Direction())
}

func TestResetCookiesDisabledLeavesStore(t *testing.T) {
	store := cookies.NewMemoryStore(map[string]string{DefaultSortByCookie: "name"})
	r := newRenderer(t, nil, store, WithCookies(false))

	r.Reset()
	assert.Equal(t, map[string]string{DefaultSortByCookie: "name"}, store.Values())
}

func TestConfigureErrorsLeaveConfiguration(t *testing.T) {
	r := newRenderer(t, nil, nil, WithBaseURL("/list"))
	before := r.RenderHeader()

	tests := []struct {
		name string
		opt  Option
	}{
		{"unknown fragment", WithFragment("row_tag", "tr")},
		{"empty delimiter", WithDelimiter("")},
		{"zero segment", WithURISegment(0)},
		{"negative page", WithCurrentPage(-1)},
		{"empty cookie name", WithCookieNames("", "d")},
		{"same cookie names", WithCookieNames("x", "x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Configure(WithColumns(), tt.opt)
			require.Error(t, err)
			assert.Equal(t, before, r.RenderHeader())
		})
	}

	err := r.Configure(WithFragment("row_tag", "tr"))
	assert.ErrorIs(t, err, ErrUnknownFragment)

	_, err = New(nil, nil, WithURISegment(-2))
	assert.Error(t, err)
}

func TestColumnsAccessorCopies(t *testing.T) {
	r := newRenderer(t, nil, nil)
	cols := r.Columns()
	require.Len(t, cols, 2)
	cols[0] = Plain("changed")
	assert.Equal(t, "id", r.Columns()[0].Key())
}
