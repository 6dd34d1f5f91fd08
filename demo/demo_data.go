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

package demo

import "github.com/google/tablesort/core/tablesort"

// CreatePeopleList creates the people list with sample data
func CreatePeopleList() *List {
	return &List{
		Name:  "people",
		Title: "People",
		Columns: []tablesort.Column{
			tablesort.Sortable("id", "ID", map[string]string{"class": "first"}),
			tablesort.Sortable("name", "Name", map[string]string{"class": "second"}),
			tablesort.Sortable("", "Email", nil),
			tablesort.Indicator("role", "", map[string]string{"class": "role"}),
			tablesort.Plain("Actions"),
		},
		Rows: []map[string]string{
			{"id": "1", "name": "Ada Lovelace", "email": "ada@example.com", "role": "admin", "Actions": "edit"},
			{"id": "2", "name": "Alan Turing", "email": "alan@example.com", "role": "member", "Actions": "edit"},
			{"id": "3", "name": "Grace Hopper", "email": "grace@example.com", "role": "member", "Actions": "edit"},
			{"id": "4", "name": "Edsger Dijkstra", "email": "edsger@example.com", "role": "viewer", "Actions": "edit"},
		},
	}
}

// CreateProjectsList creates the projects list with sample data
func CreateProjectsList() *List {
	return &List{
		Name:  "projects",
		Title: "Projects",
		Columns: []tablesort.Column{
			tablesort.Sortable("id", "ID", map[string]string{"class": "first"}),
			tablesort.Sortable("", "Title", nil),
			tablesort.Sortable("owner", "Owner", nil),
			tablesort.Sortable("updated", "Last Updated", map[string]string{"class": "date"}),
		},
		Rows: []map[string]string{
			{"id": "10", "title": "Compiler", "owner": "Grace Hopper", "updated": "2024-03-02"},
			{"id": "11", "title": "Analytical Engine", "owner": "Ada Lovelace", "updated": "2024-01-17"},
			{"id": "12", "title": "Bombe", "owner": "Alan Turing", "updated": "2024-02-09"},
		},
	}
}
