// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"github.com/canonical/crm-service/internal/types"
)

// Diff accumulates field level changes in the order they are compared.
type Diff struct {
	changes []types.Change
}

func NewDiff() *Diff {
	return &Diff{changes: make([]types.Change, 0)}
}

// Compare records field when old and new render differently.
func (d *Diff) Compare(field string, old, new interface{}) *Diff {
	o, n := types.ValueOf(old), types.ValueOf(new)

	if o.Kind == n.Kind && o.String() == n.String() {
		return d
	}

	d.changes = append(d.changes, types.Change{Field: field, OldValue: o, NewValue: n})
	return d
}

// Set records field unconditionally, for values that must not be compared
// or revealed.
func (d *Diff) Set(field string, old, new interface{}) *Diff {
	d.changes = append(d.changes, types.Change{Field: field, OldValue: types.ValueOf(old), NewValue: types.ValueOf(new)})
	return d
}

// Created records the fields of a new document, they have no previous value.
func (d *Diff) Created(field string, v interface{}) *Diff {
	d.changes = append(d.changes, types.Change{Field: field, NewValue: types.ValueOf(v)})
	return d
}

// Removed records the fields of a deleted document, their new value is null.
func (d *Diff) Removed(field string, v interface{}) *Diff {
	d.changes = append(d.changes, types.Change{Field: field, OldValue: types.ValueOf(v), NewValue: types.NullValue()})
	return d
}

func (d *Diff) Empty() bool {
	return len(d.changes) == 0
}

func (d *Diff) Changes() []types.Change {
	return d.changes
}
