// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ishara/quizdeck/ent/predicate"
	"github.com/ishara/quizdeck/ent/stateblob"
)

// StateBlobUpdate is the builder for updating StateBlob entities.
type StateBlobUpdate struct {
	config
	hooks    []Hook
	mutation *StateBlobMutation
}

// Where appends a list predicates to the StateBlobUpdate builder.
func (_u *StateBlobUpdate) Where(ps ...predicate.StateBlob) *StateBlobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *StateBlobUpdate) SetNamespace(v string) *StateBlobUpdate {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *StateBlobUpdate) SetNillableNamespace(v *string) *StateBlobUpdate {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StateBlobUpdate) SetData(v map[string]interface{}) *StateBlobUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateBlobUpdate) SetUpdatedAt(v time.Time) *StateBlobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StateBlobMutation object of the builder.
func (_u *StateBlobUpdate) Mutation() *StateBlobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StateBlobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateBlobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StateBlobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateBlobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateBlobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stateblob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateBlobUpdate) check() error {
	if v, ok := _u.mutation.Namespace(); ok {
		if err := stateblob.NamespaceValidator(v); err != nil {
			return &ValidationError{Name: "namespace", err: fmt.Errorf(`ent: validator failed for field "StateBlob.namespace": %w`, err)}
		}
	}
	return nil
}

func (_u *StateBlobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stateblob.Table, stateblob.Columns, sqlgraph.NewFieldSpec(stateblob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(stateblob.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(stateblob.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stateblob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateblob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StateBlobUpdateOne is the builder for updating a single StateBlob entity.
type StateBlobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateBlobMutation
}

// SetNamespace sets the "namespace" field.
func (_u *StateBlobUpdateOne) SetNamespace(v string) *StateBlobUpdateOne {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *StateBlobUpdateOne) SetNillableNamespace(v *string) *StateBlobUpdateOne {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StateBlobUpdateOne) SetData(v map[string]interface{}) *StateBlobUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateBlobUpdateOne) SetUpdatedAt(v time.Time) *StateBlobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StateBlobMutation object of the builder.
func (_u *StateBlobUpdateOne) Mutation() *StateBlobMutation {
	return _u.mutation
}

// Where appends a list predicates to the StateBlobUpdate builder.
func (_u *StateBlobUpdateOne) Where(ps ...predicate.StateBlob) *StateBlobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StateBlobUpdateOne) Select(field string, fields ...string) *StateBlobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StateBlob entity.
func (_u *StateBlobUpdateOne) Save(ctx context.Context) (*StateBlob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateBlobUpdateOne) SaveX(ctx context.Context) *StateBlob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StateBlobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateBlobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateBlobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stateblob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateBlobUpdateOne) check() error {
	if v, ok := _u.mutation.Namespace(); ok {
		if err := stateblob.NamespaceValidator(v); err != nil {
			return &ValidationError{Name: "namespace", err: fmt.Errorf(`ent: validator failed for field "StateBlob.namespace": %w`, err)}
		}
	}
	return nil
}

func (_u *StateBlobUpdateOne) sqlSave(ctx context.Context) (_node *StateBlob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stateblob.Table, stateblob.Columns, sqlgraph.NewFieldSpec(stateblob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StateBlob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stateblob.FieldID)
		for _, f := range fields {
			if !stateblob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stateblob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(stateblob.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(stateblob.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stateblob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StateBlob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateblob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
