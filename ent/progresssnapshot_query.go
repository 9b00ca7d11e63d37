// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/lingo/ent/predicate"
	"github.com/smehra/lingo/ent/progresssnapshot"
)

// ProgressSnapshotQuery is the builder for querying ProgressSnapshot entities.
type ProgressSnapshotQuery struct {
	config
	ctx        *QueryContext
	order      []progresssnapshot.OrderOption
	inters     []Interceptor
	predicates []predicate.ProgressSnapshot
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProgressSnapshotQuery builder.
func (psq *ProgressSnapshotQuery) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotQuery {
	psq.predicates = append(psq.predicates, ps...)
	return psq
}

// Limit the number of records to be returned by this query.
func (psq *ProgressSnapshotQuery) Limit(limit int) *ProgressSnapshotQuery {
	psq.ctx.Limit = &limit
	return psq
}

// Offset to start from.
func (psq *ProgressSnapshotQuery) Offset(offset int) *ProgressSnapshotQuery {
	psq.ctx.Offset = &offset
	return psq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (psq *ProgressSnapshotQuery) Unique(unique bool) *ProgressSnapshotQuery {
	psq.ctx.Unique = &unique
	return psq
}

// Order specifies how the records should be ordered.
func (psq *ProgressSnapshotQuery) Order(o ...progresssnapshot.OrderOption) *ProgressSnapshotQuery {
	psq.order = append(psq.order, o...)
	return psq
}

// First returns the first ProgressSnapshot entity from the query.
// Returns a *NotFoundError when no ProgressSnapshot was found.
func (psq *ProgressSnapshotQuery) First(ctx context.Context) (*ProgressSnapshot, error) {
	nodes, err := psq.Limit(1).All(setContextOp(ctx, psq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{progresssnapshot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) FirstX(ctx context.Context) *ProgressSnapshot {
	node, err := psq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProgressSnapshot ID from the query.
// Returns a *NotFoundError when no ProgressSnapshot ID was found.
func (psq *ProgressSnapshotQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = psq.Limit(1).IDs(setContextOp(ctx, psq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{progresssnapshot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) FirstIDX(ctx context.Context) int {
	id, err := psq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProgressSnapshot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProgressSnapshot entity is found.
// Returns a *NotFoundError when no ProgressSnapshot entities are found.
func (psq *ProgressSnapshotQuery) Only(ctx context.Context) (*ProgressSnapshot, error) {
	nodes, err := psq.Limit(2).All(setContextOp(ctx, psq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{progresssnapshot.Label}
	default:
		return nil, &NotSingularError{progresssnapshot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) OnlyX(ctx context.Context) *ProgressSnapshot {
	node, err := psq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProgressSnapshot ID in the query.
// Returns a *NotSingularError when more than one ProgressSnapshot ID is found.
// Returns a *NotFoundError when no entities are found.
func (psq *ProgressSnapshotQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = psq.Limit(2).IDs(setContextOp(ctx, psq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{progresssnapshot.Label}
	default:
		err = &NotSingularError{progresssnapshot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) OnlyIDX(ctx context.Context) int {
	id, err := psq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProgressSnapshots.
func (psq *ProgressSnapshotQuery) All(ctx context.Context) ([]*ProgressSnapshot, error) {
	ctx = setContextOp(ctx, psq.ctx, ent.OpQueryAll)
	if err := psq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProgressSnapshot, *ProgressSnapshotQuery]()
	return withInterceptors[[]*ProgressSnapshot](ctx, psq, qr, psq.inters)
}

// AllX is like All, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) AllX(ctx context.Context) []*ProgressSnapshot {
	nodes, err := psq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProgressSnapshot IDs.
func (psq *ProgressSnapshotQuery) IDs(ctx context.Context) (ids []int, err error) {
	if psq.ctx.Unique == nil && psq.path != nil {
		psq.Unique(true)
	}
	ctx = setContextOp(ctx, psq.ctx, ent.OpQueryIDs)
	if err = psq.Select(progresssnapshot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) IDsX(ctx context.Context) []int {
	ids, err := psq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (psq *ProgressSnapshotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, psq.ctx, ent.OpQueryCount)
	if err := psq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, psq, querierCount[*ProgressSnapshotQuery](), psq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) CountX(ctx context.Context) int {
	count, err := psq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (psq *ProgressSnapshotQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, psq.ctx, ent.OpQueryExist)
	switch _, err := psq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (psq *ProgressSnapshotQuery) ExistX(ctx context.Context) bool {
	exist, err := psq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProgressSnapshotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (psq *ProgressSnapshotQuery) Clone() *ProgressSnapshotQuery {
	if psq == nil {
		return nil
	}
	return &ProgressSnapshotQuery{
		config:     psq.config,
		ctx:        psq.ctx.Clone(),
		order:      append([]progresssnapshot.OrderOption{}, psq.order...),
		inters:     append([]Interceptor{}, psq.inters...),
		predicates: append([]predicate.ProgressSnapshot{}, psq.predicates...),
		// clone intermediate query.
		sql:  psq.sql.Clone(),
		path: psq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProgressSnapshot.Query().
//		GroupBy(progresssnapshot.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (psq *ProgressSnapshotQuery) GroupBy(field string, fields ...string) *ProgressSnapshotGroupBy {
	psq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProgressSnapshotGroupBy{build: psq}
	grbuild.flds = &psq.ctx.Fields
	grbuild.label = progresssnapshot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.ProgressSnapshot.Query().
//		Select(progresssnapshot.FieldSequence).
//		Scan(ctx, &v)
func (psq *ProgressSnapshotQuery) Select(fields ...string) *ProgressSnapshotSelect {
	psq.ctx.Fields = append(psq.ctx.Fields, fields...)
	sbuild := &ProgressSnapshotSelect{ProgressSnapshotQuery: psq}
	sbuild.label = progresssnapshot.Label
	sbuild.flds, sbuild.scan = &psq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProgressSnapshotSelect configured with the given aggregations.
func (psq *ProgressSnapshotQuery) Aggregate(fns ...AggregateFunc) *ProgressSnapshotSelect {
	return psq.Select().Aggregate(fns...)
}

func (psq *ProgressSnapshotQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range psq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, psq); err != nil {
				return err
			}
		}
	}
	for _, f := range psq.ctx.Fields {
		if !progresssnapshot.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if psq.path != nil {
		prev, err := psq.path(ctx)
		if err != nil {
			return err
		}
		psq.sql = prev
	}
	return nil
}

func (psq *ProgressSnapshotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProgressSnapshot, error) {
	var (
		nodes = []*ProgressSnapshot{}
		_spec = psq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProgressSnapshot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProgressSnapshot{config: psq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, psq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (psq *ProgressSnapshotQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := psq.querySpec()
	_spec.Node.Columns = psq.ctx.Fields
	if len(psq.ctx.Fields) > 0 {
		_spec.Unique = psq.ctx.Unique != nil && *psq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, psq.driver, _spec)
}

func (psq *ProgressSnapshotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(progresssnapshot.Table, progresssnapshot.Columns, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	_spec.From = psq.sql
	if unique := psq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if psq.path != nil {
		_spec.Unique = true
	}
	if fields := psq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progresssnapshot.FieldID)
		for i := range fields {
			if fields[i] != progresssnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := psq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := psq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := psq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := psq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (psq *ProgressSnapshotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(psq.driver.Dialect())
	t1 := builder.Table(progresssnapshot.Table)
	columns := psq.ctx.Fields
	if len(columns) == 0 {
		columns = progresssnapshot.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if psq.sql != nil {
		selector = psq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if psq.ctx.Unique != nil && *psq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range psq.predicates {
		p(selector)
	}
	for _, p := range psq.order {
		p(selector)
	}
	if offset := psq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := psq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ProgressSnapshotGroupBy is the group-by builder for ProgressSnapshot entities.
type ProgressSnapshotGroupBy struct {
	selector
	build *ProgressSnapshotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (psgb *ProgressSnapshotGroupBy) Aggregate(fns ...AggregateFunc) *ProgressSnapshotGroupBy {
	psgb.fns = append(psgb.fns, fns...)
	return psgb
}

// Scan applies the selector query and scans the result into the given value.
func (psgb *ProgressSnapshotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, psgb.build.ctx, ent.OpQueryGroupBy)
	if err := psgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProgressSnapshotQuery, *ProgressSnapshotGroupBy](ctx, psgb.build, psgb, psgb.build.inters, v)
}

func (psgb *ProgressSnapshotGroupBy) sqlScan(ctx context.Context, root *ProgressSnapshotQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(psgb.fns))
	for _, fn := range psgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*psgb.flds)+len(psgb.fns))
		for _, f := range *psgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*psgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := psgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ProgressSnapshotSelect is the builder for selecting fields of ProgressSnapshot entities.
type ProgressSnapshotSelect struct {
	*ProgressSnapshotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pss *ProgressSnapshotSelect) Aggregate(fns ...AggregateFunc) *ProgressSnapshotSelect {
	pss.fns = append(pss.fns, fns...)
	return pss
}

// Scan applies the selector query and scans the result into the given value.
func (pss *ProgressSnapshotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pss.ctx, ent.OpQuerySelect)
	if err := pss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProgressSnapshotQuery, *ProgressSnapshotSelect](ctx, pss.ProgressSnapshotQuery, pss, pss.inters, v)
}

func (pss *ProgressSnapshotSelect) sqlScan(ctx context.Context, root *ProgressSnapshotQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pss.fns))
	for _, fn := range pss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
