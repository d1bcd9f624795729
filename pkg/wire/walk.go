package wire

import (
	"fmt"

	"github.com/chazu/planwire/pkg/plan"
)

// encodeNode is the single recursion point of the serializer. Given any
// reference it emits the complete encoding: nil becomes the 2-byte null tag,
// lists and value leaves go to their own encoders, and everything else
// dispatches on the concrete node type. Traversal is strict pre-order
// depth-first; a parent's fields interleave with its children exactly as each
// variant declares them.
//
// Shared subtrees are re-encoded at every reference; input trees are acyclic
// by construction so no cycle detection is done.
//
// A type outside the registry is a fatal error: there is no skip-and-continue
// path, because a misaligned stream is unrecoverable for the decoder.
func (e *Encoder) encodeNode(obj plan.Node) error {
	if obj == nil {
		e.writeTag(TagNull)
		return nil
	}

	switch n := obj.(type) {
	case *plan.List:
		return e.encodeList(n)

	case *plan.Integer, *plan.Float, *plan.String, *plan.BitString, *plan.Null:
		return e.encodeValue(n)

	// Plan nodes
	case *plan.PlannedStmt:
		return e.encodePlannedStmt(n)
	case *plan.Result:
		return e.encodeResult(n)
	case *plan.Repeat:
		return e.encodeRepeat(n)
	case *plan.Append:
		return e.encodeAppend(n)
	case *plan.Sequence:
		return e.encodeSequence(n)
	case *plan.BitmapAnd:
		return e.encodeBitmapAnd(n)
	case *plan.BitmapOr:
		return e.encodeBitmapOr(n)
	case *plan.SeqScan:
		return e.encodeSeqScan(n)
	case *plan.AppendOnlyScan:
		return e.encodeAppendOnlyScan(n)
	case *plan.AOCSScan:
		return e.encodeAOCSScan(n)
	case *plan.TableScan:
		return e.encodeTableScan(n)
	case *plan.DynamicTableScan:
		return e.encodeDynamicTableScan(n)
	case *plan.ExternalScan:
		return e.encodeExternalScan(n)
	case *plan.IndexScan:
		return e.encodeIndexScan(n)
	case *plan.DynamicIndexScan:
		return e.encodeDynamicIndexScan(n)
	case *plan.BitmapIndexScan:
		return e.encodeBitmapIndexScan(n)
	case *plan.BitmapHeapScan:
		return e.encodeBitmapHeapScan(n)
	case *plan.BitmapAppendOnlyScan:
		return e.encodeBitmapAppendOnlyScan(n)
	case *plan.BitmapTableScan:
		return e.encodeBitmapTableScan(n)
	case *plan.TidScan:
		return e.encodeTidScan(n)
	case *plan.SubqueryScan:
		return e.encodeSubqueryScan(n)
	case *plan.FunctionScan:
		return e.encodeFunctionScan(n)
	case *plan.ValuesScan:
		return e.encodeValuesScan(n)
	case *plan.TableFunctionScan:
		return e.encodeTableFunctionScan(n)
	case *plan.NestLoop:
		return e.encodeNestLoop(n)
	case *plan.MergeJoin:
		return e.encodeMergeJoin(n)
	case *plan.HashJoin:
		return e.encodeHashJoin(n)
	case *plan.Agg:
		return e.encodeAgg(n)
	case *plan.WindowKey:
		return e.encodeWindowKey(n)
	case *plan.Window:
		return e.encodeWindow(n)
	case *plan.Material:
		return e.encodeMaterial(n)
	case *plan.ShareInputScan:
		return e.encodeShareInputScan(n)
	case *plan.Sort:
		return e.encodeSort(n)
	case *plan.Unique:
		return e.encodeUnique(n)
	case *plan.SetOp:
		return e.encodeSetOp(n)
	case *plan.Limit:
		return e.encodeLimit(n)
	case *plan.Hash:
		return e.encodeHash(n)
	case *plan.Motion:
		return e.encodeMotion(n)
	case *plan.DML:
		return e.encodeDML(n)
	case *plan.SplitUpdate:
		return e.encodeSplitUpdate(n)
	case *plan.RowTrigger:
		return e.encodeRowTrigger(n)
	case *plan.AssertOp:
		return e.encodeAssertOp(n)
	case *plan.PartitionSelector:
		return e.encodePartitionSelector(n)
	case *plan.Flow:
		return e.encodeFlow(n)
	case *plan.Slice:
		return e.encodeSlice(n)
	case *plan.SliceTable:
		return e.encodeSliceTable(n)
	case *plan.CdbProcess:
		return e.encodeCdbProcess(n)

	// Expression nodes
	case *plan.Alias:
		return e.encodeAlias(n)
	case *plan.RangeVar:
		return e.encodeRangeVar(n)
	case *plan.IntoClause:
		return e.encodeIntoClause(n)
	case *plan.Var:
		return e.encodeVar(n)
	case *plan.Const:
		return e.encodeConst(n)
	case *plan.Param:
		return e.encodeParam(n)
	case *plan.Aggref:
		return e.encodeAggref(n)
	case *plan.AggOrder:
		return e.encodeAggOrder(n)
	case *plan.WindowRef:
		return e.encodeWindowRef(n)
	case *plan.ArrayRef:
		return e.encodeArrayRef(n)
	case *plan.FuncExpr:
		return e.encodeFuncExpr(n)
	case *plan.OpExpr:
		return e.encodeOpExpr(n)
	case *plan.DistinctExpr:
		return e.encodeDistinctExpr(n)
	case *plan.ScalarArrayOpExpr:
		return e.encodeScalarArrayOpExpr(n)
	case *plan.BoolExpr:
		return e.encodeBoolExpr(n)
	case *plan.SubLink:
		return e.encodeSubLink(n)
	case *plan.SubPlan:
		return e.encodeSubPlan(n)
	case *plan.FieldSelect:
		return e.encodeFieldSelect(n)
	case *plan.FieldStore:
		return e.encodeFieldStore(n)
	case *plan.RelabelType:
		return e.encodeRelabelType(n)
	case *plan.ConvertRowtypeExpr:
		return e.encodeConvertRowtypeExpr(n)
	case *plan.CaseExpr:
		return e.encodeCaseExpr(n)
	case *plan.CaseWhen:
		return e.encodeCaseWhen(n)
	case *plan.CaseTestExpr:
		return e.encodeCaseTestExpr(n)
	case *plan.ArrayExpr:
		return e.encodeArrayExpr(n)
	case *plan.RowExpr:
		return e.encodeRowExpr(n)
	case *plan.RowCompareExpr:
		return e.encodeRowCompareExpr(n)
	case *plan.CoalesceExpr:
		return e.encodeCoalesceExpr(n)
	case *plan.MinMaxExpr:
		return e.encodeMinMaxExpr(n)
	case *plan.NullIfExpr:
		return e.encodeNullIfExpr(n)
	case *plan.NullTest:
		return e.encodeNullTest(n)
	case *plan.BooleanTest:
		return e.encodeBooleanTest(n)
	case *plan.CoerceToDomain:
		return e.encodeCoerceToDomain(n)
	case *plan.CoerceToDomainValue:
		return e.encodeCoerceToDomainValue(n)
	case *plan.SetToDefault:
		return e.encodeSetToDefault(n)
	case *plan.CurrentOfExpr:
		return e.encodeCurrentOfExpr(n)
	case *plan.TargetEntry:
		return e.encodeTargetEntry(n)
	case *plan.RangeTblRef:
		return e.encodeRangeTblRef(n)
	case *plan.JoinExpr:
		return e.encodeJoinExpr(n)
	case *plan.FromExpr:
		return e.encodeFromExpr(n)
	case *plan.GroupingFunc:
		return e.encodeGroupingFunc(n)
	case *plan.Grouping:
		return e.encodeGrouping(n)
	case *plan.GroupId:
		return e.encodeGroupId(n)
	case *plan.PercentileExpr:
		return e.encodePercentileExpr(n)
	case *plan.DMLActionExpr:
		return e.encodeDMLActionExpr(n)
	case *plan.PartOidExpr:
		return e.encodePartOidExpr(n)
	case *plan.PartDefaultExpr:
		return e.encodePartDefaultExpr(n)
	case *plan.PartBoundExpr:
		return e.encodePartBoundExpr(n)
	case *plan.PartBoundInclusionExpr:
		return e.encodePartBoundInclusionExpr(n)
	case *plan.PartBoundOpenExpr:
		return e.encodePartBoundOpenExpr(n)
	case *plan.TableValueExpr:
		return e.encodeTableValueExpr(n)

	// Parse-tree and statement nodes
	case *plan.Query:
		return e.encodeQuery(n)
	case *plan.RangeTblEntry:
		return e.encodeRangeTblEntry(n)
	case *plan.AExpr:
		return e.encodeAExpr(n)
	case *plan.ColumnRef:
		return e.encodeColumnRef(n)
	case *plan.ParamRef:
		return e.encodeParamRef(n)
	case *plan.AConst:
		return e.encodeAConst(n)
	case *plan.AIndices:
		return e.encodeAIndices(n)
	case *plan.AIndirection:
		return e.encodeAIndirection(n)
	case *plan.ResTarget:
		return e.encodeResTarget(n)
	case *plan.Constraint:
		return e.encodeConstraint(n)
	case *plan.FkConstraint:
		return e.encodeFkConstraint(n)
	case *plan.FuncCall:
		return e.encodeFuncCall(n)
	case *plan.DefElem:
		return e.encodeDefElem(n)
	case *plan.TypeName:
		return e.encodeTypeName(n)
	case *plan.TypeCast:
		return e.encodeTypeCast(n)
	case *plan.ColumnDef:
		return e.encodeColumnDef(n)
	case *plan.IndexElem:
		return e.encodeIndexElem(n)
	case *plan.SortClause:
		return e.encodeSortClause(n)
	case *plan.GroupClause:
		return e.encodeGroupClause(n)
	case *plan.GroupingClause:
		return e.encodeGroupingClause(n)
	case *plan.WindowSpec:
		return e.encodeWindowSpec(n)
	case *plan.WindowFrame:
		return e.encodeWindowFrame(n)
	case *plan.WindowFrameEdge:
		return e.encodeWindowFrameEdge(n)
	case *plan.RowMarkClause:
		return e.encodeRowMarkClause(n)
	case *plan.WithClause:
		return e.encodeWithClause(n)
	case *plan.CommonTableExpr:
		return e.encodeCommonTableExpr(n)
	case *plan.SetOperationStmt:
		return e.encodeSetOperationStmt(n)
	case *plan.CreateStmt:
		return e.encodeCreateStmt(n)
	case *plan.InheritPartitionCmd:
		return e.encodeInheritPartitionCmd(n)
	case *plan.AlterPartitionCmd:
		return e.encodeAlterPartitionCmd(n)
	case *plan.AlterPartitionId:
		return e.encodeAlterPartitionId(n)
	case *plan.PartitionBy:
		return e.encodePartitionBy(n)
	case *plan.PartitionElem:
		return e.encodePartitionElem(n)
	case *plan.PartitionRangeItem:
		return e.encodePartitionRangeItem(n)
	case *plan.PartitionBoundSpec:
		return e.encodePartitionBoundSpec(n)
	case *plan.PartitionSpec:
		return e.encodePartitionSpec(n)
	case *plan.PartitionValuesSpec:
		return e.encodePartitionValuesSpec(n)
	case *plan.Partition:
		return e.encodePartition(n)
	case *plan.PartitionRule:
		return e.encodePartitionRule(n)
	case *plan.PartitionNode:
		return e.encodePartitionNode(n)
	case *plan.PgPartRule:
		return e.encodePgPartRule(n)
	case *plan.IndexStmt:
		return e.encodeIndexStmt(n)
	case *plan.ReindexStmt:
		return e.encodeReindexStmt(n)
	case *plan.DropStmt:
		return e.encodeDropStmt(n)
	case *plan.TruncateStmt:
		return e.encodeTruncateStmt(n)
	case *plan.AlterTableStmt:
		return e.encodeAlterTableStmt(n)
	case *plan.AlterTableCmd:
		return e.encodeAlterTableCmd(n)
	case *plan.CreateSeqStmt:
		return e.encodeCreateSeqStmt(n)
	case *plan.AlterSeqStmt:
		return e.encodeAlterSeqStmt(n)
	case *plan.CreatedbStmt:
		return e.encodeCreatedbStmt(n)
	case *plan.DropdbStmt:
		return e.encodeDropdbStmt(n)
	case *plan.CreateDomainStmt:
		return e.encodeCreateDomainStmt(n)
	case *plan.AlterDomainStmt:
		return e.encodeAlterDomainStmt(n)
	case *plan.CreateFunctionStmt:
		return e.encodeCreateFunctionStmt(n)
	case *plan.FunctionParameter:
		return e.encodeFunctionParameter(n)
	case *plan.RemoveFuncStmt:
		return e.encodeRemoveFuncStmt(n)
	case *plan.AlterFunctionStmt:
		return e.encodeAlterFunctionStmt(n)
	case *plan.DefineStmt:
		return e.encodeDefineStmt(n)
	case *plan.CompositeTypeStmt:
		return e.encodeCompositeTypeStmt(n)
	case *plan.ViewStmt:
		return e.encodeViewStmt(n)
	case *plan.RuleStmt:
		return e.encodeRuleStmt(n)
	case *plan.TransactionStmt:
		return e.encodeTransactionStmt(n)
	case *plan.DeclareCursorStmt:
		return e.encodeDeclareCursorStmt(n)
	case *plan.NotifyStmt:
		return e.encodeNotifyStmt(n)
	case *plan.CopyStmt:
		return e.encodeCopyStmt(n)
	case *plan.SingleRowErrorDesc:
		return e.encodeSingleRowErrorDesc(n)
	case *plan.VacuumStmt:
		return e.encodeVacuumStmt(n)
	case *plan.ClusterStmt:
		return e.encodeClusterStmt(n)
	case *plan.LockStmt:
		return e.encodeLockStmt(n)
	case *plan.RenameStmt:
		return e.encodeRenameStmt(n)
	case *plan.GrantStmt:
		return e.encodeGrantStmt(n)
	case *plan.PrivGrantee:
		return e.encodePrivGrantee(n)
	case *plan.FuncWithArgs:
		return e.encodeFuncWithArgs(n)
	case *plan.GrantRoleStmt:
		return e.encodeGrantRoleStmt(n)
	case *plan.CreateSchemaStmt:
		return e.encodeCreateSchemaStmt(n)
	case *plan.CreateRoleStmt:
		return e.encodeCreateRoleStmt(n)
	case *plan.DropRoleStmt:
		return e.encodeDropRoleStmt(n)
	case *plan.AlterRoleStmt:
		return e.encodeAlterRoleStmt(n)
	case *plan.AlterRoleSetStmt:
		return e.encodeAlterRoleSetStmt(n)
	case *plan.AlterObjectSchemaStmt:
		return e.encodeAlterObjectSchemaStmt(n)
	case *plan.AlterOwnerStmt:
		return e.encodeAlterOwnerStmt(n)
	case *plan.TupleDescNode:
		return e.encodeTupleDescNode(n)
	case *plan.SegfileMapNode:
		return e.encodeSegfileMapNode(n)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownNode, obj)
	}
}
