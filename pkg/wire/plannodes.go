package wire

import "github.com/chazu/planwire/pkg/plan"

// ---------------------------------------------------------------------------
// Plan-node variant encoders.
//
// Every variant writes its tag, then its declared fields in fixed order. The
// shared base block goes through encodePlanInfo so reduced-mode omission
// happens in one place.
// ---------------------------------------------------------------------------

// encodePlanInfo emits the base fields shared by all plan nodes. In reduced
// mode the node ids, cost estimates, flow, dispatch, and slice table are
// omitted: two structurally identical plans then encode identically even when
// the planner assigned them different ids or costs.
func (e *Encoder) encodePlanInfo(node *plan.Plan) error {
	if e.full {
		e.writeInt32(node.PlanNodeID)
		e.writeInt32(node.PlanParentNodeID)

		e.writeFloat64(node.StartupCost)
		e.writeFloat64(node.TotalCost)
		e.writeFloat64(node.PlanRows)
		e.writeInt32(node.PlanWidth)
	}

	if err := e.encodeList(node.Targetlist); err != nil {
		return err
	}
	if err := e.encodeList(node.Qual); err != nil {
		return err
	}

	e.encodeBitmapset(node.ExtParam)
	e.encodeBitmapset(node.AllParam)

	e.writeInt32(node.NParamExec)

	if e.full {
		if err := e.encodeNode(nodeOrNil(node.Flow)); err != nil {
			return err
		}
		e.writeInt32(node.Dispatch)
		e.writeBool(node.DirectDispatch.IsDirectDispatch)
		if err := e.encodeList(node.DirectDispatch.ContentIDs); err != nil {
			return err
		}

		e.writeInt32(node.NMotionNodes)
		e.writeInt32(node.NInitPlans)

		if err := e.encodeNode(node.SliceTable); err != nil {
			return err
		}
	}

	if err := e.encodeNode(node.Lefttree); err != nil {
		return err
	}
	if err := e.encodeNode(node.Righttree); err != nil {
		return err
	}
	if err := e.encodeList(node.InitPlan); err != nil {
		return err
	}

	if e.full {
		e.writeUint64(node.OperatorMemKB)
	}
	return nil
}

// nodeOrNil converts a possibly-nil typed pointer into a plan.Node that is
// actually nil, so the walker's nil check fires instead of dispatching on a
// typed nil.
func nodeOrNil[T any, P interface {
	*T
	plan.Node
}](p P) plan.Node {
	if p == nil {
		return nil
	}
	return p
}

// encodeScanInfo emits the base block plus the scan relation index.
func (e *Encoder) encodeScanInfo(node *plan.Scan) error {
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeIndex(node.Scanrelid)
	return nil
}

// encodeJoinInfo emits the base block plus the join discriminator and qual.
func (e *Encoder) encodeJoinInfo(node *plan.JoinFields) error {
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeBool(node.PrefetchInner)
	e.writeEnum(int16(node.JoinType))
	return e.encodeList(node.JoinQual)
}

func (e *Encoder) encodePlannedStmt(node *plan.PlannedStmt) error {
	e.writeTag(TagPlannedStmt)

	e.writeEnum(int16(node.CommandType))
	e.writeEnum(int16(node.PlanGen))
	e.writeBool(node.CanSetTag)
	e.writeBool(node.TransientPlan)

	if err := e.encodeNode(node.PlanTree); err != nil {
		return err
	}
	if err := e.encodeList(node.Rtable); err != nil {
		return err
	}

	if err := e.encodeList(node.ResultRelations); err != nil {
		return err
	}
	if err := e.encodeNode(node.UtilityStmt); err != nil {
		return err
	}
	if err := e.encodeNode(node.IntoClause); err != nil {
		return err
	}
	if err := e.encodeList(node.Subplans); err != nil {
		return err
	}
	e.encodeBitmapset(node.RewindPlanIDs)
	if err := e.encodeList(node.ReturningLists); err != nil {
		return err
	}

	if err := e.encodeNode(node.ResultPartitions); err != nil {
		return err
	}
	if err := e.encodeList(node.ResultAosegnos); err != nil {
		return err
	}
	if err := e.encodeList(node.QueryPartOids); err != nil {
		return err
	}
	if err := e.encodeList(node.QueryPartsMetadata); err != nil {
		return err
	}
	if err := e.encodeList(node.NumSelectorsPerScanID); err != nil {
		return err
	}
	if err := e.encodeList(node.RowMarks); err != nil {
		return err
	}
	if err := e.encodeList(node.RelationOids); err != nil {
		return err
	}
	if err := e.encodeList(node.InvalItems); err != nil {
		return err
	}
	e.writeInt32(node.NCrossLevelParams)
	e.writeInt32(node.NMotionNodes)
	e.writeInt32(node.NInitPlans)

	// Don't serialize policy.
	if err := e.encodeNode(node.SliceTable); err != nil {
		return err
	}

	e.writeUint64(node.QueryMem)
	return e.encodeList(node.TransientTypeRecords)
}

func (e *Encoder) encodeResult(node *plan.Result) error {
	e.writeTag(TagResult)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	return e.encodeNode(node.ResConstantQual)
}

func (e *Encoder) encodeRepeat(node *plan.Repeat) error {
	e.writeTag(TagRepeat)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	if err := e.encodeNode(node.RepeatCountExpr); err != nil {
		return err
	}
	e.writeUint64(node.Grouping)
	return nil
}

func (e *Encoder) encodeAppend(node *plan.Append) error {
	e.writeTag(TagAppend)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	if err := e.encodeList(node.Appendplans); err != nil {
		return err
	}
	e.writeBool(node.IsTarget)
	e.writeBool(node.IsZapped)
	e.writeBool(node.HasXslice)
	return nil
}

func (e *Encoder) encodeSequence(node *plan.Sequence) error {
	e.writeTag(TagSequence)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	return e.encodeList(node.Subplans)
}

func (e *Encoder) encodeBitmapAnd(node *plan.BitmapAnd) error {
	e.writeTag(TagBitmapAnd)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	return e.encodeList(node.Bitmapplans)
}

func (e *Encoder) encodeBitmapOr(node *plan.BitmapOr) error {
	e.writeTag(TagBitmapOr)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	return e.encodeList(node.Bitmapplans)
}

func (e *Encoder) encodeSeqScan(node *plan.SeqScan) error {
	e.writeTag(TagSeqScan)
	return e.encodeScanInfo(&node.Scan)
}

func (e *Encoder) encodeAppendOnlyScan(node *plan.AppendOnlyScan) error {
	e.writeTag(TagAppendOnlyScan)
	return e.encodeScanInfo(&node.Scan)
}

func (e *Encoder) encodeAOCSScan(node *plan.AOCSScan) error {
	e.writeTag(TagAOCSScan)
	return e.encodeScanInfo(&node.Scan)
}

func (e *Encoder) encodeTableScan(node *plan.TableScan) error {
	e.writeTag(TagTableScan)
	return e.encodeScanInfo(&node.Scan)
}

func (e *Encoder) encodeDynamicTableScan(node *plan.DynamicTableScan) error {
	e.writeTag(TagDynamicTableScan)
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}
	e.writeInt32(node.PartIndex)
	e.writeInt32(node.PartIndexPrintable)
	return nil
}

func (e *Encoder) encodeExternalScan(node *plan.ExternalScan) error {
	e.writeTag(TagExternalScan)
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}
	if err := e.encodeList(node.URIList); err != nil {
		return err
	}
	e.writeString(node.FmtOptString)
	e.writeByte(node.FmtType)
	e.writeBool(node.IsMasterOnly)
	e.writeInt32(node.RejLimit)
	e.writeBool(node.RejLimitInRows)
	e.writeOid(node.Fmterrtbl)
	e.writeInt32(node.Encoding)
	e.writeInt32(node.Scancounter)
	return nil
}

// encodeIndexScanFields is shared by the plain, dynamic, and bitmap index
// scans.
func (e *Encoder) encodeIndexScanFields(node *plan.IndexScan) error {
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}
	e.writeOid(node.Indexid)
	if err := e.encodeList(node.IndexQual); err != nil {
		return err
	}
	if err := e.encodeList(node.IndexQualOrig); err != nil {
		return err
	}
	if err := e.encodeList(node.IndexStrategy); err != nil {
		return err
	}
	if err := e.encodeList(node.IndexSubtype); err != nil {
		return err
	}
	e.writeEnum(int16(node.IndexOrderDir))
	return nil
}

func (e *Encoder) encodeIndexScan(node *plan.IndexScan) error {
	e.writeTag(TagIndexScan)
	return e.encodeIndexScanFields(node)
}

// encodeLogicalIndexInfo is a helper block, not a dispatched variant: it has
// no tag of its own.
func (e *Encoder) encodeLogicalIndexInfo(node *plan.LogicalIndexInfo) error {
	e.writeOid(node.LogicalIndexOid)
	e.writeAttrNumberArray(node.IndexKeys)
	if err := e.encodeList(node.IndPred); err != nil {
		return err
	}
	if err := e.encodeList(node.IndExprs); err != nil {
		return err
	}
	e.writeBool(node.IndIsUnique)
	e.writeEnum(int16(node.IndType))
	if err := e.encodeNode(node.PartCons); err != nil {
		return err
	}
	return e.encodeList(node.DefaultLevels)
}

func (e *Encoder) encodeDynamicIndexScan(node *plan.DynamicIndexScan) error {
	e.writeTag(TagDynamicIndexScan)
	if err := e.encodeIndexScanFields(&node.IndexScan); err != nil {
		return err
	}
	e.writeInt32(node.PartIndex)
	e.writeInt32(node.PartIndexPrintable)
	// Presence flag then the index metadata block.
	e.writeBool(node.LogicalIndexInfo != nil)
	if node.LogicalIndexInfo != nil {
		return e.encodeLogicalIndexInfo(node.LogicalIndexInfo)
	}
	return nil
}

func (e *Encoder) encodeBitmapIndexScan(node *plan.BitmapIndexScan) error {
	e.writeTag(TagBitmapIndexScan)
	return e.encodeIndexScanFields(&node.IndexScan)
}

func (e *Encoder) encodeBitmapHeapScan(node *plan.BitmapHeapScan) error {
	e.writeTag(TagBitmapHeapScan)
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}
	return e.encodeList(node.BitmapQualOrig)
}

func (e *Encoder) encodeBitmapAppendOnlyScan(node *plan.BitmapAppendOnlyScan) error {
	e.writeTag(TagBitmapAppendOnlyScan)
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}
	if err := e.encodeList(node.BitmapQualOrig); err != nil {
		return err
	}
	e.writeBool(node.IsAORow)
	return nil
}

func (e *Encoder) encodeBitmapTableScan(node *plan.BitmapTableScan) error {
	e.writeTag(TagBitmapTableScan)
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}
	return e.encodeList(node.BitmapQualOrig)
}

func (e *Encoder) encodeTidScan(node *plan.TidScan) error {
	e.writeTag(TagTidScan)
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}
	return e.encodeList(node.TidQuals)
}

func (e *Encoder) encodeSubqueryScan(node *plan.SubqueryScan) error {
	e.writeTag(TagSubqueryScan)
	if err := e.encodeScanInfo(&node.Scan); err != nil {
		return err
	}

	// In reduced mode with a range table present, the subplan collapses to
	// the referenced relation identifier: cache keys must not depend on
	// subplan internals that are keyed separately.
	if !e.full && e.rtable != nil {
		e.writeOid(e.substituteRelid(node.Scanrelid))
		return nil
	}
	return e.encodeNode(node.Subplan)
	// Planner-only: subrtable -- not serialized.
}

// substituteRelid resolves a scan relation index against the reduced-mode
// range table. An index outside the table yields InvalidOid; a malformed
// entry is simply not substitutable and also yields InvalidOid.
func (e *Encoder) substituteRelid(scanrelid plan.Index) plan.Oid {
	i := int(scanrelid) - 1
	if e.rtable == nil || i < 0 || i >= len(e.rtable.Nodes) {
		return plan.InvalidOid
	}
	if rte, ok := e.rtable.Nodes[i].(*plan.RangeTblEntry); ok {
		return rte.Relid
	}
	return plan.InvalidOid
}

func (e *Encoder) encodeFunctionScan(node *plan.FunctionScan) error {
	e.writeTag(TagFunctionScan)
	return e.encodeScanInfo(&node.Scan)
}

func (e *Encoder) encodeValuesScan(node *plan.ValuesScan) error {
	e.writeTag(TagValuesScan)
	return e.encodeScanInfo(&node.Scan)
}

func (e *Encoder) encodeTableFunctionScan(node *plan.TableFunctionScan) error {
	e.writeTag(TagTableFunctionScan)
	return e.encodeScanInfo(&node.Scan)
}

func (e *Encoder) encodeNestLoop(node *plan.NestLoop) error {
	e.writeTag(TagNestLoop)
	if err := e.encodeJoinInfo(&node.JoinFields); err != nil {
		return err
	}
	e.writeBool(node.SharedOuter)
	e.writeBool(node.SingletonOuter)
	return nil
}

func (e *Encoder) encodeMergeJoin(node *plan.MergeJoin) error {
	e.writeTag(TagMergeJoin)
	if err := e.encodeJoinInfo(&node.JoinFields); err != nil {
		return err
	}
	if err := e.encodeList(node.MergeClauses); err != nil {
		return err
	}
	e.writeBool(node.UniqueOuter)
	return nil
}

func (e *Encoder) encodeHashJoin(node *plan.HashJoin) error {
	e.writeTag(TagHashJoin)
	if err := e.encodeJoinInfo(&node.JoinFields); err != nil {
		return err
	}
	if err := e.encodeList(node.HashClauses); err != nil {
		return err
	}
	return e.encodeList(node.HashQualClauses)
}

func (e *Encoder) encodeAgg(node *plan.Agg) error {
	e.writeTag(TagAgg)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeEnum(int16(node.AggStrategy))
	e.writeAttrNumberArray(node.GrpColIdx)

	if e.full {
		e.writeInt64(node.NumGroups)
		e.writeInt32(node.TransSpace)
	}
	e.writeInt32(node.NumNullCols)
	e.writeUint64(node.InputGrouping)
	e.writeUint64(node.Grouping)
	e.writeBool(node.InputHasGrouping)
	e.writeInt32(node.RollupGSTimes)
	e.writeBool(node.LastAgg)
	e.writeBool(node.Streaming)
	return nil
}

func (e *Encoder) encodeWindowKey(node *plan.WindowKey) error {
	e.writeTag(TagWindowKey)
	e.writeAttrNumberArray(node.SortColIdx)
	e.writeOidArray(node.SortOperators)
	return e.encodeNode(node.Frame)
}

func (e *Encoder) encodeWindow(node *plan.Window) error {
	e.writeTag(TagWindow)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeAttrNumberArray(node.PartColIdx)
	return e.encodeList(node.WindowKeys)
}

func (e *Encoder) encodeMaterial(node *plan.Material) error {
	e.writeTag(TagMaterial)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeBool(node.CdbStrict)
	e.writeEnum(int16(node.ShareType))
	e.writeInt32(node.ShareID)
	e.writeInt32(node.DriverSlice)
	e.writeInt32(node.Nsharer)
	e.writeInt32(node.NsharerXslice)
	return nil
}

func (e *Encoder) encodeShareInputScan(node *plan.ShareInputScan) error {
	e.writeTag(TagShareInputScan)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeEnum(int16(node.ShareType))
	e.writeInt32(node.ShareID)
	e.writeInt32(node.DriverSlice)
	return nil
}

func (e *Encoder) encodeSort(node *plan.Sort) error {
	e.writeTag(TagSort)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeAttrNumberArray(node.SortColIdx)
	e.writeOidArray(node.SortOperators)

	if err := e.encodeNode(node.LimitOffset); err != nil {
		return err
	}
	if err := e.encodeNode(node.LimitCount); err != nil {
		return err
	}
	e.writeBool(node.NoDuplicates)

	e.writeEnum(int16(node.ShareType))
	e.writeInt32(node.ShareID)
	e.writeInt32(node.DriverSlice)
	e.writeInt32(node.Nsharer)
	e.writeInt32(node.NsharerXslice)
	return nil
}

func (e *Encoder) encodeUnique(node *plan.Unique) error {
	e.writeTag(TagUnique)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeAttrNumberArray(node.UniqColIdx)
	return nil
}

func (e *Encoder) encodeSetOp(node *plan.SetOp) error {
	e.writeTag(TagSetOp)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeEnum(int16(node.Cmd))
	e.writeAttrNumberArray(node.DupColIdx)
	e.writeInt32(node.FlagColIdx)
	return nil
}

func (e *Encoder) encodeLimit(node *plan.Limit) error {
	e.writeTag(TagLimit)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	if err := e.encodeNode(node.LimitOffset); err != nil {
		return err
	}
	return e.encodeNode(node.LimitCount)
}

func (e *Encoder) encodeHash(node *plan.Hash) error {
	e.writeTag(TagHash)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeBool(node.Rescannable)
	return nil
}

// Motion writes its own fields before the shared base block; the decoder
// reads them in the same order.
func (e *Encoder) encodeMotion(node *plan.Motion) error {
	e.writeTag(TagMotion)

	e.writeInt32(node.MotionID)
	e.writeEnum(int16(node.MotionType))
	e.writeBool(node.SendSorted)

	if err := e.encodeList(node.HashExpr); err != nil {
		return err
	}
	if err := e.encodeList(node.HashDataTypes); err != nil {
		return err
	}

	e.writeInt32Array(node.OutputSegIdx)

	e.writeAttrNumberArray(node.SortColIdx)
	e.writeOidArray(node.SortOperators)

	e.writeInt32(node.SegidColIdx)

	return e.encodePlanInfo(&node.Plan)
}

func (e *Encoder) encodeDML(node *plan.DML) error {
	e.writeTag(TagDML)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeIndex(node.Scanrelid)
	e.writeInt32(node.OidColIdx)
	e.writeInt32(node.ActionColIdx)
	e.writeInt32(node.CtidColIdx)
	e.writeInt32(node.TupleoidColIdx)
	return nil
}

func (e *Encoder) encodeSplitUpdate(node *plan.SplitUpdate) error {
	e.writeTag(TagSplitUpdate)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeInt32(node.ActionColIdx)
	e.writeInt32(node.CtidColIdx)
	e.writeInt32(node.TupleoidColIdx)
	if err := e.encodeList(node.InsertColIdx); err != nil {
		return err
	}
	return e.encodeList(node.DeleteColIdx)
}

func (e *Encoder) encodeRowTrigger(node *plan.RowTrigger) error {
	e.writeTag(TagRowTrigger)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeOid(node.Relid)
	e.writeInt32(node.EventFlags)
	if err := e.encodeList(node.OldValuesColIdx); err != nil {
		return err
	}
	return e.encodeList(node.NewValuesColIdx)
}

func (e *Encoder) encodeAssertOp(node *plan.AssertOp) error {
	e.writeTag(TagAssertOp)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeInt32(node.ErrCode)
	return e.encodeList(node.ErrMessage)
}

func (e *Encoder) encodePartitionSelector(node *plan.PartitionSelector) error {
	e.writeTag(TagPartitionSelector)
	if err := e.encodePlanInfo(&node.Plan); err != nil {
		return err
	}
	e.writeOid(node.Relid)
	e.writeInt32(node.NLevels)
	e.writeInt32(node.ScanID)
	e.writeInt32(node.SelectorID)
	if err := e.encodeList(node.LevelEqExpressions); err != nil {
		return err
	}
	if err := e.encodeList(node.LevelExpressions); err != nil {
		return err
	}
	if err := e.encodeNode(node.ResidualPredicate); err != nil {
		return err
	}
	if err := e.encodeNode(node.PropagationExpression); err != nil {
		return err
	}
	if err := e.encodeNode(node.PrintablePredicate); err != nil {
		return err
	}
	e.writeBool(node.StaticSelection)
	if err := e.encodeList(node.StaticPartOids); err != nil {
		return err
	}
	return e.encodeList(node.StaticScanIds)
}

func (e *Encoder) encodeFlow(node *plan.Flow) error {
	e.writeTag(TagFlow)

	e.writeEnum(int16(node.FlowType))
	e.writeEnum(int16(node.ReqMove))
	e.writeEnum(int16(node.LocusType))
	e.writeInt32(node.SegIndex)

	// Same array format as in Sort nodes.
	e.writeAttrNumberArray(node.SortColIdx)
	e.writeOidArray(node.SortOperators)

	if err := e.encodeList(node.HashExpr); err != nil {
		return err
	}

	return e.encodeNode(nodeOrNil(node.FlowBeforeReqMove))
}

func (e *Encoder) encodeSlice(node *plan.Slice) error {
	e.writeTag(TagSlice)

	e.writeInt32(node.SliceIndex)
	e.writeInt32(node.ParentIndex)
	if err := e.encodeList(node.Children); err != nil {
		return err
	}

	e.writeEnum(int16(node.GangType))
	e.writeInt32(node.GangSize)
	e.writeInt32(node.NumGangMembersToBeActive)

	e.writeBool(node.DirectDispatch.IsDirectDispatch)
	if err := e.encodeList(node.DirectDispatch.ContentIDs); err != nil {
		return err
	}

	// Don't serialize primaryGang.
	return e.encodeList(node.PrimaryProcesses)
}

func (e *Encoder) encodeSliceTable(node *plan.SliceTable) error {
	e.writeTag(TagSliceTable)
	e.writeInt32(node.NMotions)
	e.writeInt32(node.NInitPlans)
	e.writeInt32(node.LocalSlice)
	if err := e.encodeList(node.Slices); err != nil {
		return err
	}
	e.writeBool(node.Instrument)
	return nil
}

func (e *Encoder) encodeCdbProcess(node *plan.CdbProcess) error {
	e.writeTag(TagCdbProcess)
	e.writeString(node.ListenerAddr)
	e.writeInt32(node.ListenerPort)
	e.writeInt32(node.Pid)
	e.writeInt32(node.ContentID)
	return nil
}
