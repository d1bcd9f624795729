package wire

import "github.com/chazu/planwire/pkg/plan"

// ---------------------------------------------------------------------------
// Expression-node variant encoders.
// ---------------------------------------------------------------------------

func (e *Encoder) encodeAlias(node *plan.Alias) error {
	e.writeTag(TagAlias)
	e.writeString(node.Aliasname)
	return e.encodeList(node.Colnames)
}

func (e *Encoder) encodeRangeVar(node *plan.RangeVar) error {
	e.writeTag(TagRangeVar)
	e.writeString(node.Catalogname)
	e.writeString(node.Schemaname)
	e.writeString(node.Relname)
	e.writeEnum(int16(node.InhOpt))
	e.writeBool(node.IsTemp)
	if err := e.encodeNode(nodeOrNil(node.Alias)); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeIntoClause(node *plan.IntoClause) error {
	e.writeTag(TagIntoClause)
	if err := e.encodeNode(nodeOrNil(node.Rel)); err != nil {
		return err
	}
	if err := e.encodeList(node.ColNames); err != nil {
		return err
	}
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	e.writeEnum(int16(node.OnCommit))
	e.writeString(node.TableSpaceName)
	return nil
}

func (e *Encoder) encodeVar(node *plan.Var) error {
	e.writeTag(TagVar)
	e.writeIndex(node.Varno)
	e.writeAttrNumber(node.Varattno)
	e.writeOid(node.Vartype)
	e.writeInt32(node.Vartypmod)
	e.writeIndex(node.Varlevelsup)
	e.writeIndex(node.Varnoold)
	e.writeAttrNumber(node.Varoattno)
	return nil
}

func (e *Encoder) encodeConst(node *plan.Const) error {
	e.writeTag(TagConst)
	e.writeOid(node.Consttype)
	e.writeInt32(node.Constlen)
	e.writeBool(node.Constbyval)
	e.writeBool(node.Constisnull)

	if !node.Constisnull {
		e.encodeDatum(node.Constvalue, node.Constbyval)
	}
	return nil
}

func (e *Encoder) encodeParam(node *plan.Param) error {
	e.writeTag(TagParam)
	e.writeEnum(int16(node.Paramkind))
	e.writeInt32(node.Paramid)
	e.writeOid(node.Paramtype)
	return nil
}

func (e *Encoder) encodeAggref(node *plan.Aggref) error {
	e.writeTag(TagAggref)
	e.writeOid(node.Aggfnoid)
	e.writeOid(node.Aggtype)
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	e.writeIndex(node.Agglevelsup)
	e.writeBool(node.Aggstar)
	e.writeBool(node.Aggdistinct)

	e.writeEnum(int16(node.Aggstage))
	return e.encodeNode(node.AggOrder)
}

func (e *Encoder) encodeAggOrder(node *plan.AggOrder) error {
	e.writeTag(TagAggOrder)
	e.writeBool(node.SortImplicit)
	if err := e.encodeList(node.SortClause); err != nil {
		return err
	}
	return e.encodeList(node.SortTargets)
}

func (e *Encoder) encodeWindowRef(node *plan.WindowRef) error {
	e.writeTag(TagWindowRef)
	e.writeOid(node.Winfnoid)
	e.writeOid(node.Restype)
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	e.writeIndex(node.Winlevelsup)
	e.writeBool(node.Windistinct)
	e.writeInt32(node.Winspec)
	e.writeInt32(node.Winindex)
	e.writeEnum(int16(node.Winstage))
	e.writeInt32(node.Winlevel)
	return nil
}

func (e *Encoder) encodeArrayRef(node *plan.ArrayRef) error {
	e.writeTag(TagArrayRef)
	e.writeOid(node.Refrestype)
	e.writeOid(node.Refarraytype)
	e.writeOid(node.Refelemtype)
	if err := e.encodeList(node.RefUpperIndexpr); err != nil {
		return err
	}
	if err := e.encodeList(node.RefLowerIndexpr); err != nil {
		return err
	}
	if err := e.encodeNode(node.Refexpr); err != nil {
		return err
	}
	return e.encodeNode(node.Refassgnexpr)
}

func (e *Encoder) encodeFuncExpr(node *plan.FuncExpr) error {
	e.writeTag(TagFuncExpr)
	e.writeOid(node.Funcid)
	e.writeOid(node.Funcresulttype)
	e.writeBool(node.Funcretset)
	e.writeEnum(int16(node.Funcformat))
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	e.writeBool(node.IsTablefunc)
	return nil
}

// opExprFields covers OpExpr, DistinctExpr, and NullIfExpr, which share one
// field layout behind different tags.
func (e *Encoder) opExprFields(opno, opfuncid, resulttype plan.Oid, retset bool, args *plan.List) error {
	e.writeOid(opno)
	e.writeOid(opfuncid)
	e.writeOid(resulttype)
	e.writeBool(retset)
	return e.encodeList(args)
}

func (e *Encoder) encodeOpExpr(node *plan.OpExpr) error {
	e.writeTag(TagOpExpr)
	return e.opExprFields(node.Opno, node.Opfuncid, node.Opresulttype, node.Opretset, node.Args)
}

func (e *Encoder) encodeDistinctExpr(node *plan.DistinctExpr) error {
	e.writeTag(TagDistinctExpr)
	return e.opExprFields(node.Opno, node.Opfuncid, node.Opresulttype, node.Opretset, node.Args)
}

func (e *Encoder) encodeScalarArrayOpExpr(node *plan.ScalarArrayOpExpr) error {
	e.writeTag(TagScalarArrayOpExpr)
	e.writeOid(node.Opno)
	e.writeOid(node.Opfuncid)
	e.writeBool(node.UseOr)
	return e.encodeList(node.Args)
}

func (e *Encoder) encodeBoolExpr(node *plan.BoolExpr) error {
	e.writeTag(TagBoolExpr)
	e.writeEnum(int16(node.Boolop))
	return e.encodeList(node.Args)
}

func (e *Encoder) encodeSubLink(node *plan.SubLink) error {
	e.writeTag(TagSubLink)
	e.writeEnum(int16(node.SubLinkType))
	if err := e.encodeNode(node.Testexpr); err != nil {
		return err
	}
	if err := e.encodeList(node.OperName); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return e.encodeNode(node.Subselect)
}

func (e *Encoder) encodeSubPlan(node *plan.SubPlan) error {
	e.writeTag(TagSubPlan)
	e.writeEnum(int16(node.SubLinkType))

	e.writeInt32(node.QDispSliceID)

	if err := e.encodeNode(node.Testexpr); err != nil {
		return err
	}
	if err := e.encodeList(node.ParamIds); err != nil {
		return err
	}

	e.writeInt32(node.PlanID)

	e.writeOid(node.FirstColType)
	e.writeInt32(node.FirstColTypmod)

	e.writeBool(node.UseHashTable)
	e.writeBool(node.UnknownEqFalse)

	e.writeBool(node.IsInitplan)
	e.writeBool(node.IsMultirow)

	if err := e.encodeList(node.SetParam); err != nil {
		return err
	}
	if err := e.encodeList(node.ParParam); err != nil {
		return err
	}
	return e.encodeList(node.Args)
}

func (e *Encoder) encodeFieldSelect(node *plan.FieldSelect) error {
	e.writeTag(TagFieldSelect)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	e.writeAttrNumber(node.Fieldnum)
	e.writeOid(node.Resulttype)
	e.writeInt32(node.Resulttypmod)
	return nil
}

func (e *Encoder) encodeFieldStore(node *plan.FieldStore) error {
	e.writeTag(TagFieldStore)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	if err := e.encodeList(node.Newvals); err != nil {
		return err
	}
	if err := e.encodeList(node.Fieldnums); err != nil {
		return err
	}
	e.writeOid(node.Resulttype)
	return nil
}

func (e *Encoder) encodeRelabelType(node *plan.RelabelType) error {
	e.writeTag(TagRelabelType)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	e.writeOid(node.Resulttype)
	e.writeInt32(node.Resulttypmod)
	e.writeEnum(int16(node.Relabelformat))
	return nil
}

func (e *Encoder) encodeConvertRowtypeExpr(node *plan.ConvertRowtypeExpr) error {
	e.writeTag(TagConvertRowtypeExpr)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	e.writeOid(node.Resulttype)
	e.writeEnum(int16(node.Convertformat))
	return nil
}

func (e *Encoder) encodeCaseExpr(node *plan.CaseExpr) error {
	e.writeTag(TagCaseExpr)
	e.writeOid(node.Casetype)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	return e.encodeNode(node.Defresult)
}

func (e *Encoder) encodeCaseWhen(node *plan.CaseWhen) error {
	e.writeTag(TagCaseWhen)
	if err := e.encodeNode(node.Expr); err != nil {
		return err
	}
	return e.encodeNode(node.Result)
}

func (e *Encoder) encodeCaseTestExpr(node *plan.CaseTestExpr) error {
	e.writeTag(TagCaseTestExpr)
	e.writeOid(node.TypeID)
	e.writeInt32(node.TypeMod)
	return nil
}

func (e *Encoder) encodeArrayExpr(node *plan.ArrayExpr) error {
	e.writeTag(TagArrayExpr)
	e.writeOid(node.ArrayTypeid)
	e.writeOid(node.ElementTypeid)
	if err := e.encodeList(node.Elements); err != nil {
		return err
	}
	e.writeBool(node.Multidims)
	return nil
}

func (e *Encoder) encodeRowExpr(node *plan.RowExpr) error {
	e.writeTag(TagRowExpr)
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	e.writeOid(node.RowTypeid)
	e.writeEnum(int16(node.RowFormat))
	return nil
}

func (e *Encoder) encodeRowCompareExpr(node *plan.RowCompareExpr) error {
	e.writeTag(TagRowCompareExpr)
	e.writeEnum(int16(node.Rctype))
	if err := e.encodeList(node.Opnos); err != nil {
		return err
	}
	if err := e.encodeList(node.Opclasses); err != nil {
		return err
	}
	if err := e.encodeList(node.Largs); err != nil {
		return err
	}
	return e.encodeList(node.Rargs)
}

func (e *Encoder) encodeCoalesceExpr(node *plan.CoalesceExpr) error {
	e.writeTag(TagCoalesceExpr)
	e.writeOid(node.Coalescetype)
	return e.encodeList(node.Args)
}

func (e *Encoder) encodeMinMaxExpr(node *plan.MinMaxExpr) error {
	e.writeTag(TagMinMaxExpr)
	e.writeOid(node.Minmaxtype)
	e.writeEnum(int16(node.Op))
	return e.encodeList(node.Args)
}

func (e *Encoder) encodeNullIfExpr(node *plan.NullIfExpr) error {
	e.writeTag(TagNullIfExpr)
	return e.opExprFields(node.Opno, node.Opfuncid, node.Opresulttype, node.Opretset, node.Args)
}

func (e *Encoder) encodeNullTest(node *plan.NullTest) error {
	e.writeTag(TagNullTest)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	e.writeEnum(int16(node.Nulltesttype))
	return nil
}

func (e *Encoder) encodeBooleanTest(node *plan.BooleanTest) error {
	e.writeTag(TagBooleanTest)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	e.writeEnum(int16(node.Booltesttype))
	return nil
}

func (e *Encoder) encodeCoerceToDomain(node *plan.CoerceToDomain) error {
	e.writeTag(TagCoerceToDomain)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	e.writeOid(node.Resulttype)
	e.writeInt32(node.Resulttypmod)
	e.writeEnum(int16(node.Coercionformat))
	return nil
}

func (e *Encoder) encodeCoerceToDomainValue(node *plan.CoerceToDomainValue) error {
	e.writeTag(TagCoerceToDomainValue)
	e.writeOid(node.TypeID)
	e.writeInt32(node.TypeMod)
	return nil
}

func (e *Encoder) encodeSetToDefault(node *plan.SetToDefault) error {
	e.writeTag(TagSetToDefault)
	e.writeOid(node.TypeID)
	e.writeInt32(node.TypeMod)
	return nil
}

func (e *Encoder) encodeCurrentOfExpr(node *plan.CurrentOfExpr) error {
	e.writeTag(TagCurrentOfExpr)
	e.writeString(node.CursorName)
	e.writeIndex(node.Cvarno)
	e.writeOid(node.TargetRelid)
	e.writeInt32(node.GpSegmentID)
	e.writeBytes(node.Ctid[:])
	e.writeOid(node.Tableoid)
	return nil
}

func (e *Encoder) encodeTargetEntry(node *plan.TargetEntry) error {
	e.writeTag(TagTargetEntry)
	if err := e.encodeNode(node.Expr); err != nil {
		return err
	}
	e.writeAttrNumber(node.Resno)
	e.writeString(node.Resname)
	e.writeIndex(node.Ressortgroupref)
	e.writeOid(node.Resorigtbl)
	e.writeAttrNumber(node.Resorigcol)
	e.writeBool(node.Resjunk)
	return nil
}

func (e *Encoder) encodeRangeTblRef(node *plan.RangeTblRef) error {
	e.writeTag(TagRangeTblRef)
	e.writeInt32(node.Rtindex)
	return nil
}

func (e *Encoder) encodeJoinExpr(node *plan.JoinExpr) error {
	e.writeTag(TagJoinExpr)
	e.writeEnum(int16(node.Jointype))
	e.writeBool(node.IsNatural)
	if err := e.encodeNode(node.Larg); err != nil {
		return err
	}
	if err := e.encodeNode(node.Rarg); err != nil {
		return err
	}
	if err := e.encodeList(node.UsingClause); err != nil {
		return err
	}
	if err := e.encodeNode(node.Quals); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.Alias)); err != nil {
		return err
	}
	e.writeInt32(node.Rtindex)
	return nil
}

func (e *Encoder) encodeFromExpr(node *plan.FromExpr) error {
	e.writeTag(TagFromExpr)
	if err := e.encodeList(node.Fromlist); err != nil {
		return err
	}
	return e.encodeNode(node.Quals)
}

func (e *Encoder) encodeGroupingFunc(node *plan.GroupingFunc) error {
	e.writeTag(TagGroupingFunc)
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	e.writeInt32(node.Ngrpcols)
	return nil
}

func (e *Encoder) encodeGrouping(node *plan.Grouping) error {
	e.writeTag(TagGrouping)
	return nil
}

func (e *Encoder) encodeGroupId(node *plan.GroupId) error {
	e.writeTag(TagGroupId)
	return nil
}

func (e *Encoder) encodePercentileExpr(node *plan.PercentileExpr) error {
	e.writeTag(TagPercentileExpr)
	e.writeOid(node.Perctype)
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	e.writeEnum(int16(node.Perckind))
	if err := e.encodeList(node.SortClause); err != nil {
		return err
	}
	return e.encodeList(node.SortTargets)
}

func (e *Encoder) encodeDMLActionExpr(node *plan.DMLActionExpr) error {
	e.writeTag(TagDMLActionExpr)
	return nil
}

func (e *Encoder) encodePartOidExpr(node *plan.PartOidExpr) error {
	e.writeTag(TagPartOidExpr)
	e.writeInt32(node.Level)
	return nil
}

func (e *Encoder) encodePartDefaultExpr(node *plan.PartDefaultExpr) error {
	e.writeTag(TagPartDefaultExpr)
	e.writeInt32(node.Level)
	return nil
}

func (e *Encoder) encodePartBoundExpr(node *plan.PartBoundExpr) error {
	e.writeTag(TagPartBoundExpr)
	e.writeInt32(node.Level)
	e.writeOid(node.BoundType)
	e.writeBool(node.IsLowerBound)
	return nil
}

func (e *Encoder) encodePartBoundInclusionExpr(node *plan.PartBoundInclusionExpr) error {
	e.writeTag(TagPartBoundInclusionExpr)
	e.writeInt32(node.Level)
	e.writeBool(node.IsLowerBound)
	return nil
}

func (e *Encoder) encodePartBoundOpenExpr(node *plan.PartBoundOpenExpr) error {
	e.writeTag(TagPartBoundOpenExpr)
	e.writeInt32(node.Level)
	e.writeBool(node.IsLowerBound)
	return nil
}

func (e *Encoder) encodeTableValueExpr(node *plan.TableValueExpr) error {
	e.writeTag(TagTableValueExpr)
	return e.encodeNode(node.Subquery)
}
