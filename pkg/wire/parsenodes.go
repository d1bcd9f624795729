package wire

import (
	"fmt"

	"github.com/chazu/planwire/pkg/plan"
)

// ---------------------------------------------------------------------------
// Parse-tree and statement variant encoders.
// ---------------------------------------------------------------------------

func (e *Encoder) encodeQuery(node *plan.Query) error {
	e.writeTag(TagQuery)
	e.writeEnum(int16(node.CommandType))
	e.writeEnum(int16(node.QuerySource))
	e.writeBool(node.CanSetTag)

	if err := e.encodeNode(node.UtilityStmt); err != nil {
		return err
	}
	e.writeInt32(node.ResultRelation)
	if err := e.encodeNode(nodeOrNil(node.IntoClause)); err != nil {
		return err
	}
	e.writeBool(node.HasAggs)
	e.writeBool(node.HasWindFuncs)
	e.writeBool(node.HasSubLinks)

	if err := e.encodeList(node.Rtable); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.Jointree)); err != nil {
		return err
	}
	if err := e.encodeList(node.TargetList); err != nil {
		return err
	}
	if err := e.encodeList(node.ReturningList); err != nil {
		return err
	}
	if err := e.encodeList(node.GroupClause); err != nil {
		return err
	}
	if err := e.encodeNode(node.HavingQual); err != nil {
		return err
	}
	if err := e.encodeList(node.WindowClause); err != nil {
		return err
	}
	if err := e.encodeList(node.DistinctClause); err != nil {
		return err
	}
	if err := e.encodeList(node.SortClause); err != nil {
		return err
	}
	if err := e.encodeList(node.ScatterClause); err != nil {
		return err
	}
	if err := e.encodeList(node.CteList); err != nil {
		return err
	}
	e.writeBool(node.HasRecursive)
	e.writeBool(node.HasModifyingCTE)
	if err := e.encodeNode(node.LimitOffset); err != nil {
		return err
	}
	if err := e.encodeNode(node.LimitCount); err != nil {
		return err
	}
	if err := e.encodeList(node.RowMarks); err != nil {
		return err
	}
	if err := e.encodeNode(node.SetOperations); err != nil {
		return err
	}

	if err := e.encodeList(node.ResultRelations); err != nil {
		return err
	}
	if err := e.encodeNode(node.ResultPartitions); err != nil {
		return err
	}
	if err := e.encodeList(node.ResultAosegnos); err != nil {
		return err
	}
	return e.encodeList(node.ReturningLists)
}

func (e *Encoder) encodeRangeTblEntry(node *plan.RangeTblEntry) error {
	e.writeTag(TagRangeTblEntry)
	if err := e.encodeNode(nodeOrNil(node.Alias)); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.Eref)); err != nil {
		return err
	}
	e.writeEnum(int16(node.Rtekind))

	switch node.Rtekind {
	case plan.RTERelation, plan.RTESpecial:
		e.writeOid(node.Relid)

	case plan.RTESubquery:
		if err := e.encodeNode(node.Subquery); err != nil {
			return err
		}

	case plan.RTECTE:
		e.writeString(node.Ctename)
		e.writeIndex(node.Ctelevelsup)
		e.writeBool(node.SelfReference)
		if err := e.encodeList(node.Ctecoltypes); err != nil {
			return err
		}
		if err := e.encodeList(node.Ctecoltypmods); err != nil {
			return err
		}

	case plan.RTEFunction:
		if err := e.encodeNode(node.Funcexpr); err != nil {
			return err
		}
		if err := e.encodeList(node.Funccoltypes); err != nil {
			return err
		}
		if err := e.encodeList(node.Funccoltypmods); err != nil {
			return err
		}

	case plan.RTETableFunction:
		if err := e.encodeNode(node.Subquery); err != nil {
			return err
		}
		if err := e.encodeNode(node.Funcexpr); err != nil {
			return err
		}
		if err := e.encodeList(node.Funccoltypes); err != nil {
			return err
		}
		if err := e.encodeList(node.Funccoltypmods); err != nil {
			return err
		}
		e.encodeDatum(plan.Datum{Bytes: node.Funcuserdata}, false)

	case plan.RTEValues:
		if err := e.encodeList(node.ValuesLists); err != nil {
			return err
		}

	case plan.RTEJoin:
		e.writeEnum(int16(node.Jointype))
		if err := e.encodeList(node.Joinaliasvars); err != nil {
			return err
		}

	case plan.RTEVoid:
		// dropped entry, no extra fields

	default:
		return fmt.Errorf("%w: range table entry kind %d", ErrUnknownSubKind, node.Rtekind)
	}

	e.writeBool(node.Inh)
	e.writeBool(node.InFromCl)
	e.writeUint32(node.RequiredPerms)
	e.writeOid(node.CheckAsUser)

	e.writeBool(node.ForceDistRandom)
	return nil
}

func (e *Encoder) encodeAExpr(node *plan.AExpr) error {
	e.writeTag(TagAExpr)
	e.writeEnum(int16(node.Kind))

	switch node.Kind {
	case plan.AExprOp, plan.AExprOpAny, plan.AExprOpAll, plan.AExprDistinct,
		plan.AExprNullIf, plan.AExprOf, plan.AExprIn:
		if err := e.encodeList(node.Name); err != nil {
			return err
		}
	case plan.AExprAnd, plan.AExprOr, plan.AExprNot:
		// no operator name
	default:
		return fmt.Errorf("%w: a_expr kind %d", ErrUnknownSubKind, node.Kind)
	}

	if err := e.encodeNode(node.Lexpr); err != nil {
		return err
	}
	if err := e.encodeNode(node.Rexpr); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeColumnRef(node *plan.ColumnRef) error {
	e.writeTag(TagColumnRef)
	if err := e.encodeList(node.Fields); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeParamRef(node *plan.ParamRef) error {
	e.writeTag(TagParamRef)
	e.writeInt32(node.Number)
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeAConst(node *plan.AConst) error {
	e.writeTag(TagAConst)
	if err := e.encodeNode(node.Val); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.Typname)); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeAIndices(node *plan.AIndices) error {
	e.writeTag(TagAIndices)
	if err := e.encodeNode(node.Lidx); err != nil {
		return err
	}
	return e.encodeNode(node.Uidx)
}

func (e *Encoder) encodeAIndirection(node *plan.AIndirection) error {
	e.writeTag(TagAIndirection)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	return e.encodeList(node.Indirection)
}

func (e *Encoder) encodeResTarget(node *plan.ResTarget) error {
	e.writeTag(TagResTarget)
	e.writeString(node.Name)
	if err := e.encodeList(node.Indirection); err != nil {
		return err
	}
	if err := e.encodeNode(node.Val); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeConstraint(node *plan.Constraint) error {
	e.writeTag(TagConstraint)
	e.writeString(node.Name)
	e.writeOid(node.Conoid)
	e.writeEnum(int16(node.Contype))

	switch node.Contype {
	case plan.ConstrPrimary, plan.ConstrUnique:
		if err := e.encodeList(node.Keys); err != nil {
			return err
		}
		if err := e.encodeList(node.Options); err != nil {
			return err
		}
		e.writeString(node.Indexspace)

	case plan.ConstrCheck, plan.ConstrDefault:
		if err := e.encodeNode(node.RawExpr); err != nil {
			return err
		}
		e.writeString(node.CookedExpr)

	case plan.ConstrNull, plan.ConstrNotNull,
		plan.ConstrAttrDeferrable, plan.ConstrAttrNotDeferrable,
		plan.ConstrAttrDeferred, plan.ConstrAttrImmediate:
		// marker constraints carry no payload

	default:
		return fmt.Errorf("%w: constraint kind %d", ErrUnknownSubKind, node.Contype)
	}
	return nil
}

func (e *Encoder) encodeFkConstraint(node *plan.FkConstraint) error {
	e.writeTag(TagFkConstraint)
	e.writeString(node.ConstrName)
	e.writeOid(node.ConstrOid)
	if err := e.encodeNode(nodeOrNil(node.Pktable)); err != nil {
		return err
	}
	if err := e.encodeList(node.FkAttrs); err != nil {
		return err
	}
	if err := e.encodeList(node.PkAttrs); err != nil {
		return err
	}
	e.writeByte(node.FkMatchtype)
	e.writeByte(node.FkUpdAction)
	e.writeByte(node.FkDelAction)
	e.writeBool(node.Deferrable)
	e.writeBool(node.Initdeferred)
	e.writeBool(node.SkipValidation)

	e.writeOid(node.Trig1Oid)
	e.writeOid(node.Trig2Oid)
	e.writeOid(node.Trig3Oid)
	e.writeOid(node.Trig4Oid)
	return nil
}

func (e *Encoder) encodeFuncCall(node *plan.FuncCall) error {
	e.writeTag(TagFuncCall)
	if err := e.encodeNode(node.Funcname); err != nil {
		return err
	}
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	if err := e.encodeList(node.AggOrder); err != nil {
		return err
	}
	e.writeBool(node.AggStar)
	e.writeBool(node.AggDistinct)
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeDefElem(node *plan.DefElem) error {
	e.writeTag(TagDefElem)
	e.writeString(node.Defname)
	return e.encodeNode(node.Arg)
}

func (e *Encoder) encodeTypeName(node *plan.TypeName) error {
	e.writeTag(TagTypeName)
	if err := e.encodeList(node.Names); err != nil {
		return err
	}
	e.writeOid(node.Typid)
	e.writeBool(node.Timezone)
	e.writeBool(node.Setof)
	e.writeBool(node.PctType)
	e.writeInt32(node.Typmod)
	if err := e.encodeList(node.ArrayBounds); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeTypeCast(node *plan.TypeCast) error {
	e.writeTag(TagTypeCast)
	if err := e.encodeNode(node.Arg); err != nil {
		return err
	}
	return e.encodeNode(nodeOrNil(node.Typname))
}

func (e *Encoder) encodeColumnDef(node *plan.ColumnDef) error {
	e.writeTag(TagColumnDef)
	e.writeString(node.Colname)
	if err := e.encodeNode(nodeOrNil(node.Typname)); err != nil {
		return err
	}
	e.writeInt32(node.Inhcount)
	e.writeBool(node.IsLocal)
	e.writeBool(node.IsNotNull)
	e.writeInt32(node.Attnum)
	e.writeOid(node.DefaultOid)
	if err := e.encodeNode(node.RawDefault); err != nil {
		return err
	}
	e.writeBool(node.DefaultIsNull)
	e.writeString(node.CookedDefault)
	if err := e.encodeList(node.Constraints); err != nil {
		return err
	}
	return e.encodeList(node.Encoding)
}

func (e *Encoder) encodeIndexElem(node *plan.IndexElem) error {
	e.writeTag(TagIndexElem)
	e.writeString(node.Name)
	if err := e.encodeNode(node.Expr); err != nil {
		return err
	}
	if err := e.encodeList(node.Opclass); err != nil {
		return err
	}
	e.writeEnum(int16(node.Ordering))
	e.writeEnum(int16(node.NullsOrdering))
	return nil
}

func (e *Encoder) encodeSortClause(node *plan.SortClause) error {
	e.writeTag(TagSortClause)
	e.writeIndex(node.TleSortGroupRef)
	e.writeOid(node.Sortop)
	return nil
}

func (e *Encoder) encodeGroupClause(node *plan.GroupClause) error {
	e.writeTag(TagGroupClause)
	e.writeIndex(node.TleSortGroupRef)
	e.writeOid(node.Sortop)
	return nil
}

func (e *Encoder) encodeGroupingClause(node *plan.GroupingClause) error {
	e.writeTag(TagGroupingClause)
	e.writeEnum(int16(node.GroupType))
	return e.encodeList(node.Groupsets)
}

func (e *Encoder) encodeWindowSpec(node *plan.WindowSpec) error {
	e.writeTag(TagWindowSpec)
	e.writeString(node.Name)
	e.writeString(node.Parent)
	if err := e.encodeList(node.Partition); err != nil {
		return err
	}
	if err := e.encodeList(node.Order); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.Frame)); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeWindowFrame(node *plan.WindowFrame) error {
	e.writeTag(TagWindowFrame)
	e.writeBool(node.IsRows)
	e.writeBool(node.IsBetween)
	if err := e.encodeNode(nodeOrNil(node.Trail)); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.Lead)); err != nil {
		return err
	}
	e.writeEnum(int16(node.Exclude))
	return nil
}

func (e *Encoder) encodeWindowFrameEdge(node *plan.WindowFrameEdge) error {
	e.writeTag(TagWindowFrameEdge)
	e.writeEnum(int16(node.Kind))
	return e.encodeNode(node.Val)
}

func (e *Encoder) encodeRowMarkClause(node *plan.RowMarkClause) error {
	e.writeTag(TagRowMarkClause)
	e.writeIndex(node.Rti)
	e.writeBool(node.ForUpdate)
	e.writeBool(node.NoWait)
	return nil
}

func (e *Encoder) encodeWithClause(node *plan.WithClause) error {
	e.writeTag(TagWithClause)
	if err := e.encodeList(node.Ctes); err != nil {
		return err
	}
	e.writeBool(node.Recursive)
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodeCommonTableExpr(node *plan.CommonTableExpr) error {
	e.writeTag(TagCommonTableExpr)
	e.writeString(node.Ctename)
	if err := e.encodeList(node.Aliascolnames); err != nil {
		return err
	}
	if err := e.encodeNode(node.Ctequery); err != nil {
		return err
	}
	e.writeBool(node.Cterecursive)
	e.writeInt32(node.Cterefcount)
	if err := e.encodeList(node.Ctecolnames); err != nil {
		return err
	}
	if err := e.encodeList(node.Ctecoltypes); err != nil {
		return err
	}
	return e.encodeList(node.Ctecoltypmods)
}

func (e *Encoder) encodeSetOperationStmt(node *plan.SetOperationStmt) error {
	e.writeTag(TagSetOperationStmt)
	e.writeEnum(int16(node.Op))
	e.writeBool(node.All)
	if err := e.encodeNode(node.Larg); err != nil {
		return err
	}
	if err := e.encodeNode(node.Rarg); err != nil {
		return err
	}
	if err := e.encodeList(node.ColTypes); err != nil {
		return err
	}
	return e.encodeList(node.ColTypmods)
}

// encodeOidAssignments is the fixed Oid block dispatched with CREATE TABLE.
// It is part of its owning statement, not a tagged node of its own.
func (e *Encoder) encodeOidAssignments(oi *plan.OidAssignments) {
	e.writeOid(oi.RelOid)
	e.writeOid(oi.ComptypeOid)
	e.writeOid(oi.ToastOid)
	e.writeOid(oi.ToastIndexOid)
	e.writeOid(oi.ToastComptypeOid)
	e.writeOid(oi.AosegOid)
	e.writeOid(oi.AosegIndexOid)
	e.writeOid(oi.AosegComptypeOid)
	e.writeOid(oi.AovisimapOid)
	e.writeOid(oi.AovisimapIndexOid)
	e.writeOid(oi.AovisimapComptypeOid)
	e.writeOid(oi.AoblkdirOid)
	e.writeOid(oi.AoblkdirIndexOid)
	e.writeOid(oi.AoblkdirComptypeOid)
}

func (e *Encoder) encodeCreateStmt(node *plan.CreateStmt) error {
	e.writeTag(TagCreateStmt)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	if err := e.encodeList(node.TableElts); err != nil {
		return err
	}
	if err := e.encodeList(node.InhRelations); err != nil {
		return err
	}
	if err := e.encodeList(node.InhOids); err != nil {
		return err
	}
	e.writeInt32(node.ParentOidCount)
	if err := e.encodeList(node.Constraints); err != nil {
		return err
	}
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	e.writeEnum(int16(node.Oncommit))
	e.writeString(node.Tablespacename)
	if err := e.encodeNode(node.DistributedBy); err != nil {
		return err
	}
	e.encodeOidAssignments(&node.OidInfo)
	e.writeByte(node.RelKind)
	e.writeByte(node.RelStorage)
	e.writeBool(node.IsPartChild)
	e.writeBool(node.IsAddPart)
	e.writeBool(node.IsSplitPart)
	e.writeOid(node.Ownerid)
	e.writeBool(node.BuildAoBlkdir)
	e.writeBool(node.IsErrorTable)
	return e.encodeList(node.AttrEncodings)
}

func (e *Encoder) encodeInheritPartitionCmd(node *plan.InheritPartitionCmd) error {
	e.writeTag(TagInheritPartitionCmd)
	return e.encodeNode(nodeOrNil(node.Parent))
}

func (e *Encoder) encodeAlterPartitionCmd(node *plan.AlterPartitionCmd) error {
	e.writeTag(TagAlterPartitionCmd)
	if err := e.encodeNode(node.Partid); err != nil {
		return err
	}
	if err := e.encodeNode(node.Arg1); err != nil {
		return err
	}
	if err := e.encodeNode(node.Arg2); err != nil {
		return err
	}
	return e.encodeList(node.NewOids)
}

func (e *Encoder) encodeAlterPartitionId(node *plan.AlterPartitionId) error {
	e.writeTag(TagAlterPartitionId)
	e.writeEnum(int16(node.Idtype))
	if err := e.encodeNode(node.Partiddef); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodePartitionBy(node *plan.PartitionBy) error {
	e.writeTag(TagPartitionBy)
	e.writeByte(byte(node.PartType))
	if err := e.encodeList(node.Keys); err != nil {
		return err
	}
	if err := e.encodeList(node.KeyOpclass); err != nil {
		return err
	}
	if err := e.encodeNode(node.PartNum); err != nil {
		return err
	}
	if err := e.encodeNode(node.SubPart); err != nil {
		return err
	}
	if err := e.encodeNode(node.PartSpec); err != nil {
		return err
	}
	e.writeInt32(node.PartDepth)
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodePartitionElem(node *plan.PartitionElem) error {
	e.writeTag(TagPartitionElem)
	e.writeString(node.PartName)
	if err := e.encodeNode(node.BoundSpec); err != nil {
		return err
	}
	if err := e.encodeNode(node.SubSpec); err != nil {
		return err
	}
	e.writeBool(node.IsDefault)
	if err := e.encodeNode(node.StoreAttr); err != nil {
		return err
	}
	e.writeInt32(node.Partno)
	e.writeUint64(node.Rrand)
	if err := e.encodeList(node.Colencs); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodePartitionRangeItem(node *plan.PartitionRangeItem) error {
	e.writeTag(TagPartitionRangeItem)
	if err := e.encodeList(node.PartRangeVal); err != nil {
		return err
	}
	e.writeEnum(int16(node.Partedge))
	e.writeInt32(node.Everycount)
	return nil
}

func (e *Encoder) encodePartitionBoundSpec(node *plan.PartitionBoundSpec) error {
	e.writeTag(TagPartitionBoundSpec)
	if err := e.encodeNode(node.PartStart); err != nil {
		return err
	}
	if err := e.encodeNode(node.PartEnd); err != nil {
		return err
	}
	if err := e.encodeNode(node.PartEvery); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodePartitionSpec(node *plan.PartitionSpec) error {
	e.writeTag(TagPartitionSpec)
	if err := e.encodeNode(node.PartElem); err != nil {
		return err
	}
	if err := e.encodeNode(node.SubSpec); err != nil {
		return err
	}
	e.writeBool(node.Istemplate)
	e.writeInt32(node.Location)
	return e.encodeList(node.EncClauses)
}

func (e *Encoder) encodePartitionValuesSpec(node *plan.PartitionValuesSpec) error {
	e.writeTag(TagPartitionValuesSpec)
	if err := e.encodeList(node.PartValues); err != nil {
		return err
	}
	e.writeInt32(node.Location)
	return nil
}

func (e *Encoder) encodePartition(node *plan.Partition) error {
	e.writeTag(TagPartition)
	e.writeOid(node.Partid)
	e.writeOid(node.Parrelid)
	e.writeByte(byte(node.Parkind))
	e.writeInt32(node.Parlevel)
	e.writeBool(node.Paristemplate)

	// Paratts and Parclass are parallel arrays sharing one count.
	e.writeInt16(int16(len(node.Paratts)))
	e.writeInt16Array(node.Paratts)
	e.writeOidArray(node.Parclass)
	return nil
}

func (e *Encoder) encodePartitionRule(node *plan.PartitionRule) error {
	e.writeTag(TagPartitionRule)
	e.writeOid(node.Parruleid)
	e.writeOid(node.Paroid)
	e.writeOid(node.Parchildrelid)
	e.writeOid(node.Parparentoid)
	e.writeBool(node.Parisdefault)
	e.writeString(node.Parname)
	if err := e.encodeNode(node.Parrangestart); err != nil {
		return err
	}
	e.writeBool(node.Parrangestartincl)
	if err := e.encodeNode(node.Parrangeend); err != nil {
		return err
	}
	e.writeBool(node.Parrangeendincl)
	if err := e.encodeNode(node.Parrangeevery); err != nil {
		return err
	}
	if err := e.encodeList(node.Parlistvalues); err != nil {
		return err
	}
	e.writeInt16(node.Parruleord)
	if err := e.encodeList(node.Parreloptions); err != nil {
		return err
	}
	e.writeOid(node.PartemplatespaceID)
	return e.encodeList(node.Children)
}

func (e *Encoder) encodePartitionNode(node *plan.PartitionNode) error {
	e.writeTag(TagPartitionNode)
	if err := e.encodeNode(node.Part); err != nil {
		return err
	}
	if err := e.encodeNode(node.DefaultPart); err != nil {
		return err
	}
	return e.encodeList(node.Rules)
}

func (e *Encoder) encodePgPartRule(node *plan.PgPartRule) error {
	e.writeTag(TagPgPartRule)
	if err := e.encodeNode(node.PNode); err != nil {
		return err
	}
	if err := e.encodeNode(node.TopRule); err != nil {
		return err
	}
	e.writeString(node.PartIDStr)
	e.writeBool(node.IsName)
	e.writeInt32(node.TopRuleRank)
	e.writeString(node.Relname)
	return nil
}

func (e *Encoder) encodeIndexStmt(node *plan.IndexStmt) error {
	e.writeTag(TagIndexStmt)
	e.writeString(node.Idxname)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	e.writeString(node.AccessMethod)
	e.writeString(node.TableSpace)
	if err := e.encodeList(node.IndexParams); err != nil {
		return err
	}
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	if err := e.encodeNode(node.WhereClause); err != nil {
		return err
	}
	if err := e.encodeList(node.Rangetable); err != nil {
		return err
	}
	e.writeBool(node.Unique)
	e.writeBool(node.Primary)
	e.writeBool(node.Isconstraint)
	e.writeString(node.AltConName)
	e.writeOid(node.ConstrOid)
	e.writeBool(node.Concurrent)
	return nil
}

func (e *Encoder) encodeReindexStmt(node *plan.ReindexStmt) error {
	e.writeTag(TagReindexStmt)
	e.writeEnum(int16(node.Kind))
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	e.writeString(node.Name)
	e.writeBool(node.DoSystem)
	e.writeBool(node.DoUser)
	return nil
}

func (e *Encoder) encodeDropStmt(node *plan.DropStmt) error {
	e.writeTag(TagDropStmt)
	if err := e.encodeList(node.Objects); err != nil {
		return err
	}
	e.writeEnum(int16(node.RemoveType))
	e.writeEnum(int16(node.Behavior))
	e.writeBool(node.MissingOk)
	e.writeBool(node.AllowPartn)
	return nil
}

func (e *Encoder) encodeTruncateStmt(node *plan.TruncateStmt) error {
	e.writeTag(TagTruncateStmt)
	if err := e.encodeList(node.Relations); err != nil {
		return err
	}
	e.writeEnum(int16(node.Behavior))
	return nil
}

func (e *Encoder) encodeAlterTableStmt(node *plan.AlterTableStmt) error {
	e.writeTag(TagAlterTableStmt)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	if err := e.encodeList(node.Cmds); err != nil {
		return err
	}
	e.writeEnum(int16(node.Relkind))
	return nil
}

func (e *Encoder) encodeAlterTableCmd(node *plan.AlterTableCmd) error {
	e.writeTag(TagAlterTableCmd)
	e.writeEnum(int16(node.Subtype))
	e.writeString(node.Name)
	if err := e.encodeNode(node.Def); err != nil {
		return err
	}
	if err := e.encodeNode(node.Transform); err != nil {
		return err
	}
	e.writeEnum(int16(node.Behavior))
	e.writeBool(node.PartExpanded)
	return e.encodeList(node.Partoids)
}

func (e *Encoder) encodeCreateSeqStmt(node *plan.CreateSeqStmt) error {
	e.writeTag(TagCreateSeqStmt)
	if err := e.encodeNode(nodeOrNil(node.Sequence)); err != nil {
		return err
	}
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	e.writeOid(node.RelOid)
	e.writeOid(node.ComptypeOid)
	return nil
}

func (e *Encoder) encodeAlterSeqStmt(node *plan.AlterSeqStmt) error {
	e.writeTag(TagAlterSeqStmt)
	if err := e.encodeNode(nodeOrNil(node.Sequence)); err != nil {
		return err
	}
	return e.encodeList(node.Options)
}

func (e *Encoder) encodeCreatedbStmt(node *plan.CreatedbStmt) error {
	e.writeTag(TagCreatedbStmt)
	e.writeString(node.Dbname)
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	e.writeOid(node.DbOid)
	return nil
}

func (e *Encoder) encodeDropdbStmt(node *plan.DropdbStmt) error {
	e.writeTag(TagDropdbStmt)
	e.writeString(node.Dbname)
	e.writeBool(node.MissingOk)
	return nil
}

func (e *Encoder) encodeCreateDomainStmt(node *plan.CreateDomainStmt) error {
	e.writeTag(TagCreateDomainStmt)
	if err := e.encodeList(node.Domainname); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.Typname)); err != nil {
		return err
	}
	if err := e.encodeList(node.Constraints); err != nil {
		return err
	}
	e.writeOid(node.DomainOid)
	return nil
}

func (e *Encoder) encodeAlterDomainStmt(node *plan.AlterDomainStmt) error {
	e.writeTag(TagAlterDomainStmt)
	e.writeByte(node.Subtype)
	if err := e.encodeList(node.Typname); err != nil {
		return err
	}
	e.writeString(node.Name)
	if err := e.encodeNode(node.Def); err != nil {
		return err
	}
	e.writeEnum(int16(node.Behavior))
	return nil
}

func (e *Encoder) encodeCreateFunctionStmt(node *plan.CreateFunctionStmt) error {
	e.writeTag(TagCreateFunctionStmt)
	e.writeBool(node.Replace)
	if err := e.encodeList(node.Funcname); err != nil {
		return err
	}
	if err := e.encodeList(node.Parameters); err != nil {
		return err
	}
	if err := e.encodeNode(nodeOrNil(node.ReturnType)); err != nil {
		return err
	}
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	if err := e.encodeList(node.WithClause); err != nil {
		return err
	}
	e.writeOid(node.FuncOid)
	e.writeOid(node.ShelltypeOid)
	return nil
}

func (e *Encoder) encodeFunctionParameter(node *plan.FunctionParameter) error {
	e.writeTag(TagFunctionParameter)
	e.writeString(node.Name)
	if err := e.encodeNode(nodeOrNil(node.ArgType)); err != nil {
		return err
	}
	e.writeByte(byte(node.Mode))
	return nil
}

func (e *Encoder) encodeRemoveFuncStmt(node *plan.RemoveFuncStmt) error {
	e.writeTag(TagRemoveFuncStmt)
	e.writeEnum(int16(node.Kind))
	if err := e.encodeList(node.Name); err != nil {
		return err
	}
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	e.writeEnum(int16(node.Behavior))
	e.writeBool(node.MissingOk)
	return nil
}

func (e *Encoder) encodeAlterFunctionStmt(node *plan.AlterFunctionStmt) error {
	e.writeTag(TagAlterFunctionStmt)
	if err := e.encodeNode(nodeOrNil(node.Func)); err != nil {
		return err
	}
	return e.encodeList(node.Actions)
}

func (e *Encoder) encodeDefineStmt(node *plan.DefineStmt) error {
	e.writeTag(TagDefineStmt)
	e.writeEnum(int16(node.Kind))
	e.writeBool(node.Oldstyle)
	if err := e.encodeList(node.Defnames); err != nil {
		return err
	}
	if err := e.encodeList(node.Args); err != nil {
		return err
	}
	if err := e.encodeList(node.Definition); err != nil {
		return err
	}
	e.writeOid(node.NewOid)
	e.writeOid(node.ShadowOid)
	e.writeBool(node.Ordered)
	e.writeBool(node.Trusted)
	return nil
}

func (e *Encoder) encodeCompositeTypeStmt(node *plan.CompositeTypeStmt) error {
	e.writeTag(TagCompositeTypeStmt)
	if err := e.encodeNode(nodeOrNil(node.Typevar)); err != nil {
		return err
	}
	if err := e.encodeList(node.Coldeflist); err != nil {
		return err
	}
	e.writeOid(node.RelOid)
	e.writeOid(node.ComptypeOid)
	return nil
}

func (e *Encoder) encodeViewStmt(node *plan.ViewStmt) error {
	e.writeTag(TagViewStmt)
	if err := e.encodeNode(nodeOrNil(node.View)); err != nil {
		return err
	}
	if err := e.encodeList(node.Aliases); err != nil {
		return err
	}
	if err := e.encodeNode(node.Query); err != nil {
		return err
	}
	e.writeBool(node.Replace)
	e.writeOid(node.RelOid)
	e.writeOid(node.ComptypeOid)
	e.writeOid(node.RewriteOid)
	return nil
}

func (e *Encoder) encodeRuleStmt(node *plan.RuleStmt) error {
	e.writeTag(TagRuleStmt)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	e.writeString(node.Rulename)
	if err := e.encodeNode(node.WhereClause); err != nil {
		return err
	}
	e.writeEnum(int16(node.Event))
	e.writeBool(node.Instead)
	if err := e.encodeList(node.Actions); err != nil {
		return err
	}
	e.writeBool(node.Replace)
	e.writeOid(node.RuleOid)
	return nil
}

func (e *Encoder) encodeTransactionStmt(node *plan.TransactionStmt) error {
	e.writeTag(TagTransactionStmt)
	e.writeEnum(int16(node.Kind))
	return e.encodeList(node.Options)
}

func (e *Encoder) encodeDeclareCursorStmt(node *plan.DeclareCursorStmt) error {
	e.writeTag(TagDeclareCursorStmt)
	e.writeString(node.Portalname)
	e.writeInt32(node.Options)
	if err := e.encodeNode(node.Query); err != nil {
		return err
	}
	e.writeBool(node.IsSimplyUpdatable)
	return nil
}

func (e *Encoder) encodeNotifyStmt(node *plan.NotifyStmt) error {
	e.writeTag(TagNotifyStmt)
	return e.encodeNode(nodeOrNil(node.Relation))
}

func (e *Encoder) encodeCopyStmt(node *plan.CopyStmt) error {
	e.writeTag(TagCopyStmt)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	if err := e.encodeNode(node.Query); err != nil {
		return err
	}
	if err := e.encodeList(node.Attlist); err != nil {
		return err
	}
	e.writeBool(node.IsFrom)
	e.writeString(node.Filename)
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	return e.encodeNode(node.Sreh)
}

func (e *Encoder) encodeSingleRowErrorDesc(node *plan.SingleRowErrorDesc) error {
	e.writeTag(TagSingleRowErrorDesc)
	if err := e.encodeNode(nodeOrNil(node.Errtable)); err != nil {
		return err
	}
	e.writeInt32(node.Rejectlimit)
	e.writeBool(node.IsKeep)
	e.writeBool(node.IsLimitInRows)
	e.writeBool(node.ReusingExistingErrtable)
	e.writeBool(node.IntoFile)
	return nil
}

func (e *Encoder) encodeVacuumStmt(node *plan.VacuumStmt) error {
	e.writeTag(TagVacuumStmt)
	e.writeBool(node.Vacuum)
	e.writeBool(node.Full)
	e.writeBool(node.Analyze)
	e.writeBool(node.Verbose)
	e.writeBool(node.Rootonly)
	e.writeInt32(node.FreezeMinAge)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	if err := e.encodeList(node.VaCols); err != nil {
		return err
	}
	if err := e.encodeList(node.ExpandedRelids); err != nil {
		return err
	}
	if err := e.encodeList(node.AppendonlyCompactionSegno); err != nil {
		return err
	}
	if err := e.encodeList(node.AppendonlyCompactionInsertSegno); err != nil {
		return err
	}
	e.writeBool(node.HeapTruncate)
	return nil
}

func (e *Encoder) encodeClusterStmt(node *plan.ClusterStmt) error {
	e.writeTag(TagClusterStmt)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	e.writeString(node.Indexname)
	return nil
}

func (e *Encoder) encodeLockStmt(node *plan.LockStmt) error {
	e.writeTag(TagLockStmt)
	if err := e.encodeList(node.Relations); err != nil {
		return err
	}
	e.writeInt32(node.Mode)
	e.writeBool(node.Nowait)
	return nil
}

func (e *Encoder) encodeRenameStmt(node *plan.RenameStmt) error {
	e.writeTag(TagRenameStmt)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	e.writeOid(node.Objid)
	if err := e.encodeList(node.Object); err != nil {
		return err
	}
	e.writeString(node.Subname)
	e.writeString(node.Newname)
	e.writeEnum(int16(node.RenameType))
	e.writeBool(node.AllowPartn)
	return nil
}

func (e *Encoder) encodeGrantStmt(node *plan.GrantStmt) error {
	e.writeTag(TagGrantStmt)
	e.writeBool(node.IsGrant)
	e.writeEnum(int16(node.Objtype))
	if err := e.encodeList(node.Objects); err != nil {
		return err
	}
	if err := e.encodeList(node.Privileges); err != nil {
		return err
	}
	if err := e.encodeList(node.Grantees); err != nil {
		return err
	}
	e.writeBool(node.GrantOption)
	e.writeEnum(int16(node.Behavior))
	return e.encodeList(node.CookedPrivs)
}

func (e *Encoder) encodePrivGrantee(node *plan.PrivGrantee) error {
	e.writeTag(TagPrivGrantee)
	e.writeString(node.Rolname)
	return nil
}

func (e *Encoder) encodeFuncWithArgs(node *plan.FuncWithArgs) error {
	e.writeTag(TagFuncWithArgs)
	if err := e.encodeList(node.Funcname); err != nil {
		return err
	}
	return e.encodeList(node.Funcargs)
}

func (e *Encoder) encodeGrantRoleStmt(node *plan.GrantRoleStmt) error {
	e.writeTag(TagGrantRoleStmt)
	if err := e.encodeList(node.GrantedRoles); err != nil {
		return err
	}
	if err := e.encodeList(node.GranteeRoles); err != nil {
		return err
	}
	e.writeBool(node.IsGrant)
	e.writeBool(node.AdminOpt)
	e.writeString(node.Grantor)
	e.writeEnum(int16(node.Behavior))
	return nil
}

func (e *Encoder) encodeCreateSchemaStmt(node *plan.CreateSchemaStmt) error {
	e.writeTag(TagCreateSchemaStmt)
	e.writeString(node.Schemaname)
	e.writeString(node.Authid)

	// Schema elements are processed separately on the dispatching side;
	// only their presence is recorded.
	e.writeBool(node.SchemaElts.Len() > 0)
	e.writeBool(node.Istemp)
	return nil
}

func (e *Encoder) encodeCreateRoleStmt(node *plan.CreateRoleStmt) error {
	e.writeTag(TagCreateRoleStmt)
	e.writeEnum(int16(node.StmtType))
	e.writeString(node.Role)
	if err := e.encodeList(node.Options); err != nil {
		return err
	}
	e.writeOid(node.RoleOid)
	return nil
}

func (e *Encoder) encodeDropRoleStmt(node *plan.DropRoleStmt) error {
	e.writeTag(TagDropRoleStmt)
	if err := e.encodeList(node.Roles); err != nil {
		return err
	}
	e.writeBool(node.MissingOk)
	return nil
}

func (e *Encoder) encodeAlterRoleStmt(node *plan.AlterRoleStmt) error {
	e.writeTag(TagAlterRoleStmt)
	e.writeString(node.Role)
	return e.encodeList(node.Options)
}

func (e *Encoder) encodeAlterRoleSetStmt(node *plan.AlterRoleSetStmt) error {
	e.writeTag(TagAlterRoleSetStmt)
	e.writeString(node.Role)
	e.writeString(node.Variable)
	return e.encodeList(node.Value)
}

func (e *Encoder) encodeAlterObjectSchemaStmt(node *plan.AlterObjectSchemaStmt) error {
	e.writeTag(TagAlterObjectSchemaStmt)
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	if err := e.encodeList(node.Object); err != nil {
		return err
	}
	if err := e.encodeList(node.Objarg); err != nil {
		return err
	}
	e.writeString(node.Addname)
	e.writeString(node.Newschema)
	e.writeEnum(int16(node.ObjectType))
	return nil
}

func (e *Encoder) encodeAlterOwnerStmt(node *plan.AlterOwnerStmt) error {
	e.writeTag(TagAlterOwnerStmt)
	e.writeEnum(int16(node.ObjectType))
	if err := e.encodeNode(nodeOrNil(node.Relation)); err != nil {
		return err
	}
	if err := e.encodeList(node.Object); err != nil {
		return err
	}
	if err := e.encodeList(node.Objarg); err != nil {
		return err
	}
	e.writeString(node.Addname)
	e.writeString(node.Newowner)
	return nil
}

func (e *Encoder) encodeTupleDescNode(node *plan.TupleDescNode) error {
	e.writeTag(TagTupleDescNode)
	e.writeInt32(node.Natts)

	// Each attribute ships only its fixed-size descriptor block.
	e.writeInt32(int32(len(node.Attrs)))
	for i, attr := range node.Attrs {
		if len(attr) < plan.AttributeFixedSize {
			return fmt.Errorf("%w: attribute %d descriptor is %d bytes, need %d",
				ErrMalformedNode, i, len(attr), plan.AttributeFixedSize)
		}
		e.writeBytes(attr[:plan.AttributeFixedSize])
	}

	e.writeOid(node.TdTypeid)
	e.writeInt32(node.TdTypmod)
	e.writeInt32(node.TdQdTypmod)
	e.writeBool(node.TdHasOid)
	e.writeInt32(node.TdRefcount)
	return nil
}

func (e *Encoder) encodeSegfileMapNode(node *plan.SegfileMapNode) error {
	e.writeTag(TagSegfileMapNode)
	e.writeOid(node.Relid)
	e.writeInt32(node.Segno)
	return nil
}
